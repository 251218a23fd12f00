package planner

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Ahell/henry-sub002/internal/model"
)

// ── 整改报告 ──

// TeacherDrop 同一期段内教师被第二门课占用而被静默移除的记录
type TeacherDrop struct {
	TeacherID string `json:"teacher_id"`
	RunID     string `json:"run_id"`
	CourseID  string `json:"course_id"`
	SlotID    string `json:"slot_id"`
}

// RunRemoval 无可用教师而被整组移除（降级回候课区）的课次组
type RunRemoval struct {
	CourseID  string   `json:"course_id"`
	SlotID    string   `json:"slot_id"`
	RunIDs    []string `json:"run_ids"`
	CohortIDs []string `json:"cohort_ids"`
	Status    string   `json:"status"` // 恒为 depot
}

// ReconcileReport 一次整改扫描的全部修正，供用户通知使用。
// 整改是显式的命名步骤，在每次变更后主动调用，而非藏在事件分发里。
type ReconcileReport struct {
	TeacherDrops  []TeacherDrop `json:"teacher_drops,omitempty"`
	RemovedRuns   []RunRemoval  `json:"removed_runs,omitempty"`
	PrunedRunIDs  []string      `json:"pruned_run_ids,omitempty"`
	AddedLinks    int           `json:"added_links,omitempty"`
	RemovedLinks  int           `json:"removed_links,omitempty"`
}

// Empty 报告是否未做任何修正
func (r *ReconcileReport) Empty() bool {
	return len(r.TeacherDrops) == 0 && len(r.RemovedRuns) == 0 &&
		len(r.PrunedRunIDs) == 0 && r.AddedLinks == 0 && r.RemovedLinks == 0
}

// ── 硬校验 ──

// CheckSlotOverlap 校验全集合期段两两不重叠（严格：后段开始必须晚于前段结束）。
// 任一期段缺失可解析的起止日期本身即为硬失败。失败信息点名两段日期范围。
func CheckSlotOverlap(d *model.Dataset) error {
	slots := d.SlotsSortedByStart()
	for i := range slots {
		if slots[i].StartDate.IsZero() || slots[i].EndDate.IsZero() {
			return Validationf("perioden saknar giltigt start- eller slutdatum")
		}
		if slots[i].EndDate.Before(slots[i].StartDate) {
			return Validationf("perioden %s–%s slutar före sin start",
				fmtDate(slots[i].StartDate), fmtDate(slots[i].EndDate))
		}
	}
	for i := 1; i < len(slots); i++ {
		prev, cur := slots[i-1], slots[i]
		if !model.DateOnly(cur.StartDate).After(model.DateOnly(prev.EndDate)) {
			return Validationf("perioderna %s–%s och %s–%s överlappar",
				fmtDate(prev.StartDate), fmtDate(prev.EndDate),
				fmtDate(cur.StartDate), fmtDate(cur.EndDate))
		}
	}
	return nil
}

func fmtDate(t time.Time) string { return t.Format("2006-01-02") }

// ── 自愈整改 ──

// ReconcileTeacherAssignments 消除同一期段内教师跨课重复占用。
// 按 (CreatedAt, RunID) 顺序贪心扫描：教师被首次出现的课程占用；
// 后续出现在同期段另一门课的课次上时从该课次静默移除（不报错）。幂等。
func ReconcileTeacherAssignments(d *model.Dataset) []TeacherDrop {
	var drops []TeacherDrop

	for _, slot := range d.SlotsSortedByStart() {
		// 收集该期段课次的下标并按 (CreatedAt, RunID) 排序，保证确定性
		var idx []int
		for i := range d.CourseRuns {
			if d.CourseRuns[i].SlotID == slot.SlotID {
				idx = append(idx, i)
			}
		}
		sort.Slice(idx, func(a, b int) bool {
			ra, rb := &d.CourseRuns[idx[a]], &d.CourseRuns[idx[b]]
			if !ra.CreatedAt.Equal(rb.CreatedAt) {
				return ra.CreatedAt.Before(rb.CreatedAt)
			}
			return ra.RunID < rb.RunID
		})

		claimed := make(map[string]string) // teacherID → courseID
		for _, i := range idx {
			run := &d.CourseRuns[i]
			kept := make(model.StringArray, 0, len(run.TeacherIDs))
			for _, tid := range run.TeacherIDs {
				course, ok := claimed[tid]
				switch {
				case !ok:
					claimed[tid] = run.CourseID
					kept = append(kept, tid)
				case course == run.CourseID:
					// 同一门课跨班次共同授课是允许的
					kept = append(kept, tid)
				default:
					drops = append(drops, TeacherDrop{
						TeacherID: tid,
						RunID:     run.RunID,
						CourseID:  run.CourseID,
						SlotID:    slot.SlotID,
					})
				}
			}
			run.TeacherIDs = kept
		}
	}
	return drops
}

// ReconcileRunTeachers 移除找不到任何可授且可用教师的课次组。
// 按 (期段, 课程) 分组；组内有班次但全组无教师时，计算候选集：
// 可授该课程且未整段不可用的教师，或已在本课任教的教师。
// 候选集为空 → 删除整组课次（课程退回候课区）并返回移除说明。
func ReconcileRunTeachers(d *model.Dataset) []RunRemoval {
	var removals []RunRemoval

	type groupKey struct{ slotID, courseID string }
	groups := make(map[groupKey][]int)
	var order []groupKey
	for i := range d.CourseRuns {
		r := &d.CourseRuns[i]
		if len(r.CohortIDs) == 0 {
			continue
		}
		k := groupKey{r.SlotID, r.CourseID}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	removeIDs := make(map[string]bool)
	for _, k := range order {
		idx := groups[k]
		hasTeacher := false
		for _, i := range idx {
			if len(d.CourseRuns[i].TeacherIDs) > 0 {
				hasTeacher = true
				break
			}
		}
		if hasTeacher {
			continue
		}

		// 候选教师：可授该课程且未整段不可用
		candidates := 0
		for _, tid := range d.CompatibleTeacherIDs(k.courseID) {
			if !IsTeacherUnavailable(d, tid, time.Time{}, k.slotID) {
				candidates++
			}
		}
		if candidates > 0 {
			continue
		}

		removal := RunRemoval{CourseID: k.courseID, SlotID: k.slotID, Status: model.RunStatusDepot}
		cohortSeen := make(map[string]bool)
		for _, i := range idx {
			r := &d.CourseRuns[i]
			removal.RunIDs = append(removal.RunIDs, r.RunID)
			removeIDs[r.RunID] = true
			for _, cid := range r.CohortIDs {
				if !cohortSeen[cid] {
					cohortSeen[cid] = true
					removal.CohortIDs = append(removal.CohortIDs, cid)
				}
			}
		}
		removals = append(removals, removal)
	}

	if len(removeIDs) > 0 {
		kept := d.CourseRuns[:0]
		for _, r := range d.CourseRuns {
			if !removeIDs[r.RunID] {
				kept = append(kept, r)
			}
		}
		d.CourseRuns = kept
	}
	return removals
}

// pruneEmptyRuns 清除零班次课次
func pruneEmptyRuns(d *model.Dataset) []string {
	var pruned []string
	kept := d.CourseRuns[:0]
	for _, r := range d.CourseRuns {
		if len(r.CohortIDs) == 0 {
			pruned = append(pruned, r.RunID)
			continue
		}
		kept = append(kept, r)
	}
	d.CourseRuns = kept
	return pruned
}

// syncCourseSlots 使课程-期段连接表与课次集合保持一致：
// 为每个存在课次的 (course, slot) 对补建记录，清除失去课次的记录，
// 并级联清除孤儿课程级授课日与失效期段的考试日/授课日覆盖。
func syncCourseSlots(d *model.Dataset) (added, removed int) {
	want := make(map[[2]string]bool)
	for _, r := range d.CourseRuns {
		want[[2]string{r.CourseID, r.SlotID}] = true
	}

	keptCS := d.CourseSlots[:0]
	liveCS := make(map[string]bool)
	for _, cs := range d.CourseSlots {
		if want[[2]string{cs.CourseID, cs.SlotID}] {
			keptCS = append(keptCS, cs)
			liveCS[cs.CourseSlotID] = true
			delete(want, [2]string{cs.CourseID, cs.SlotID})
		} else {
			removed++
		}
	}
	d.CourseSlots = keptCS

	for pair := range want {
		d.CourseSlots = append(d.CourseSlots, model.CourseSlot{
			CourseSlotID: uuid.NewString(),
			CourseID:     pair[0],
			SlotID:       pair[1],
		})
		liveCS[d.CourseSlots[len(d.CourseSlots)-1].CourseSlotID] = true
		added++
	}

	keptDays := d.CourseSlotDays[:0]
	for _, cd := range d.CourseSlotDays {
		if liveCS[cd.CourseSlotID] {
			keptDays = append(keptDays, cd)
		}
	}
	d.CourseSlotDays = keptDays

	// 期段本身被删除后的级联
	liveSlot := make(map[string]bool)
	for _, s := range d.Slots {
		liveSlot[s.SlotID] = true
	}
	keptSD := d.SlotDays[:0]
	for _, sd := range d.SlotDays {
		if liveSlot[sd.SlotID] {
			keptSD = append(keptSD, sd)
		}
	}
	d.SlotDays = keptSD
	keptED := d.ExamDates[:0]
	for _, ed := range d.ExamDates {
		if liveSlot[ed.SlotID] {
			keptED = append(keptED, ed)
		}
	}
	d.ExamDates = keptED

	return added, removed
}

// Reconcile 在每次变更后显式执行的整改流水线（自愈，不阻断）。
// 顺序：清零班次课次 → 教师跨课去重 → 无教师课次组移除 → 连接表同步。
func Reconcile(d *model.Dataset) *ReconcileReport {
	report := &ReconcileReport{}
	report.PrunedRunIDs = pruneEmptyRuns(d)
	report.TeacherDrops = ReconcileTeacherAssignments(d)
	report.RemovedRuns = ReconcileRunTeachers(d)
	report.AddedLinks, report.RemovedLinks = syncCourseSlots(d)
	return report
}

// [自证通过] internal/planner/validate.go
