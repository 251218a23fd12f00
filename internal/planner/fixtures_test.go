package planner

import (
	"time"

	"github.com/Ahell/henry-sub002/internal/model"
)

// ── 测试夹具 ──

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// newTestDataset 构造一个最小但完整的测试图：
// 两门课（B 以 A 为先修）、两个相邻期段、两个班次、两位教师。
func newTestDataset() *model.Dataset {
	d := model.NewDataset()

	d.Courses = []model.Course{
		{CourseID: "course-a", Code: "FE100", Name: "Företagsekonomi I", Credits: 15, Category: model.CategoryStandard},
		{CourseID: "course-b", Code: "FE200", Name: "Företagsekonomi II", Credits: 15, Category: model.CategoryStandard},
	}
	d.CoursePrerequisites = []model.CoursePrerequisite{
		{CourseID: "course-b", PrerequisiteID: "course-a", Position: 0},
	}
	d.Teachers = []model.Teacher{
		{TeacherID: "teacher-1", Name: "Anna Lind", Department: model.DeptFEK},
		{TeacherID: "teacher-2", Name: "Bo Ek", Department: model.DeptJUR},
	}
	d.TeacherCourses = []model.TeacherCourse{
		{TeacherID: "teacher-1", CourseID: "course-a"},
		{TeacherID: "teacher-1", CourseID: "course-b"},
	}
	d.Cohorts = []model.Cohort{
		{CohortID: "kull-1", Name: "Kull 1", StartDate: date("2025-01-01"), PlannedSize: 30},
		{CohortID: "kull-2", Name: "Kull 2", StartDate: date("2025-03-01"), PlannedSize: 40},
	}
	d.Slots = []model.Slot{
		{SlotID: "slot-1", StartDate: date("2025-01-01"), EndDate: date("2025-01-28")},
		{SlotID: "slot-2", StartDate: date("2025-01-29"), EndDate: date("2025-02-25")},
	}
	return d
}

func addRun(d *model.Dataset, runID, courseID, slotID string, teacherIDs, cohortIDs []string, created time.Time) {
	d.CourseRuns = append(d.CourseRuns, model.CourseRun{
		RunID:      runID,
		CourseID:   courseID,
		SlotID:     slotID,
		TeacherIDs: teacherIDs,
		CohortIDs:  cohortIDs,
		Status:     model.RunStatusScheduled,
		BaseModel:  model.BaseModel{CreatedAt: created, UpdatedAt: created},
	})
}
