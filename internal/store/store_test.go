package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/model"
	"github.com/Ahell/henry-sub002/internal/planner"
)

// ── Mock Persister ──

type mockPersister struct {
	saved    *model.Dataset
	loadData *model.Dataset
	failSave bool
	saves    int
}

func (m *mockPersister) Load(_ context.Context) (*model.Dataset, error) {
	if m.loadData != nil {
		return m.loadData, nil
	}
	return model.NewDataset(), nil
}

func (m *mockPersister) Save(_ context.Context, d *model.Dataset) error {
	m.saves++
	if m.failSave {
		return errors.New("databasen är nere")
	}
	m.saved = d.Clone()
	return nil
}

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func newTestStore(t *testing.T) (*Store, *mockPersister) {
	t.Helper()
	p := &mockPersister{}
	s := New(p, planner.DefaultCaps, zap.NewNop())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	return s, p
}

// ── 加载与种子测试 ──

func TestLoad_SeedsEmptySnapshot(t *testing.T) {
	s, p := newTestStore(t)
	if p.saves != 1 {
		t.Errorf("空库应写入种子数据，实际保存次数=%d", p.saves)
	}
	s.View(func(d *model.Dataset) {
		if d.Empty() {
			t.Error("加载后不应为空")
		}
		if len(d.Cohorts) == 0 || d.Cohorts[0].Name != "Kull 1" {
			t.Error("种子班次应按开始日命名为 Kull 1")
		}
	})
}

func TestLoad_KeepsExistingSnapshot(t *testing.T) {
	existing := model.NewDataset()
	existing.Courses = []model.Course{{CourseID: "c-1", Code: "X100", Name: "Testkurs", Credits: 15}}
	p := &mockPersister{loadData: existing}
	s := New(p, planner.DefaultCaps, zap.NewNop())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if p.saves != 0 {
		t.Error("非空库不应触发种子写入")
	}
	s.View(func(d *model.Dataset) {
		if d.CourseByID("c-1") == nil {
			t.Error("既有数据应保留")
		}
	})
}

// ── 变更流程测试 ──

func TestMutate_PersistsAndNotifies(t *testing.T) {
	s, p := newTestStore(t)
	notified := 0
	s.Subscribe(func() { notified++ })

	_, err := s.Mutate(context.Background(), func(d *model.Dataset) error {
		d.Courses = append(d.Courses, model.Course{CourseID: "c-new", Code: "NY100", Name: "Ny kurs", Credits: 7.5})
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate 应成功: %v", err)
	}
	if notified != 1 {
		t.Errorf("期望通知1次，实际=%d", notified)
	}
	if p.saved == nil || p.saved.CourseByID("c-new") == nil {
		t.Error("变更应已持久化")
	}
}

func TestMutate_HardValidationRollsBack(t *testing.T) {
	s, _ := newTestStore(t)
	var before int
	s.View(func(d *model.Dataset) { before = len(d.Slots) })

	_, err := s.Mutate(context.Background(), func(d *model.Dataset) error {
		// 与既有期段重叠
		d.Slots = append(d.Slots, model.Slot{
			SlotID: "slot-bad", StartDate: date("2025-09-10"), EndDate: date("2025-10-05"),
		})
		return nil
	})
	if err == nil {
		t.Fatal("重叠期段应为硬错误")
	}
	if !planner.IsValidation(err) {
		t.Errorf("期望 ValidationError，实际=%T", err)
	}
	s.View(func(d *model.Dataset) {
		if len(d.Slots) != before {
			t.Error("硬校验失败后状态应完整回滚")
		}
	})
}

func TestMutate_PersistFailureRollsBack(t *testing.T) {
	s, p := newTestStore(t)
	p.failSave = true
	notified := 0
	s.Subscribe(func() { notified++ })

	_, err := s.Mutate(context.Background(), func(d *model.Dataset) error {
		d.Courses = append(d.Courses, model.Course{CourseID: "c-lost", Code: "NY200", Name: "Förlorad kurs", Credits: 15})
		return nil
	})
	if err == nil {
		t.Fatal("持久化失败应上抛错误")
	}
	s.View(func(d *model.Dataset) {
		if d.CourseByID("c-lost") != nil {
			t.Error("持久化失败后应整图回滚")
		}
	})
	if notified != 2 {
		t.Errorf("乐观通知+回滚通知共2次，实际=%d", notified)
	}
}

func TestMutate_RenumbersCohorts(t *testing.T) {
	s, _ := newTestStore(t)

	// 新班次开始日早于所有既有班次 → 应成为 Kull 1，其余顺延
	_, err := s.Mutate(context.Background(), func(d *model.Dataset) error {
		d.Cohorts = append(d.Cohorts, model.Cohort{
			CohortID: "kull-early", StartDate: date("2024-09-01"), PlannedSize: 25,
		})
		return nil
	})
	if err != nil {
		t.Fatalf("Mutate 应成功: %v", err)
	}
	s.View(func(d *model.Dataset) {
		early := d.CohortByID("kull-early")
		if early == nil || early.Name != "Kull 1" {
			t.Errorf("最早班次应命名 Kull 1，实际=%+v", early)
		}
		for _, c := range d.Cohorts {
			if c.CohortID != "kull-early" && c.Name == "Kull 1" {
				t.Error("其余班次名次应顺延")
			}
		}
	})
}

func TestUnsubscribe(t *testing.T) {
	s, _ := newTestStore(t)
	notified := 0
	id := s.Subscribe(func() { notified++ })
	s.Unsubscribe(id)

	s.Mutate(context.Background(), func(d *model.Dataset) error { return nil })
	if notified != 0 {
		t.Errorf("退订后不应收到通知，实际=%d", notified)
	}
}

// ── 快照往返测试 ──

func TestSnapshotRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	snap := s.Snapshot()

	p2 := &mockPersister{}
	s2 := New(p2, planner.DefaultCaps, zap.NewNop())
	if err := s2.Load(context.Background()); err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if _, err := s2.Replace(context.Background(), snap); err != nil {
		t.Fatalf("Replace 应成功: %v", err)
	}

	snap2 := s2.Snapshot()
	if len(snap2.Courses) != len(snap.Courses) ||
		len(snap2.Teachers) != len(snap.Teachers) ||
		len(snap2.Cohorts) != len(snap.Cohorts) ||
		len(snap2.Slots) != len(snap.Slots) {
		t.Error("快照往返应复现等价实体图")
	}
	for _, c := range snap.Courses {
		if snap2.CourseByID(c.CourseID) == nil {
			t.Errorf("课程 %s 在往返后丢失", c.Code)
		}
	}
}

func TestReplace_RejectsUnknownSchemaVersion(t *testing.T) {
	s, _ := newTestStore(t)
	bad := model.NewDataset()
	bad.SchemaVersion = 99
	if _, err := s.Replace(context.Background(), bad); err == nil {
		t.Error("未知 schema 版本应被拒绝")
	}
}

// ── 级联删除测试 ──

func TestDeleteCourse_Cascades(t *testing.T) {
	s, _ := newTestStore(t)

	var target, dependent string
	s.View(func(d *model.Dataset) {
		// 种子中 FEKA90 是 FEKB10 的先修
		for _, c := range d.Courses {
			if c.Code == "FEKA90" {
				target = c.CourseID
			}
			if c.Code == "FEKB10" {
				dependent = c.CourseID
			}
		}
	})
	if target == "" || dependent == "" {
		t.Fatal("种子数据缺少预期课程")
	}

	_, err := s.Mutate(context.Background(), func(d *model.Dataset) error {
		return DeleteCourse(d, target)
	})
	if err != nil {
		t.Fatalf("删除应成功: %v", err)
	}

	s.View(func(d *model.Dataset) {
		if d.CourseByID(target) != nil {
			t.Error("课程应已删除")
		}
		for _, p := range d.CoursePrerequisites {
			if p.PrerequisiteID == target || p.CourseID == target {
				t.Error("先修引用应级联清除")
			}
		}
		for _, tc := range d.TeacherCourses {
			if tc.CourseID == target {
				t.Error("教师可授引用应级联清除")
			}
		}
		for _, r := range d.CourseRuns {
			if r.CourseID == target {
				t.Error("课次应级联删除")
			}
		}
		if d.CourseByID(dependent) == nil {
			t.Error("依赖课程本身应保留")
		}
	})
}
