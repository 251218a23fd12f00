package planner

import (
	"testing"

	"github.com/Ahell/henry-sub002/internal/model"
)

// ── AllPrerequisites 测试 ──

func TestAllPrerequisites_Transitive(t *testing.T) {
	d := newTestDataset()
	d.Courses = append(d.Courses, model.Course{CourseID: "course-c", Code: "FE300", Name: "Företagsekonomi III", Credits: 15})
	d.CoursePrerequisites = append(d.CoursePrerequisites,
		model.CoursePrerequisite{CourseID: "course-c", PrerequisiteID: "course-b"},
	)

	ids, cycle := AllPrerequisites(d, "course-c")
	if cycle {
		t.Error("无环图不应报告环")
	}
	if len(ids) != 2 {
		t.Fatalf("期望传递闭包含2门课，实际=%d: %v", len(ids), ids)
	}
	want := map[string]bool{"course-a": true, "course-b": true}
	for _, id := range ids {
		if !want[id] {
			t.Errorf("闭包中出现意外课程: %s", id)
		}
	}
}

func TestAllPrerequisites_CycleFlag(t *testing.T) {
	d := newTestDataset()
	// 构造 a → b → a 的环（界面不可构造，防御性处理）
	d.CoursePrerequisites = append(d.CoursePrerequisites,
		model.CoursePrerequisite{CourseID: "course-a", PrerequisiteID: "course-b"},
	)

	ids, cycle := AllPrerequisites(d, "course-a")
	if !cycle {
		t.Error("期望显式报告环")
	}
	// 尽力而为的部分闭包仍应包含 course-b
	found := false
	for _, id := range ids {
		if id == "course-b" {
			found = true
		}
	}
	if !found {
		t.Errorf("部分闭包应包含 course-b，实际=%v", ids)
	}
}

func TestAllPrerequisites_NoPrereqs(t *testing.T) {
	d := newTestDataset()
	ids, cycle := AllPrerequisites(d, "course-a")
	if len(ids) != 0 || cycle {
		t.Errorf("无先修课程应返回空闭包，实际=%v cycle=%v", ids, cycle)
	}
}

// ── FindPrerequisiteProblems 测试 ──

func TestFindPrerequisiteProblems_Missing(t *testing.T) {
	d := newTestDataset()
	// kull-1 排了 course-b 但没有 course-a
	addRun(d, "run-1", "course-b", "slot-2", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))

	problems := FindPrerequisiteProblems(d)
	if len(problems) != 1 {
		t.Fatalf("期望1条问题，实际=%d", len(problems))
	}
	p := problems[0]
	if p.Type != ProblemMissing {
		t.Errorf("期望类型 missing，实际=%s", p.Type)
	}
	if p.CohortID != "kull-1" || p.CourseID != "course-b" || p.PrerequisiteID != "course-a" {
		t.Errorf("问题内容不符: %+v", p)
	}
}

func TestFindPrerequisiteProblems_BeforePrereq(t *testing.T) {
	d := newTestDataset()
	// 先修课与依赖课排在同一期段：先修课未在依赖课开始前结束
	addRun(d, "run-a", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))
	addRun(d, "run-b", "course-b", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-02"))

	problems := FindPrerequisiteProblems(d)
	if len(problems) != 1 {
		t.Fatalf("期望1条问题，实际=%d: %+v", len(problems), problems)
	}
	if problems[0].Type != ProblemBeforePrereq {
		t.Errorf("期望类型 before_prerequisite，实际=%s", problems[0].Type)
	}
}

func TestFindPrerequisiteProblems_OrderedOK(t *testing.T) {
	d := newTestDataset()
	// 先修课在 slot-1（结束 01-28），依赖课在 slot-2（开始 01-29）：严格先后
	addRun(d, "run-a", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))
	addRun(d, "run-b", "course-b", "slot-2", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-02"))

	if problems := FindPrerequisiteProblems(d); len(problems) != 0 {
		t.Errorf("顺序正确不应报告问题，实际=%+v", problems)
	}
}

func TestFindPrerequisiteProblems_OtherCohortUnaffected(t *testing.T) {
	d := newTestDataset()
	// kull-2 完整排序，kull-1 缺先修 → 只报 kull-1
	addRun(d, "run-a2", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-2"}, date("2025-01-01"))
	addRun(d, "run-b2", "course-b", "slot-2", []string{"teacher-1"}, []string{"kull-1", "kull-2"}, date("2025-01-02"))

	problems := FindPrerequisiteProblems(d)
	if len(problems) != 1 {
		t.Fatalf("期望1条问题，实际=%d: %+v", len(problems), problems)
	}
	if problems[0].CohortID != "kull-1" {
		t.Errorf("期望问题归属 kull-1，实际=%s", problems[0].CohortID)
	}
}
