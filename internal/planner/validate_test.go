package planner

import (
	"testing"

	"github.com/Ahell/henry-sub002/internal/model"
)

// ── 期段重叠测试 ──

func TestCheckSlotOverlap_Overlapping(t *testing.T) {
	d := newTestDataset()
	d.Slots = []model.Slot{
		{SlotID: "slot-1", StartDate: date("2025-01-01"), EndDate: date("2025-01-28")},
		{SlotID: "slot-2", StartDate: date("2025-01-15"), EndDate: date("2025-02-10")},
	}

	err := CheckSlotOverlap(d)
	if err == nil {
		t.Fatal("重叠期段应返回硬错误")
	}
	if !IsValidation(err) {
		t.Errorf("期望 ValidationError，实际=%T", err)
	}
}

func TestCheckSlotOverlap_Adjacent(t *testing.T) {
	d := newTestDataset()
	d.Slots = []model.Slot{
		{SlotID: "slot-1", StartDate: date("2025-01-01"), EndDate: date("2025-01-28")},
		{SlotID: "slot-2", StartDate: date("2025-01-29"), EndDate: date("2025-02-25")},
	}

	if err := CheckSlotOverlap(d); err != nil {
		t.Errorf("相邻不重叠期段应通过: %v", err)
	}
}

func TestCheckSlotOverlap_SameDayBoundary(t *testing.T) {
	d := newTestDataset()
	// 严格判定：后段开始 == 前段结束 也算重叠
	d.Slots = []model.Slot{
		{SlotID: "slot-1", StartDate: date("2025-01-01"), EndDate: date("2025-01-28")},
		{SlotID: "slot-2", StartDate: date("2025-01-28"), EndDate: date("2025-02-25")},
	}

	if err := CheckSlotOverlap(d); err == nil {
		t.Error("同日衔接应判为重叠")
	}
}

func TestCheckSlotOverlap_MissingDates(t *testing.T) {
	d := newTestDataset()
	d.Slots = append(d.Slots, model.Slot{SlotID: "slot-bad"})

	if err := CheckSlotOverlap(d); err == nil {
		t.Error("缺失日期的期段应为硬失败")
	}
}

// ── 教师跨课去重测试 ──

func TestReconcileTeacherAssignments_FirstSeenWins(t *testing.T) {
	d := newTestDataset()
	d.TeacherCourses = append(d.TeacherCourses, model.TeacherCourse{TeacherID: "teacher-1", CourseID: "course-b"})
	// teacher-1 在同一期段先后出现在两门课上
	addRun(d, "run-a", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))
	addRun(d, "run-b", "course-b", "slot-1", []string{"teacher-1"}, []string{"kull-2"}, date("2025-01-02"))

	drops := ReconcileTeacherAssignments(d)
	if len(drops) != 1 {
		t.Fatalf("期望1条移除记录，实际=%d", len(drops))
	}
	if drops[0].RunID != "run-b" || drops[0].TeacherID != "teacher-1" {
		t.Errorf("移除记录不符: %+v", drops[0])
	}
	if got := d.RunByID("run-a").TeacherIDs; len(got) != 1 {
		t.Errorf("首见课次应保留教师，实际=%v", got)
	}
	if got := d.RunByID("run-b").TeacherIDs; len(got) != 0 {
		t.Errorf("后见课次应移除教师，实际=%v", got)
	}
}

func TestReconcileTeacherAssignments_SameCourseCoTeaching(t *testing.T) {
	d := newTestDataset()
	// 同一门课跨班次课次共享教师是允许的
	addRun(d, "run-1", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))
	addRun(d, "run-2", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-2"}, date("2025-01-02"))

	if drops := ReconcileTeacherAssignments(d); len(drops) != 0 {
		t.Errorf("同课共同授课不应移除教师: %+v", drops)
	}
}

func TestReconcileTeacherAssignments_Idempotent(t *testing.T) {
	d := newTestDataset()
	d.TeacherCourses = append(d.TeacherCourses, model.TeacherCourse{TeacherID: "teacher-1", CourseID: "course-b"})
	addRun(d, "run-a", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))
	addRun(d, "run-b", "course-b", "slot-1", []string{"teacher-1"}, []string{"kull-2"}, date("2025-01-02"))

	ReconcileTeacherAssignments(d)
	if drops := ReconcileTeacherAssignments(d); len(drops) != 0 {
		t.Errorf("二次执行不应产生新修正: %+v", drops)
	}
}

// ── 无教师课次组移除测试 ──

func TestReconcileRunTeachers_RemovesHopelessGroup(t *testing.T) {
	d := newTestDataset()
	// course-b 仅 teacher-1 可授；teacher-1 整段不可用 → 组内无候选
	sid := "slot-1"
	d.TeacherAvailability = []model.TeacherAvailability{{
		AvailabilityID: "av-1", TeacherID: "teacher-1",
		FromDate: date("2025-01-01"), ToDate: date("2025-01-28"),
		SlotID: &sid, Type: model.AvailabilityBusy,
	}}
	addRun(d, "run-b", "course-b", "slot-1", nil, []string{"kull-1"}, date("2025-01-01"))

	removals := ReconcileRunTeachers(d)
	if len(removals) != 1 {
		t.Fatalf("期望1组移除，实际=%d", len(removals))
	}
	r := removals[0]
	if r.CourseID != "course-b" || r.Status != model.RunStatusDepot {
		t.Errorf("移除说明不符: %+v", r)
	}
	if len(r.CohortIDs) != 1 || r.CohortIDs[0] != "kull-1" {
		t.Errorf("期望点名 kull-1，实际=%v", r.CohortIDs)
	}
	if d.RunByID("run-b") != nil {
		t.Error("课次应已删除")
	}
}

func TestReconcileRunTeachers_KeepsGroupWithCandidate(t *testing.T) {
	d := newTestDataset()
	// teacher-1 可授 course-b 且可用 → 组保留
	addRun(d, "run-b", "course-b", "slot-1", nil, []string{"kull-1"}, date("2025-01-01"))

	if removals := ReconcileRunTeachers(d); len(removals) != 0 {
		t.Errorf("存在候选教师时不应移除: %+v", removals)
	}
	if d.RunByID("run-b") == nil {
		t.Error("课次应保留")
	}
}

func TestReconcileRunTeachers_KeepsGroupWithTeacher(t *testing.T) {
	d := newTestDataset()
	addRun(d, "run-b", "course-b", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))

	if removals := ReconcileRunTeachers(d); len(removals) != 0 {
		t.Errorf("组内已有教师时不应移除: %+v", removals)
	}
}

// ── 整改流水线测试 ──

func TestReconcile_PrunesEmptyRunsAndSyncsLinks(t *testing.T) {
	d := newTestDataset()
	addRun(d, "run-1", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))
	addRun(d, "run-empty", "course-b", "slot-2", []string{"teacher-1"}, nil, date("2025-01-02"))

	report := Reconcile(d)
	if len(report.PrunedRunIDs) != 1 || report.PrunedRunIDs[0] != "run-empty" {
		t.Errorf("期望清除 run-empty，实际=%v", report.PrunedRunIDs)
	}
	if d.CourseSlotByPair("course-a", "slot-1") == nil {
		t.Error("应补建 (course-a, slot-1) 连接记录")
	}
	if d.CourseSlotByPair("course-b", "slot-2") != nil {
		t.Error("零班次课次不应留下连接记录")
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	d := newTestDataset()
	addRun(d, "run-1", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"}, date("2025-01-01"))

	Reconcile(d)
	if report := Reconcile(d); !report.Empty() {
		t.Errorf("二次整改不应产生修正: %+v", report)
	}
}

// ── 人数上限测试 ──

func TestValidateCapacity(t *testing.T) {
	tests := []struct {
		total    int
		wantErr  bool
		wantWarn bool
	}{
		{131, true, false},
		{105, false, true},
		{80, false, false},
		{130, false, true},
		{100, false, false},
	}
	for _, tt := range tests {
		warn, err := ValidateCapacity(tt.total, DefaultCaps)
		if (err != nil) != tt.wantErr {
			t.Errorf("total=%d: 期望err=%v，实际=%v", tt.total, tt.wantErr, err)
		}
		if (warn != "") != tt.wantWarn {
			t.Errorf("total=%d: 期望warn=%v，实际=%q", tt.total, tt.wantWarn, warn)
		}
	}
}
