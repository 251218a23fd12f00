package planner

import (
	"testing"

	"github.com/Ahell/henry-sub002/internal/model"
)

// slot-1: 2025-01-01 – 2025-01-28，模式 "tis/tor"
// 授课日（周二/周四）：01-02, 01-07, 01-09, 01-14, 01-16, 01-21, 01-23, 01-28
func newAvailabilityDataset() *model.Dataset {
	d := newTestDataset()
	d.Slots[0].EveningPattern = "tis/tor"
	return d
}

func busyDay(teacherID, day string) model.TeacherAvailability {
	return model.TeacherAvailability{
		AvailabilityID: "av-" + day, TeacherID: teacherID,
		FromDate: date(day), ToDate: date(day), Type: model.AvailabilityBusy,
	}
}

// ── IsTeacherUnavailable / 百分比测试 ──

func TestIsTeacherUnavailable_SlotLevel(t *testing.T) {
	d := newAvailabilityDataset()
	sid := "slot-1"
	d.TeacherAvailability = []model.TeacherAvailability{{
		AvailabilityID: "av-1", TeacherID: "teacher-1",
		FromDate: date("2025-01-01"), ToDate: date("2025-01-28"),
		SlotID: &sid, Type: model.AvailabilityBusy,
	}}

	if !IsTeacherUnavailable(d, "teacher-1", date("2025-01-09"), "slot-1") {
		t.Error("期段级 busy 记录应判为不可用")
	}
	if p := TeacherUnavailablePercentage(d, "teacher-1", "slot-1"); p != 1.0 {
		t.Errorf("期望比例1.0，实际=%v", p)
	}
}

func TestIsTeacherUnavailable_PartialCoverage(t *testing.T) {
	d := newAvailabilityDataset()
	// 8个授课日中覆盖4个 → 比例0.5，不判为整段不可用
	for _, day := range []string{"2025-01-02", "2025-01-07", "2025-01-09", "2025-01-14"} {
		d.TeacherAvailability = append(d.TeacherAvailability, busyDay("teacher-1", day))
	}

	if IsTeacherUnavailable(d, "teacher-1", date("2025-01-09"), "slot-1") {
		t.Error("部分覆盖不应判为整段不可用")
	}
	if p := TeacherUnavailablePercentage(d, "teacher-1", "slot-1"); p != 0.5 {
		t.Errorf("期望比例0.5，实际=%v", p)
	}
}

func TestIsTeacherUnavailable_FullDayCoverage(t *testing.T) {
	d := newAvailabilityDataset()
	// 覆盖全部8个授课日 → 视同期段不可用
	for _, day := range []string{
		"2025-01-02", "2025-01-07", "2025-01-09", "2025-01-14",
		"2025-01-16", "2025-01-21", "2025-01-23", "2025-01-28",
	} {
		d.TeacherAvailability = append(d.TeacherAvailability, busyDay("teacher-1", day))
	}

	if !IsTeacherUnavailable(d, "teacher-1", date("2025-01-09"), "slot-1") {
		t.Error("单日记录全覆盖应视同期段不可用")
	}
	if p := TeacherUnavailablePercentage(d, "teacher-1", "slot-1"); p != 1.0 {
		t.Errorf("期望比例1.0，实际=%v", p)
	}
}

func TestIsTeacherUnavailable_NoRecords(t *testing.T) {
	d := newAvailabilityDataset()
	if IsTeacherUnavailable(d, "teacher-1", date("2025-01-09"), "slot-1") {
		t.Error("无记录应判为可用")
	}
}

// ── 切换语义测试 ──

func TestToggleSlotAvailability_SetAndUnset(t *testing.T) {
	d := newAvailabilityDataset()

	if err := ToggleSlotAvailability(d, "teacher-1", "slot-1"); err != nil {
		t.Fatalf("设置应成功: %v", err)
	}
	if !IsTeacherUnavailable(d, "teacher-1", date("2025-01-09"), "slot-1") {
		t.Error("切换后应不可用")
	}
	if err := ToggleSlotAvailability(d, "teacher-1", "slot-1"); err != nil {
		t.Fatalf("取消应成功: %v", err)
	}
	if IsTeacherUnavailable(d, "teacher-1", date("2025-01-09"), "slot-1") {
		t.Error("再次切换后应恢复可用")
	}
	if len(d.TeacherAvailability) != 0 {
		t.Errorf("对称切换后不应残留记录: %+v", d.TeacherAvailability)
	}
}

func TestToggleSlotAvailability_PartialLocked(t *testing.T) {
	d := newAvailabilityDataset()
	d.TeacherAvailability = append(d.TeacherAvailability, busyDay("teacher-1", "2025-01-02"))

	err := ToggleSlotAvailability(d, "teacher-1", "slot-1")
	if err == nil {
		t.Fatal("部分不可用时期段级切换应被拒绝")
	}
	if !IsValidation(err) {
		t.Errorf("期望 ValidationError，实际=%T", err)
	}
}

func TestToggleDayAvailability_SplitsSlotRecord(t *testing.T) {
	d := newAvailabilityDataset()
	sid := "slot-1"
	d.TeacherAvailability = []model.TeacherAvailability{{
		AvailabilityID: "av-1", TeacherID: "teacher-1",
		FromDate: date("2025-01-01"), ToDate: date("2025-01-28"),
		SlotID: &sid, Type: model.AvailabilityBusy,
	}}

	// 切换一个授课日：期段级记录拆分为其余7天的单日记录
	if err := ToggleDayAvailability(d, "teacher-1", "slot-1", date("2025-01-09")); err != nil {
		t.Fatalf("切换应成功: %v", err)
	}
	for _, a := range d.TeacherAvailability {
		if a.IsSlotLevel() {
			t.Fatal("拆分后不应残留期段级记录")
		}
	}
	if len(d.TeacherAvailability) != 7 {
		t.Errorf("期望7条单日记录，实际=%d", len(d.TeacherAvailability))
	}
	if dayLevelBusy(d, "teacher-1", date("2025-01-09")) >= 0 {
		t.Error("被切换的日期应恢复可用")
	}
	if p := TeacherUnavailablePercentage(d, "teacher-1", "slot-1"); p != 0.875 {
		t.Errorf("期望比例7/8，实际=%v", p)
	}
}

func TestToggleDayAvailability_SetAndUnset(t *testing.T) {
	d := newAvailabilityDataset()

	if err := ToggleDayAvailability(d, "teacher-1", "slot-1", date("2025-01-09")); err != nil {
		t.Fatalf("设置应成功: %v", err)
	}
	if dayLevelBusy(d, "teacher-1", date("2025-01-09")) < 0 {
		t.Error("应存在单日记录")
	}
	if err := ToggleDayAvailability(d, "teacher-1", "slot-1", date("2025-01-09")); err != nil {
		t.Fatalf("取消应成功: %v", err)
	}
	if len(d.TeacherAvailability) != 0 {
		t.Error("对称切换后不应残留记录")
	}
}

func TestToggleDayAvailability_RejectsNonTeachingDay(t *testing.T) {
	d := newAvailabilityDataset()
	// 2025-01-08 是周三，不在 tis/tor 模式内
	if err := ToggleDayAvailability(d, "teacher-1", "slot-1", date("2025-01-08")); err == nil {
		t.Error("非授课日应被拒绝")
	}
}
