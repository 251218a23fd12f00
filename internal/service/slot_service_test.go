package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/dto"
	"github.com/Ahell/henry-sub002/internal/planner"
)

func setupSlotService(t *testing.T) SlotService {
	st, _ := setupStore(t, nil)
	return NewSlotService(st, zap.NewNop())
}

// ── Create 测试 ──

func TestSlotService_Create_DefaultEndDate(t *testing.T) {
	svc := setupSlotService(t)

	result, _, err := svc.Create(context.Background(), &dto.CreateSlotRequest{
		StartDate: "2025-11-03",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.EndDate != "2025-11-30" {
		t.Errorf("缺省结束日应为开始日 + 27 天，实际=%s", result.EndDate)
	}
}

func TestSlotService_Create_OverlapRejected(t *testing.T) {
	svc := setupSlotService(t)

	// 与 slot-1（2025-09-01..09-28）重叠
	_, _, err := svc.Create(context.Background(), &dto.CreateSlotRequest{
		StartDate: "2025-09-15",
		EndDate:   "2025-10-12",
	})
	if !planner.IsValidation(err) {
		t.Errorf("重叠期段应触发硬校验错误，实际: %v", err)
	}
}

func TestSlotService_Create_EndBeforeStart(t *testing.T) {
	svc := setupSlotService(t)

	_, _, err := svc.Create(context.Background(), &dto.CreateSlotRequest{
		StartDate: "2025-11-03",
		EndDate:   "2025-11-01",
	})
	if !errors.Is(err, ErrSlotDateInvalid) {
		t.Errorf("期望 ErrSlotDateInvalid，实际: %v", err)
	}
}

// ── 授课日测试 ──

func TestSlotService_ToggleTeachingDay_SlotLevel(t *testing.T) {
	svc := setupSlotService(t)

	before, err := svc.TeachingDays(context.Background(), "slot-1", "")
	if err != nil {
		t.Fatalf("TeachingDays 应成功: %v", err)
	}

	// 停用一个默认授课日
	if _, err := svc.ToggleTeachingDay(context.Background(), "slot-1", &dto.ToggleDayRequest{Date: "2025-09-01"}); err != nil {
		t.Fatalf("ToggleTeachingDay 应成功: %v", err)
	}

	after, err := svc.TeachingDays(context.Background(), "slot-1", "")
	if err != nil {
		t.Fatalf("TeachingDays 应成功: %v", err)
	}
	if len(after.TeachingDays) != len(before.TeachingDays)-1 {
		t.Errorf("停用后授课日应减一：%d → %d", len(before.TeachingDays), len(after.TeachingDays))
	}

	// 再次切换 → 恢复默认
	if _, err := svc.ToggleTeachingDay(context.Background(), "slot-1", &dto.ToggleDayRequest{Date: "2025-09-01"}); err != nil {
		t.Fatalf("ToggleTeachingDay 应成功: %v", err)
	}
	restored, _ := svc.TeachingDays(context.Background(), "slot-1", "")
	if len(restored.TeachingDays) != len(before.TeachingDays) {
		t.Errorf("再次切换应恢复默认授课日数：%d", len(restored.TeachingDays))
	}
}

// ── 考试日测试 ──

func TestSlotService_ExamDate_LockCycle(t *testing.T) {
	svc := setupSlotService(t)

	result, err := svc.SetExamDate(context.Background(), "slot-1", &dto.SetExamDateRequest{Date: "2025-09-26"})
	if err != nil {
		t.Fatalf("SetExamDate 应成功: %v", err)
	}
	if !result.Locked {
		t.Error("新设考试日应处于锁定状态")
	}

	// 锁定状态下改期应被拒绝
	if _, err := svc.SetExamDate(context.Background(), "slot-1", &dto.SetExamDateRequest{Date: "2025-09-25"}); err == nil {
		t.Fatal("锁定状态下改期应失败")
	}

	// 解锁后改期成功
	if err := svc.UnlockExamDate(context.Background(), "slot-1"); err != nil {
		t.Fatalf("UnlockExamDate 应成功: %v", err)
	}
	moved, err := svc.SetExamDate(context.Background(), "slot-1", &dto.SetExamDateRequest{Date: "2025-09-25"})
	if err != nil {
		t.Fatalf("解锁后改期应成功: %v", err)
	}
	if moved.Date != "2025-09-25" || !moved.Locked {
		t.Errorf("改期后应重新锁定：date=%s locked=%v", moved.Date, moved.Locked)
	}
}

func TestSlotService_GetByID_IncludesExamDate(t *testing.T) {
	svc := setupSlotService(t)

	if _, err := svc.SetExamDate(context.Background(), "slot-1", &dto.SetExamDateRequest{Date: "2025-09-26"}); err != nil {
		t.Fatalf("SetExamDate 应成功: %v", err)
	}
	result, err := svc.GetByID(context.Background(), "slot-1")
	if err != nil {
		t.Fatalf("GetByID 应成功: %v", err)
	}
	if result.ExamDate == nil || result.ExamDate.Date != "2025-09-26" {
		t.Errorf("期段响应应含考试日: %+v", result.ExamDate)
	}
}

// ── Delete 测试 ──

func TestSlotService_Delete_NotFound(t *testing.T) {
	svc := setupSlotService(t)

	_, err := svc.Delete(context.Background(), "finns-inte")
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("期望 ErrSlotNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/slot_service_test.go
