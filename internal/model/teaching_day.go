package model

import "time"

// 授课日三态（IsDefault × IsActive）：
//   默认日生效   IsDefault=true,  IsActive=true  （等价于无记录）
//   默认日停用   IsDefault=true,  IsActive=false
//   追加日（alt） IsDefault=false, IsActive=true

// SlotDay 期段级授课日覆盖表 — 对应 slot_days
type SlotDay struct {
	SlotDayID string    `gorm:"type:uuid;primaryKey" json:"slot_day_id"`
	SlotID    string    `gorm:"type:uuid;not null"   json:"slot_id"`
	Date      time.Time `gorm:"type:date;not null"   json:"date"`
	IsDefault bool      `gorm:"not null;default:true" json:"is_default"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
}

// TableName 指定表名
func (SlotDay) TableName() string { return "slot_days" }

// CourseSlotDay 课程级授课日覆盖表 — 对应 course_slot_days
// 同一期段内多门课授课日不同步时使用；优先级高于期段级覆盖。
type CourseSlotDay struct {
	CourseSlotDayID string    `gorm:"type:uuid;primaryKey" json:"course_slot_day_id"`
	CourseSlotID    string    `gorm:"type:uuid;not null"   json:"course_slot_id"`
	Date            time.Time `gorm:"type:date;not null"   json:"date"`
	IsDefault       bool      `gorm:"not null;default:true" json:"is_default"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
}

// TableName 指定表名
func (CourseSlotDay) TableName() string { return "course_slot_days" }

// ExamDate 考试日表 — 对应 exam_dates
// 每个期段至多一条；日期必须是该期段的授课日；默认锁定，
// 仅在编辑时短暂解锁，确认后重新锁定。
type ExamDate struct {
	ExamDateID string    `gorm:"type:uuid;primaryKey"        json:"exam_date_id"`
	SlotID     string    `gorm:"type:uuid;not null;uniqueIndex" json:"slot_id"`
	Date       time.Time `gorm:"type:date;not null"          json:"date"`
	Locked     bool      `gorm:"not null;default:true"       json:"locked"`
}

// TableName 指定表名
func (ExamDate) TableName() string { return "exam_dates" }

// [自证通过] internal/model/teaching_day.go
