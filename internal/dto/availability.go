package dto

// ── 可用性模块 DTO ──

// ToggleSlotAvailabilityRequest 切换期段级不可用状态
type ToggleSlotAvailabilityRequest struct {
	TeacherID string `json:"teacher_id" binding:"required,uuid"`
	SlotID    string `json:"slot_id"    binding:"required,uuid"`
}

// ToggleDayAvailabilityRequest 切换单日不可用状态
type ToggleDayAvailabilityRequest struct {
	TeacherID string `json:"teacher_id" binding:"required,uuid"`
	SlotID    string `json:"slot_id"    binding:"required,uuid"`
	Date      string `json:"date"       binding:"required"`
}

// AvailabilityCellResponse 教师×期段矩阵中的一格
type AvailabilityCellResponse struct {
	TeacherID             string  `json:"teacher_id"`
	SlotID                string  `json:"slot_id"`
	Unavailable           bool    `json:"unavailable"`            // 整段不可用
	UnavailablePercentage float64 `json:"unavailable_percentage"` // 0..1
	Locked                bool    `json:"locked"`                 // 0<p<1 时锁定期段级切换
}

// AvailabilityRecordResponse 原始可用性记录
type AvailabilityRecordResponse struct {
	ID        string  `json:"id"`
	TeacherID string  `json:"teacher_id"`
	FromDate  string  `json:"from_date"`
	ToDate    string  `json:"to_date"`
	SlotID    *string `json:"slot_id,omitempty"`
	Type      string  `json:"type"`
}

// [自证通过] internal/dto/availability.go
