package dto

// ── 规划模块 DTO ──

// PrerequisiteProblemResponse 先修违规
type PrerequisiteProblemResponse struct {
	Type             string `json:"type"` // missing | before_prerequisite
	CohortID         string `json:"cohort_id"`
	CohortName       string `json:"cohort_name"`
	CourseID         string `json:"course_id"`
	CourseCode       string `json:"course_code"`
	RunID            string `json:"run_id"`
	PrerequisiteID   string `json:"prerequisite_id"`
	PrerequisiteCode string `json:"prerequisite_code"`
}

// MergeSuggestionResponse 合读建议
type MergeSuggestionResponse struct {
	RunID          string `json:"run_id"`
	SlotID         string `json:"slot_id"`
	CurrentTotal   int    `json:"current_total"`
	ResultingTotal int    `json:"resulting_total"`
	Reason         string `json:"reason"`
}

// DepotCourseResponse 候课区排序条目
type DepotCourseResponse struct {
	CourseID       string `json:"course_id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Score          int    `json:"score"`
	Note           string `json:"note,omitempty"`
	PreferredOrder int    `json:"preferred_order"`
}

// CapacityCheckResponse 人数上限校验结果
type CapacityCheckResponse struct {
	Total   int    `json:"total"`
	OK      bool   `json:"ok"`
	Warning string `json:"warning,omitempty"`
}

// ReconcileReportResponse 整改报告（自愈修正的用户通知载体）
type ReconcileReportResponse struct {
	TeacherDrops []TeacherDropResponse `json:"teacher_drops,omitempty"`
	RemovedRuns  []RunRemovalResponse  `json:"removed_runs,omitempty"`
	PrunedRunIDs []string              `json:"pruned_run_ids,omitempty"`
	AddedLinks   int                   `json:"added_links,omitempty"`
	RemovedLinks int                   `json:"removed_links,omitempty"`
}

// TeacherDropResponse 教师被静默移除的记录
type TeacherDropResponse struct {
	TeacherID string `json:"teacher_id"`
	RunID     string `json:"run_id"`
	CourseID  string `json:"course_id"`
	SlotID    string `json:"slot_id"`
}

// RunRemovalResponse 课次组被降级回候课区的记录
type RunRemovalResponse struct {
	CourseID  string   `json:"course_id"`
	SlotID    string   `json:"slot_id"`
	RunIDs    []string `json:"run_ids"`
	CohortIDs []string `json:"cohort_ids"`
	Status    string   `json:"status"`
}

// [自证通过] internal/dto/planning.go
