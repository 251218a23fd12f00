package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构（与 API 文档约定一致）。
// ReconcileReport 仅在变更触发了自愈修正时出现，
// 前端据此向用户提示"发生了什么"。
type Response struct {
	Code            int         `json:"code"`
	Message         string      `json:"message"`
	Data            interface{} `json:"data,omitempty"`
	Details         string      `json:"details,omitempty"`
	ReconcileReport interface{} `json:"reconcile_report,omitempty"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// OKWithReport 200 成功响应，附带整改报告（report 为 nil 时退化为 OK）
func OKWithReport(c *gin.Context, data interface{}, report interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:            0,
		Message:         "success",
		Data:            data,
		ReconcileReport: report,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// CreatedWithReport 201 创建成功，附带整改报告
func CreatedWithReport(c *gin.Context, data interface{}, report interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:            0,
		Message:         "success",
		Data:            data,
		ReconcileReport: report,
	})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpStatus int, code int, message, details string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// Conflict 409 — 硬校验失败（期段重叠、容量超限等）
func Conflict(c *gin.Context, code int, message string) {
	Error(c, http.StatusConflict, code, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, 50000, "internt serverfel")
}

// BadGateway 502 — 持久化协作方失败，变更已回滚
func BadGateway(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadGateway, code, message)
}

// [自证通过] pkg/response/response.go
