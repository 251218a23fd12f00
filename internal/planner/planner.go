// Package planner 实现排课约束引擎：先修闭包、跨实体校验、
// 教师可用性、授课日解析与 samläsning（合读）匹配启发式。
// 所有函数在 *model.Dataset 上就地操作或只读扫描，不做持久化。
package planner

import "fmt"

// ValidationError 硬校验失败 — 阻断本次变更并整体回滚。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf 构造格式化的硬校验错误
func Validationf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation 判断错误是否为硬校验失败
func IsValidation(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
