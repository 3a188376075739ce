// Package apperr 统一错误对象：携带 HTTP 状态码与对外消息，
// 处理器只管返回错误，状态码映射集中在 response.Fail。
package apperr

import "net/http"

type E struct {
	Status  int
	Message string
	Err     error // 内部原因，仅非生产环境外显
}

func (e *E) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Status)
}

func (e *E) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &E{Status: http.StatusBadRequest, Message: msg} }
func Unauthorized(msg string) error { return &E{Status: http.StatusUnauthorized, Message: msg} }
func Forbidden(msg string) error    { return &E{Status: http.StatusForbidden, Message: msg} }
func NotFound(msg string) error     { return &E{Status: http.StatusNotFound, Message: msg} }
func Conflict(msg string) error     { return &E{Status: http.StatusConflict, Message: msg} }

// Upstream 第三方调用失败：对外 502，不重试
func Upstream(msg string, err error) error {
	return &E{Status: http.StatusBadGateway, Message: msg, Err: err}
}

func Internal(msg string, err error) error {
	return &E{Status: http.StatusInternalServerError, Message: msg, Err: err}
}
