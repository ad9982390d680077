package http

import "net/http"

// Response 统一响应结构
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"requestId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// 预定义的响应码
const (
	CodeSuccess      = 0     // 成功
	CodeInvalidParam = 10001 // 参数错误
	CodeNotFound     = 10004 // 资源不存在
	CodeServerError  = 10005 // 服务器内部错误
	CodeRateLimited  = 10029 // 请求过于频繁
)

const (
	MsgSuccess      = "success"
	MsgInvalidParam = "invalid parameters"
	MsgNotFound     = "not found"
	MsgServerError  = "internal server error"
	MsgRateLimited  = "too many requests"
)

func (c *Context) respond(status, code int, message string, data interface{}) {
	c.JSON(status, &Response{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(RequestIDKey),
		Data:      data,
	})
}

// Success 成功响应
func (c *Context) Success(data interface{}) {
	c.respond(http.StatusOK, CodeSuccess, MsgSuccess, data)
}

// BadRequest 400 错误请求
func (c *Context) BadRequest(message string) {
	if message == "" {
		message = MsgInvalidParam
	}
	c.respond(http.StatusBadRequest, CodeInvalidParam, message, nil)
}

// NotFound 404 资源不存在
func (c *Context) NotFound(message string) {
	if message == "" {
		message = MsgNotFound
	}
	c.respond(http.StatusNotFound, CodeNotFound, message, nil)
}

// InternalServerError 500 服务器内部错误
func (c *Context) InternalServerError(message string) {
	if message == "" {
		message = MsgServerError
	}
	c.respond(http.StatusInternalServerError, CodeServerError, message, nil)
}

// TooManyRequests 429 限流
func (c *Context) TooManyRequests() {
	c.respond(http.StatusTooManyRequests, CodeRateLimited, MsgRateLimited, nil)
}
