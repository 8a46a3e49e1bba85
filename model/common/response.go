package common

import (
	"net/http"

	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Code enum.ResCode `json:"code"`
	Data interface{}  `json:"data"`
	Msg  enum.Msg     `json:"msg"`
}

// ChatResponse /chat接口的成功响应体, 字段名与前端约定保持一致
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatError /chat接口的失败响应体
type ChatError struct {
	Error string `json:"error"`
}

func result(ctx *gin.Context, code enum.ResCode, msg enum.Msg, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code: code,
		Data: data,
		Msg:  msg,
	})
}

// 带data
func Success(ctx *gin.Context, data interface{}) {
	result(ctx, enum.SuccessCode, enum.DefaultSuccessMsg, data)
}

// 带msg,不带data
func SuccessOk(ctx *gin.Context, message string) {
	result(ctx, enum.SuccessCode, enum.Msg(message), map[string]interface{}{})
}

func Fail(ctx *gin.Context, message string) {
	result(ctx, enum.ErrorCode, enum.Msg(message), map[string]interface{}{})
}

func FailNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, Response{
		Code: enum.ErrorCode,
		Msg:  enum.DefaultFailMsg,
	})
}

// ChatSuccess 按原始前端契约返回 {"response": ...}
func ChatSuccess(ctx *gin.Context, text string) {
	ctx.JSON(http.StatusOK, ChatResponse{Response: text})
}

// ChatFail 按原始前端契约返回 {"error": ...}
func ChatFail(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ChatError{Error: message})
}
