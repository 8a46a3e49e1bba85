package user

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/support-agent/model/common"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"gitee.com/taoJie_1/support-agent/service"
)

type ApiGroup struct {
	ChatApi ChatApi
}

type ChatApi struct{}

// HandleChat 同步处理一条用户消息
// 契约: 成功 {"response": ...}; 失败 {"error": ...}; query缺失或为空返回400
func (d *ChatApi) HandleChat(ctx *gin.Context) {
	var req common.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.ChatFail(ctx, http.StatusBadRequest, "リクエストボディに 'query' が含まれていません。")
		return
	}

	if err := service.Service.UserServiceGroup.Validator.ValidatorChatRequest(&req); err != nil {
		common.ChatFail(ctx, http.StatusBadRequest, err.Error())
		return
	}

	query := strings.TrimSpace(req.Query)

	answer, err := service.Service.UserServiceGroup.ChatService.Answer(ctx.Request.Context(), query)
	if err != nil {
		common.ChatFail(ctx, http.StatusInternalServerError, string(enum.ReplyMsgGeneralFailed))
		return
	}

	common.ChatSuccess(ctx, answer)
}
