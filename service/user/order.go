package user

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/internal/llm"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

type IOrderService interface {
	// 订单状况问询, 失败统一折算为订单专用话术
	Answer(ctx context.Context, query string) string
}

const toolNameGetOrderInfo = "get_order_info"

// 工具定义只构建一次, 每次请求复用
var toolGetOrderInfo = openai.Tool{
	Type: openai.ToolTypeFunction,
	Function: &openai.FunctionDefinition{
		Name:        toolNameGetOrderInfo,
		Description: "注文番号から注文の現在の状況を取得する",
		Parameters: jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"order_id": {
					Type:        jsonschema.String,
					Description: "注文番号 (例: ORD123, XYZ789)",
				},
			},
			Required: []string{"order_id"},
		},
	},
}

type orderService struct {
	store      *global.StoreSnapshot
	llmService llm.Service
}

func NewOrderService(store *global.StoreSnapshot, llmService llm.Service) *orderService {
	return &orderService{
		store:      store,
		llmService: llmService,
	}
}

// Answer 两轮工具调用流程:
// 第一轮带工具定义发给模型; 模型要求调用get_order_info时本地查单,
// 把结果连同第一轮assistant消息原样回传发起第二轮; 模型不调用工具时
// 第一轮文本(通常是追问注文番号)即最终回复
func (s *orderService) Answer(ctx context.Context, query string) string {
	resp, err := s.llmService.GenerateWithTools(ctx, enum.ModelMedium, enum.SystemPromptOrder, query, []openai.Tool{toolGetOrderInfo})
	if err != nil {
		global.Log.Errorf("订单查询第一轮调用失败: %v", err)
		return string(enum.ReplyMsgOrderFailed)
	}
	if len(resp.Choices) == 0 {
		global.Log.Warnf("订单查询第一轮返回空choices")
		return llm.ExtractText(resp)
	}

	first := resp.Choices[0].Message
	if len(first.ToolCalls) == 0 {
		return llm.ExtractText(resp)
	}

	call := first.ToolCalls[0]
	if call.Function.Name != toolNameGetOrderInfo {
		global.Log.Errorf("模型请求了未知工具: %s", call.Function.Name)
		return string(enum.ReplyMsgOrderFailed)
	}

	var args struct {
		OrderId string `json:"order_id"`
	}
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		global.Log.Errorf("工具参数解析失败: %v, 原文: %s", err, call.Function.Arguments)
		return string(enum.ReplyMsgOrderFailed)
	}

	toolResult := s.buildOrderToolResult(args.OrderId)

	// 第二轮历史: 用户原话 + 第一轮assistant消息(含工具调用)原样 + 工具结果
	history := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: query,
		},
		first,
		{
			Role:       openai.ChatMessageRoleTool,
			Content:    toolResult,
			ToolCallID: call.ID,
		},
	}

	answer, err := s.llmService.GenerateFromHistory(ctx, enum.ModelMedium, enum.SystemPromptOrder, history)
	if err != nil {
		global.Log.Errorf("订单查询第二轮调用失败: %v", err)
		return string(enum.ReplyMsgOrderFailed)
	}
	return answer
}

// buildOrderToolResult 本地查单并生成给模型看的自然语言结果
// 状态的日文文案只在这里落地, 未命中的结果不携带任何状态
func (s *orderService) buildOrderToolResult(orderId string) string {
	orderId = strings.ToUpper(strings.TrimSpace(orderId))

	order, ok := s.store.FindOrder(orderId)
	if !ok {
		return fmt.Sprintf("注文番号「%s」に該当する注文が見つかりませんでした。番号をお確かめください。", orderId)
	}

	result := fmt.Sprintf("ご注文（%s）の状況は「%s」です。", order.OrderId, order.Status.Label())
	switch order.Status {
	case enum.OrderStatusShipped:
		if order.ShippedDate != "" {
			result += fmt.Sprintf(" (%s発送)", order.ShippedDate)
		}
	case enum.OrderStatusProcessing:
		if order.EstimatedDelivery != "" {
			result += fmt.Sprintf(" (お届け予定: %s)", order.EstimatedDelivery)
		}
	case enum.OrderStatusDelivered:
		if order.DeliveredDate != "" {
			result += fmt.Sprintf(" (%s配達完了)", order.DeliveredDate)
		}
	}
	return result
}
