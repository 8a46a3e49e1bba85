package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/sashabaranov/go-openai"
)

func toolCallResponse(orderIdArg string) *openai.ChatCompletionResponse {
	return &openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{
				Message: openai.ChatCompletionMessage{
					Role: openai.ChatMessageRoleAssistant,
					ToolCalls: []openai.ToolCall{
						{
							ID:   "call_1",
							Type: openai.ToolTypeFunction,
							Function: openai.FunctionCall{
								Name:      "get_order_info",
								Arguments: `{"order_id": "` + orderIdArg + `"}`,
							},
						},
					},
				},
			},
		},
	}
}

// TestOrderTwoRoundFlow 完整的两轮工具调用流程
func TestOrderTwoRoundFlow(t *testing.T) {
	var gotHistory []openai.ChatCompletionMessage

	fake := &fakeLlmService{
		withToolsFn: func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error) {
			if len(tools) != 1 || tools[0].Function.Name != "get_order_info" {
				t.Errorf("第一轮应携带get_order_info工具定义")
			}
			return toolCallResponse("ord123"), nil
		},
		fromHistoryFn: func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, history []openai.ChatCompletionMessage) (string, error) {
			gotHistory = history
			return "ご注文ORD123は発送済みです。", nil
		},
	}

	svc := NewOrderService(newTestStore(), fake)
	answer := svc.Answer(context.Background(), "注文番号: ORD123 の状況を教えて")

	if answer != "ご注文ORD123は発送済みです。" {
		t.Errorf("最终回复应来自第二轮生成, 实际: %s", answer)
	}

	if len(gotHistory) != 3 {
		t.Fatalf("第二轮历史应为3条消息, 实际 %d 条", len(gotHistory))
	}
	if gotHistory[0].Role != openai.ChatMessageRoleUser || gotHistory[0].Content != "注文番号: ORD123 の状況を教えて" {
		t.Error("历史第1条应为用户原话")
	}
	if len(gotHistory[1].ToolCalls) != 1 || gotHistory[1].ToolCalls[0].ID != "call_1" {
		t.Error("历史第2条应为第一轮assistant消息原样(含工具调用)")
	}
	if gotHistory[2].Role != openai.ChatMessageRoleTool || gotHistory[2].ToolCallID != "call_1" {
		t.Error("历史第3条应为工具结果且回填ToolCallID")
	}
	// 工具结果: 大小写不敏感命中, 日文状态 + 发货日期
	toolResult := gotHistory[2].Content
	if !strings.Contains(toolResult, "ORD123") || !strings.Contains(toolResult, "発送済み") || !strings.Contains(toolResult, "2025-04-10発送") {
		t.Errorf("工具结果内容不符: %s", toolResult)
	}
}

// TestOrderNoToolCall 模型不调用工具时, 第一轮文本即最终回复
func TestOrderNoToolCall(t *testing.T) {
	fake := &fakeLlmService{
		withToolsFn: func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error) {
			return &openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Content: "注文番号を教えていただけますか？"}},
				},
			}, nil
		},
	}

	svc := NewOrderService(newTestStore(), fake)
	if got := svc.Answer(context.Background(), "注文について"); got != "注文番号を教えていただけますか？" {
		t.Errorf("应返回第一轮文本, 实际: %s", got)
	}
}

// TestOrderToolResultVariants 工具结果按状态携带不同日期, 未命中不带状态
func TestOrderToolResultVariants(t *testing.T) {
	svc := NewOrderService(newTestStore(), &fakeLlmService{})

	tests := []struct {
		orderId     string
		contains    []string
		notContains []string
	}{
		{"ORD123", []string{"発送済み", "2025-04-10発送"}, nil},
		{"ord456", []string{"処理中", "お届け予定: 2025-04-16"}, nil},
		{"XYZ789", []string{"配達完了", "2025-04-12配達完了"}, nil},
		{"NOPE999", []string{"見つかりませんでした"}, []string{"発送済み", "処理中", "配達完了", "不明"}},
	}

	for _, tt := range tests {
		result := svc.buildOrderToolResult(tt.orderId)
		for _, want := range tt.contains {
			if !strings.Contains(result, want) {
				t.Errorf("buildOrderToolResult(%q) 应包含 %q, 实际: %s", tt.orderId, want, result)
			}
		}
		for _, ban := range tt.notContains {
			if strings.Contains(result, ban) {
				t.Errorf("buildOrderToolResult(%q) 不应包含 %q, 实际: %s", tt.orderId, ban, result)
			}
		}
	}
}

// TestOrderFailures 各环节失败都折算为订单专用话术
func TestOrderFailures(t *testing.T) {
	store := newTestStore()

	// 第一轮调用失败
	svc := NewOrderService(store, &fakeLlmService{
		withToolsFn: func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error) {
			return nil, errors.New("接続エラー")
		},
	})
	if got := svc.Answer(context.Background(), "注文番号: ORD123"); got != string(enum.ReplyMsgOrderFailed) {
		t.Errorf("第一轮失败应返回订单话术, 实际: %s", got)
	}

	// 工具参数不是合法JSON
	svc = NewOrderService(store, &fakeLlmService{
		withToolsFn: func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error) {
			resp := toolCallResponse("x")
			resp.Choices[0].Message.ToolCalls[0].Function.Arguments = `{invalid`
			return resp, nil
		},
	})
	if got := svc.Answer(context.Background(), "注文番号: ORD123"); got != string(enum.ReplyMsgOrderFailed) {
		t.Errorf("参数解析失败应返回订单话术, 实际: %s", got)
	}

	// 第二轮调用失败
	svc = NewOrderService(store, &fakeLlmService{
		withToolsFn: func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error) {
			return toolCallResponse("ORD123"), nil
		},
		fromHistoryFn: func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, history []openai.ChatCompletionMessage) (string, error) {
			return "", errors.New("接続エラー")
		},
	})
	if got := svc.Answer(context.Background(), "注文番号: ORD123"); got != string(enum.ReplyMsgOrderFailed) {
		t.Errorf("第二轮失败应返回订单话术, 实际: %s", got)
	}
}
