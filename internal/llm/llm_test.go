package llm

import (
	"testing"

	"gitee.com/taoJie_1/support-agent/model/config"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/sashabaranov/go-openai"
)

// TestExtractText 响应规整的各种形态
func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		resp *openai.ChatCompletionResponse
		want string
	}{
		{
			name: "正常文本",
			resp: &openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Content: "こんにちは！"}},
				},
			},
			want: "こんにちは！",
		},
		{
			name: "剥离思考过程",
			resp: &openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Content: "考え中...</think>\n こんにちは！"}},
				},
			},
			want: "こんにちは！",
		},
		{
			name: "分段正文拼接",
			resp: &openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{
						MultiContent: []openai.ChatMessagePart{
							{Type: openai.ChatMessagePartTypeText, Text: "こんに"},
							{Type: openai.ChatMessagePartTypeImageURL},
							{Type: openai.ChatMessagePartTypeText, Text: "ちは！"},
						},
					}},
				},
			},
			want: "こんにちは！",
		},
		{
			name: "nil响应视为被拦截",
			resp: nil,
			want: string(enum.ReplyMsgBlocked),
		},
		{
			name: "空choices视为被拦截",
			resp: &openai.ChatCompletionResponse{},
			want: string(enum.ReplyMsgBlocked),
		},
		{
			name: "内容安全拦截",
			resp: &openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{FinishReason: openai.FinishReasonContentFilter},
				},
			},
			want: string(enum.ReplyMsgBlocked),
		},
		{
			name: "空消息且非拦截, 未知形态",
			resp: &openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{FinishReason: openai.FinishReasonStop},
				},
			},
			want: string(enum.ReplyMsgUnexpected),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractText(tt.resp); got != tt.want {
				t.Errorf("ExtractText() = %q, 期望 %q", got, tt.want)
			}
		})
	}
}

// TestFilterContent 无标签时只做首尾去空白
func TestFilterContent(t *testing.T) {
	if got := filterContent("  こんにちは  "); got != "こんにちは" {
		t.Errorf("filterContent() = %q", got)
	}
	if got := filterContent("a</think>b</think>c"); got != "b</think>c" {
		t.Errorf("只剥离第一个标签之前的内容, 实际: %q", got)
	}
}

// TestGetLlmConfig 找不到指定大小时退回第一个配置
func TestGetLlmConfig(t *testing.T) {
	c := &client{
		llmConfigs: []config.Llm{
			{Model: "model-a", Size: string(enum.ModelSmall)},
			{Model: "model-b", Size: string(enum.ModelMedium)},
		},
	}

	if got := c.getLlmConfig(enum.ModelMedium); got == nil || got.Model != "model-b" {
		t.Error("应按大小精确命中配置")
	}
	if got := c.getLlmConfig(enum.ModelLarge); got == nil || got.Model != "model-a" {
		t.Error("未命中时应退回第一个配置")
	}

	empty := &client{}
	if got := empty.getLlmConfig(enum.ModelSmall); got != nil {
		t.Error("无配置时应返回nil")
	}
}
