package llm

import (
	"context"
	"errors"
	"strings"

	"gitee.com/taoJie_1/support-agent/model/config"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// client 封装了与LLM交互的底层逻辑
type client struct {
	log        *logrus.Logger
	llmClients map[enum.LlmSize]*openai.Client
	llmConfigs []config.Llm
}

type Service interface {
	// 调用LLM进行单轮生成, 返回经ExtractText规整后的文本
	Generate(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, temperature ...float32) (string, error)
	// 携带工具定义发起第一轮调用, 返回原始响应供调用方检查工具调用
	GenerateWithTools(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error)
	// 以完整历史消息发起第二轮调用(工具结果回传等场景)
	GenerateFromHistory(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, history []openai.ChatCompletionMessage) (string, error)
}

// NewClient 创建一个新的LLM客户端实例，并通过依赖注入初始化
func NewClient(log *logrus.Logger, clients map[enum.LlmSize]*openai.Client, configs []config.Llm) Service {
	return &client{
		log:        log,
		llmClients: clients,
		llmConfigs: configs,
	}
}

// getLlmConfig 是一个内部辅助函数，用于根据大小获取模型配置
func (c *client) getLlmConfig(size enum.LlmSize) *config.Llm {
	for i := range c.llmConfigs {
		if enum.LlmSize(c.llmConfigs[i].Size) == size {
			return &c.llmConfigs[i]
		}
	}
	// 如果没找到指定大小的模型，则默认使用第一个配置的模型
	if len(c.llmConfigs) > 0 {
		return &c.llmConfigs[0]
	}
	return nil
}

// filterContent 从LLM的原始响应中剥离思考过程标签
func filterContent(rawAnswer string) string {
	if parts := strings.SplitN(rawAnswer, "</think>", 2); len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(rawAnswer)
}

// ExtractText 把一次LLM响应规整成可直接回复用户的文本
// 探测顺序固定: 正文 -> 分段正文拼接 -> 被拦截占位 -> 未知形态占位
// 所有生成调用点都必须经过这里, 不允许各自解析响应结构
func ExtractText(resp *openai.ChatCompletionResponse) string {
	if resp == nil || len(resp.Choices) == 0 {
		return string(enum.ReplyMsgBlocked)
	}

	choice := resp.Choices[0]
	if choice.Message.Content != "" {
		return filterContent(choice.Message.Content)
	}

	if len(choice.Message.MultiContent) > 0 {
		var sb strings.Builder
		for _, part := range choice.Message.MultiContent {
			if part.Type == openai.ChatMessagePartTypeText {
				sb.WriteString(part.Text)
			}
		}
		if sb.Len() > 0 {
			return filterContent(sb.String())
		}
	}

	if choice.FinishReason == openai.FinishReasonContentFilter {
		return string(enum.ReplyMsgBlocked)
	}

	return string(enum.ReplyMsgUnexpected)
}

func (c *client) pick(size enum.LlmSize) (*openai.Client, *config.Llm, error) {
	llmClient, ok := c.llmClients[size]
	if !ok {
		return nil, nil, errors.New("未找到指定大小的LLM客户端实例")
	}
	llmConfig := c.getLlmConfig(size)
	if llmConfig == nil || llmConfig.Model == "" {
		return nil, nil, errors.New("未找到指定的LLM客户端配置")
	}
	return llmClient, llmConfig, nil
}

func (c *client) Generate(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, temperature ...float32) (string, error) {
	llmClient, llmConfig, err := c.pick(size)
	if err != nil {
		return "", err
	}

	req := openai.ChatCompletionRequest{
		Model: llmConfig.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: string(systemPrompt),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: content,
			},
		},
	}

	// 优先使用传入的temperature参数，其次是配置文件中的，最后使用LLM默认值
	if len(temperature) > 0 {
		req.Temperature = temperature[0]
	} else if llmConfig.Temperature != nil {
		req.Temperature = *llmConfig.Temperature
	}

	resp, err := llmClient.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		c.log.Errorf("LLM API调用失败: %v", err)
		return "", errors.New("LLM服务暂不可用, 请稍后再试")
	}

	return ExtractText(&resp), nil
}

func (c *client) GenerateWithTools(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error) {
	llmClient, llmConfig, err := c.pick(size)
	if err != nil {
		return nil, err
	}

	req := openai.ChatCompletionRequest{
		Model: llmConfig.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: string(systemPrompt),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: content,
			},
		},
		Tools: tools,
		//由模型自行决定是否调用工具
		ToolChoice: "auto",
	}

	resp, err := llmClient.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		c.log.Errorf("LLM API(工具调用)失败: %v", err)
		return nil, errors.New("LLM服务暂不可用, 请稍后再试")
	}
	return &resp, nil
}

func (c *client) GenerateFromHistory(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, history []openai.ChatCompletionMessage) (string, error) {
	llmClient, llmConfig, err := c.pick(size)
	if err != nil {
		return "", err
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: string(systemPrompt),
	})
	messages = append(messages, history...)

	req := openai.ChatCompletionRequest{
		Model:    llmConfig.Model,
		Messages: messages,
	}

	resp, err := llmClient.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		c.log.Errorf("LLM API(历史对话)调用失败: %v", err)
		return "", errors.New("LLM服务暂不可用, 请稍后再试")
	}

	return ExtractText(&resp), nil
}
