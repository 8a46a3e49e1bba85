package user

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/db"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	global.Log = logrus.New()
	global.Log.SetOutput(io.Discard)
	global.Config.Ai.MaxPromptLength = 1000
	global.Config.Ai.RetrieveTopK = 2
	global.Config.Ai.OrderKeywords = []string{
		"注文", "オーダー", "発送", "配送", "届かない", "いつ届きますか",
		"order", "shipment", "delivery", "track",
	}
	os.Exit(m.Run())
}

// newTestStore 用内置种子数据构建一份测试快照
func newTestStore() *global.StoreSnapshot {
	faqs := make(map[string]string)
	for _, f := range dao.SeedFaqs() {
		faqs[f.Question] = f.Answer
	}
	orders := make(map[string]db.Order)
	for _, o := range dao.SeedOrders() {
		orders[strings.ToUpper(o.OrderId)] = o
	}

	store := &global.StoreSnapshot{}
	store.Replace(faqs, dao.SeedProducts(), orders)
	return store
}

// fakeLlmService 按需替换各方法, 未设置的方法被调用视为用例失败
type fakeLlmService struct {
	generateFn    func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, temperature ...float32) (string, error)
	withToolsFn   func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error)
	fromHistoryFn func(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, history []openai.ChatCompletionMessage) (string, error)
}

func (f *fakeLlmService) Generate(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, temperature ...float32) (string, error) {
	if f.generateFn == nil {
		return "", errors.New("不应调用Generate")
	}
	return f.generateFn(ctx, size, systemPrompt, content, temperature...)
}

func (f *fakeLlmService) GenerateWithTools(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, content string, tools []openai.Tool) (*openai.ChatCompletionResponse, error) {
	if f.withToolsFn == nil {
		return nil, errors.New("不应调用GenerateWithTools")
	}
	return f.withToolsFn(ctx, size, systemPrompt, content, tools)
}

func (f *fakeLlmService) GenerateFromHistory(ctx context.Context, size enum.LlmSize, systemPrompt enum.SystemPrompt, history []openai.ChatCompletionMessage) (string, error) {
	if f.fromHistoryFn == nil {
		return "", errors.New("不应调用GenerateFromHistory")
	}
	return f.fromHistoryFn(ctx, size, systemPrompt, history)
}
