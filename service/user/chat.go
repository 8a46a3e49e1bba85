package user

import (
	"context"
	"fmt"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/internal/llm"
	"gitee.com/taoJie_1/support-agent/model/enum"
)

type IChatService interface {
	// 处理一条用户消息并产出最终回复
	// 返回error仅发生在闲聊生成失败时, 其余失败都已折算为固定话术
	Answer(ctx context.Context, query string) (string, error)
}

type chatService struct {
	store           *global.StoreSnapshot
	llmService      llm.Service
	intentService   IIntentService
	retrieveService IRetrieveService
	orderService    IOrderService
}

func NewChatService(store *global.StoreSnapshot, llmService llm.Service, intentService IIntentService, retrieveService IRetrieveService, orderService IOrderService) *chatService {
	return &chatService{
		store:           store,
		llmService:      llmService,
		intentService:   intentService,
		retrieveService: retrieveService,
		orderService:    orderService,
	}
}

func (s *chatService) Answer(ctx context.Context, query string) (string, error) {
	intent := s.intentService.Detect(query)
	global.Log.Debugf("意图判定结果: %s", intent)

	if intent == enum.IntentFaq {
		if answer, ok := s.store.FaqAnswer(query); ok {
			return answer, nil
		}
		// 判定与取数之间快照被重建, FAQ落空
		// 仅允许这一次改派为闲聊, 不会二次改派
		global.Log.Warnf("FAQ意图命中但快照中无答案, 改派为闲聊: %s", query)
		intent = enum.IntentGeneralChat
	}

	switch intent {
	case enum.IntentProductInfo:
		return s.answerProduct(ctx, query), nil
	case enum.IntentOrderStatus:
		return s.orderService.Answer(ctx, query), nil
	case enum.IntentGeneralChat:
		return s.answerGeneral(ctx, query)
	}

	// 正常流程到不了这里, 到了说明意图枚举和分发没对上
	global.Log.Errorf("未处理的意图: %s", intent)
	return string(enum.ReplyMsgInternalError), nil
}

// answerProduct 商品问询的RAG路径
// 没有检索到上下文时直接返回固定话术, 不调用LLM
func (s *chatService) answerProduct(ctx context.Context, query string) string {
	retrieved, ok := s.retrieveService.BuildContext(query)
	if !ok {
		return string(enum.ReplyMsgNoProductContext)
	}

	content := fmt.Sprintf("# 関連情報\n%s\n\n# 顧客の質問\n%s", retrieved, query)
	answer, err := s.llmService.Generate(ctx, enum.ModelMedium, enum.SystemPromptRAG, content)
	if err != nil {
		global.Log.Errorf("RAG生成失败: %v", err)
		return string(enum.ReplyMsgRagFailed)
	}
	return answer
}

func (s *chatService) answerGeneral(ctx context.Context, query string) (string, error) {
	answer, err := s.llmService.Generate(ctx, enum.ModelSmall, enum.SystemPromptDefault, query)
	if err != nil {
		global.Log.Errorf("闲聊生成失败: %v", err)
		return "", err
	}
	return answer, nil
}
