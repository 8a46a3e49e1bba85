package user

import (
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/internal/llm"
)

type ServiceGroup struct {
	IntentService   IIntentService
	RetrieveService IRetrieveService
	OrderService    IOrderService
	ChatService     IChatService
	Validator       IValidator
}

// NewServiceGroup 组装用户侧服务
// store和llmService显式注入, 便于测试时替换
func NewServiceGroup(store *global.StoreSnapshot, llmService llm.Service) ServiceGroup {
	retrieveService := NewRetrieveService(store)
	intentService := NewIntentService(store, retrieveService)
	orderService := NewOrderService(store, llmService)

	return ServiceGroup{
		IntentService:   intentService,
		RetrieveService: retrieveService,
		OrderService:    orderService,
		ChatService:     NewChatService(store, llmService, intentService, retrieveService, orderService),
		Validator:       &Validator{},
	}
}
