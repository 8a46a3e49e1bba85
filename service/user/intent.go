package user

import (
	"regexp"
	"strings"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"gitee.com/taoJie_1/support-agent/utils"
)

type IIntentService interface {
	// 判定一条用户消息的意图, 保证不会panic
	Detect(query string) enum.Intent
}

// 注文番号的两种书写形态
// Go的\b只认ASCII边界, 带标签的模式不能以\b开头(注文等日文前无ASCII边界)
var (
	orderIdLabeledRe = regexp.MustCompile(`(?i)(?:注文(?:番号)?|オーダー|order(?:\s*(?:no|number|id))?|ID)[\s:：]+([A-Z0-9-]{3,})`)
	orderIdBareRe    = regexp.MustCompile(`(?i)\b(ORD[0-9-]+|[A-Z]{3}[0-9]{3,}|[0-9]{5,})\b`)
)

type intentService struct {
	retrieveService IRetrieveService
	store           *global.StoreSnapshot
	orderKeywords   []string
}

func NewIntentService(store *global.StoreSnapshot, retrieveService IRetrieveService) *intentService {
	// 初始化订单关键词列表, 统一小写后匹配
	keywords := make([]string, 0, len(global.Config.Ai.OrderKeywords))
	for _, kw := range global.Config.Ai.OrderKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}

	return &intentService{
		retrieveService: retrieveService,
		store:           store,
		orderKeywords:   keywords,
	}
}

// Detect 按固定优先级级联判定意图:
// FAQ精确命中 > 商品名/关键词命中 > 订单关键词 > 注文番号形态 > 闲聊
// 任何一步出现异常都降级为闲聊, 不向上抛
func (s *intentService) Detect(query string) (intent enum.Intent) {
	intent = enum.IntentGeneralChat

	defer func() {
		if p := recover(); p != nil {
			global.Log.Errorf("意图识别异常, 降级为闲聊: %v", p)
			intent = enum.IntentGeneralChat
		}
	}()

	if strings.TrimSpace(query) == "" {
		return
	}

	// 1. FAQ精确匹配
	if _, ok := s.store.FaqAnswer(query); ok {
		return enum.IntentFaq
	}

	// 2. 商品名或关键词命中
	if s.retrieveService.MatchProduct(query) {
		return enum.IntentProductInfo
	}

	// 3. 订单领域关键词
	queryLower := strings.ToLower(query)
	if utils.ContainsAny(queryLower, s.orderKeywords) {
		return enum.IntentOrderStatus
	}

	// 4. 消息中出现注文番号形态
	if orderIdLabeledRe.MatchString(query) || orderIdBareRe.MatchString(query) {
		return enum.IntentOrderStatus
	}

	// 5. 以上都不是, 交给闲聊
	return enum.IntentGeneralChat
}
