package enum

import "strings"

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

type Msg string

const (
	DefaultSuccessMsg Msg = `ok`
	DefaultFailMsg    Msg = `错误`
)

type ResCode int8

const (
	SuccessCode ResCode = 0
	ErrorCode   ResCode = 1
)

// Intent 表示一条用户消息被判定的意图, 决定后续由哪个处理器应答
type Intent string

const (
	IntentFaq         Intent = "faq"
	IntentProductInfo Intent = "product_info"
	IntentOrderStatus Intent = "order_status"
	IntentGeneralChat Intent = "general_chat"
)

// OrderStatus 订单状态的规范值, 统一用英文存储, 展示时再转为日文
// (原始数据源里状态值与面向用户的语言混用, 这里收敛为单一规范)
type OrderStatus string

const (
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusUnknown    OrderStatus = "unknown"
)

// ParseOrderStatus 把数据源里的状态值归一为规范值
// 兼容旧数据源里直接写日文状态的情况
func ParseOrderStatus(s string) OrderStatus {
	switch strings.TrimSpace(s) {
	case string(OrderStatusShipped), "発送済み":
		return OrderStatusShipped
	case string(OrderStatusProcessing), "処理中":
		return OrderStatusProcessing
	case string(OrderStatusDelivered), "配達完了":
		return OrderStatusDelivered
	}
	return OrderStatusUnknown
}

// Label 返回面向用户(日语)的状态文案, 仅在展示边界调用
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusShipped:
		return "発送済み"
	case OrderStatusProcessing:
		return "処理中"
	case OrderStatusDelivered:
		return "配達完了"
	default:
		return "不明"
	}
}

type LlmSize string

const (
	ModelSmall  LlmSize = "small"
	ModelMedium LlmSize = "medium"
	ModelLarge  LlmSize = "large"
)

type SystemPrompt string

const (
	// 普通闲聊: 面向日本商城的客服助手
	SystemPromptDefault SystemPrompt = `あなたはECショップのフレンドリーなAIカスタマーサポートです。お客様の質問に日本語で簡潔に答えてください。余計な思考過程や説明は含めないでください。`

	// RAG: 回答必须只依据提供的「関連情報」
	SystemPromptRAG SystemPrompt = `以下の「関連情報」だけを基にして、顧客の質問に答えてください。情報は箇条書きではなく、自然な会話になるように要約・編集してください。関連情報から分からない場合は「関連情報からは分かりません」と正直に答えてください。あなたはフレンドリーな店員です。回答に「関連情報」という言葉を出さないでください。`

	// 订单查询: 模型可调用 get_order_info 工具; 没有注文番号时向用户询问
	SystemPromptOrder SystemPrompt = `あなたはECショップのカスタマーサポートです。お客様が注文状況を知りたい場合は、メッセージから注文番号を抽出し、get_order_info ツールで注文情報を取得してください。注文番号が見つからない場合はツールを呼ばず、注文番号（例: ORD123, XYZ789）を教えていただくよう丁寧にお願いしてください。ツールの結果を受け取ったら、その内容を自然な日本語でお客様に伝えてください。`
)

// ReplyMsg 面向用户的固定回复文案, 各处理器的兜底话术互不相同,
// 以便从回复就能区分"没有命中"与"命中但生成失败"
type ReplyMsg string

const (
	// RAG: 没有检索到任何相关商品(未调用LLM)
	ReplyMsgNoProductContext ReplyMsg = `申し訳ありません、関連する商品情報が見つかりませんでした。もう少し具体的に質問していただけますか？`
	// RAG: 检索到了上下文但生成失败
	ReplyMsgRagFailed ReplyMsg = `関連情報はありましたが、AI応答の生成中にエラーが発生しました。しばらくしてからもう一度お試しください。`
	// 订单查询流程中任一环节失败
	ReplyMsgOrderFailed ReplyMsg = `申し訳ありません、ご注文状況の確認中にエラーが発生しました。しばらくしてからもう一度お試しください。`
	// 闲聊生成失败(作为error文案返回给前端)
	ReplyMsgGeneralFailed ReplyMsg = `AI応答の生成中に内部エラーが発生しました。`
	// 响应被安全策略拦截或内容为空
	ReplyMsgBlocked ReplyMsg = `（AI応答がブロックされたか、内容がありませんでした）`
	// 响应结构不在已知形态之内
	ReplyMsgUnexpected ReplyMsg = `（予期しないAI応答形式）`
	// 调度器兜底(理论上不可达, 出现即为逻辑BUG)
	ReplyMsgInternalError ReplyMsg = `すみません、うまく応答できませんでした。`
)
