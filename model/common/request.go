package common

// ChatRequest 前端/客服入口发来的消息体
type ChatRequest struct {
	Query string `json:"query"`
}
