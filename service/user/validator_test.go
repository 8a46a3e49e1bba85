package user

import (
	"strings"
	"testing"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/common"
)

func TestValidatorChatRequest(t *testing.T) {
	v := &Validator{}

	if err := v.ValidatorChatRequest(&common.ChatRequest{Query: "こんにちは"}); err != nil {
		t.Errorf("正常消息不应报错: %v", err)
	}
	if err := v.ValidatorChatRequest(&common.ChatRequest{Query: ""}); err == nil {
		t.Error("空query应报错")
	}
	if err := v.ValidatorChatRequest(&common.ChatRequest{Query: "   "}); err == nil {
		t.Error("纯空白query应报错")
	}

	// 长度按字符数而不是字节数计
	old := global.Config.Ai.MaxPromptLength
	defer func() { global.Config.Ai.MaxPromptLength = old }()
	global.Config.Ai.MaxPromptLength = 5

	if err := v.ValidatorChatRequest(&common.ChatRequest{Query: "あいうえお"}); err != nil {
		t.Errorf("5个字符不应超限: %v", err)
	}
	if err := v.ValidatorChatRequest(&common.ChatRequest{Query: strings.Repeat("あ", 6)}); err == nil {
		t.Error("6个字符应超限")
	}
}
