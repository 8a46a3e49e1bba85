package user

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/common"
)

type IValidator interface {
	ValidatorChatRequest(data *common.ChatRequest) error
}

type Validator struct{}

func (v *Validator) ValidatorChatRequest(data *common.ChatRequest) error {
	if strings.TrimSpace(data.Query) == "" {
		return errors.New("リクエストボディに 'query' が含まれていません。")
	}
	if max := global.Config.Ai.MaxPromptLength; max > 0 && utf8.RuneCountInString(data.Query) > int(max) {
		return errors.New("質問が長すぎます。短くしてもう一度お試しください。")
	}
	return nil
}
