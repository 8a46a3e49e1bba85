package user

import (
	"testing"

	"gitee.com/taoJie_1/support-agent/model/enum"
)

// TestDetectIntentCascade 验证意图级联的判定结果与优先级
func TestDetectIntentCascade(t *testing.T) {
	store := newTestStore()
	svc := NewIntentService(store, NewRetrieveService(store))

	tests := []struct {
		name  string
		query string
		want  enum.Intent
	}{
		{"FAQ精确命中", "送料はいくらですか？", enum.IntentFaq},
		{"FAQ需要完整原文", "送料はいくら", enum.IntentGeneralChat},
		{"商品关键词命中", "Tシャツについて教えて", enum.IntentProductInfo},
		{"商品名命中", "便利なマグカップはありますか", enum.IntentProductInfo},
		{"订单关键词(日文)", "荷物が届かないのですが", enum.IntentOrderStatus},
		{"订单关键词(英文)", "Where is my order?", enum.IntentOrderStatus},
		{"带标签的注文番号", "注文番号: ORD123", enum.IntentOrderStatus},
		{"裸注文番号", "ORD123の件です", enum.IntentOrderStatus},
		{"裸长数字", "12345はどうなりましたか", enum.IntentOrderStatus},
		{"普通闲聊", "今日の天気はどうですか？", enum.IntentGeneralChat},
		{"空消息", "", enum.IntentGeneralChat},
		{"短数字不当作注文番号", "1234", enum.IntentGeneralChat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Detect(tt.query); got != tt.want {
				t.Errorf("Detect(%q) = %s, 期望 %s", tt.query, got, tt.want)
			}
		})
	}
}

// TestDetectIntentPrecedence 同时满足多个条件时, 前面的规则优先
func TestDetectIntentPrecedence(t *testing.T) {
	store := newTestStore()
	svc := NewIntentService(store, NewRetrieveService(store))

	// 既含商品关键词又含订单关键词, 商品优先
	if got := svc.Detect("注文したTシャツについて"); got != enum.IntentProductInfo {
		t.Errorf("商品与订单同时命中时应判为product_info, 实际: %s", got)
	}

	// FAQ原文同时含订单关键词, FAQ优先
	store.Replace(
		map[string]string{"注文のキャンセルはできますか？": "発送前であれば可能です。"},
		nil, nil,
	)
	if got := svc.Detect("注文のキャンセルはできますか？"); got != enum.IntentFaq {
		t.Errorf("FAQ与订单同时命中时应判为faq, 实际: %s", got)
	}
}

// TestOrderIdPatterns 注文番号正则的边界情况
func TestOrderIdPatterns(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"注文番号: ORD123", true},
		{"注文 ORD-99", true},
		{"オーダー: XYZ789", true},
		{"order no: AB-123", true},
		{"ID: A1B2C3", true},
		{"ORD123", true},
		{"XYZ789", true},
		{"12345", true},
		{"1234", false},
		{"こんにちは", false},
	}

	for _, tt := range tests {
		got := orderIdLabeledRe.MatchString(tt.query) || orderIdBareRe.MatchString(tt.query)
		if got != tt.want {
			t.Errorf("注文番号判定(%q) = %v, 期望 %v", tt.query, got, tt.want)
		}
	}
}
