package enum

import (
	"strings"
	"testing"
)

// TestOrderPromptConsistency 单元测试，用于确保订单查询的系统提示词中
// 引用的工具名称与示例注文番号和代码中的定义保持严格一致。
// 这可以防止因改名而忘记更新提示词导致的潜在BUG。
func TestOrderPromptConsistency(t *testing.T) {
	prompt := string(SystemPromptOrder)

	if !strings.Contains(prompt, "get_order_info") {
		t.Error("SystemPromptOrder应包含工具名称: get_order_info")
	}

	// 提示词中的示例注文番号必须能被本地数据命中, 否则示例会误导模型
	for _, example := range []string{"ORD123", "XYZ789"} {
		if !strings.Contains(prompt, example) {
			t.Errorf("SystemPromptOrder应包含示例注文番号: %s", example)
		}
	}
}

// TestParseOrderStatus 状态归一: 兼容英文规范值和旧数据源的日文值
func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want OrderStatus
	}{
		{"shipped", OrderStatusShipped},
		{"発送済み", OrderStatusShipped},
		{"processing", OrderStatusProcessing},
		{"処理中", OrderStatusProcessing},
		{"delivered", OrderStatusDelivered},
		{"配達完了", OrderStatusDelivered},
		{" shipped ", OrderStatusShipped},
		{"cancelled", OrderStatusUnknown},
		{"", OrderStatusUnknown},
	}

	for _, tt := range tests {
		if got := ParseOrderStatus(tt.in); got != tt.want {
			t.Errorf("ParseOrderStatus(%q) = %s, 期望 %s", tt.in, got, tt.want)
		}
	}
}

// TestOrderStatusLabel 展示文案与规范值一一对应
func TestOrderStatusLabel(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   string
	}{
		{OrderStatusShipped, "発送済み"},
		{OrderStatusProcessing, "処理中"},
		{OrderStatusDelivered, "配達完了"},
		{OrderStatusUnknown, "不明"},
		{OrderStatus("cancelled"), "不明"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("%s.Label() = %s, 期望 %s", tt.status, got, tt.want)
		}
	}
}
