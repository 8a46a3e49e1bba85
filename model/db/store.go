package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gitee.com/taoJie_1/support-agent/model/enum"
)

type Faq struct {
	BaseField
	Question string `db:"question" json:"question" info:"问题原文"`
	Answer   string `db:"answer" json:"answer" info:"答案"`
}

func (Faq) TableName() string {
	return `faqs`
}

// KeywordList 以JSON文本形式落库的关键词列表
type KeywordList []string

func (k KeywordList) Value() (driver.Value, error) {
	if k == nil {
		return `[]`, nil
	}
	b, err := json.Marshal(k)
	if err != nil {
		return nil, fmt.Errorf("关键词序列化失败: %w", err)
	}
	return string(b), nil
}

func (k *KeywordList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*k = nil
		return nil
	case []byte:
		return json.Unmarshal(v, k)
	case string:
		return json.Unmarshal([]byte(v), k)
	default:
		return fmt.Errorf("关键词字段类型异常: %T", src)
	}
}

type Product struct {
	BaseField
	ProductId   string      `db:"product_id" json:"id" info:"商品编号"`
	Name        string      `db:"name" json:"name" info:"商品名"`
	Keywords    KeywordList `db:"keywords" json:"keywords" info:"检索关键词"`
	Price       int64       `db:"price" json:"price" info:"价格(日元)"`
	Description string      `db:"description" json:"description" info:"描述"`
}

func (Product) TableName() string {
	return `products`
}

type Order struct {
	BaseField
	OrderId           string           `db:"order_id" json:"order_id" info:"注文番号"`
	CustomerName      string           `db:"customer_name" json:"customer_name" info:"客户名"`
	Status            enum.OrderStatus `db:"status" json:"status" info:"订单状态"`
	ShippedDate       string           `db:"shipped_date" json:"shipped_date" info:"发货日期"`
	EstimatedDelivery string           `db:"estimated_delivery" json:"estimated_delivery" info:"预计送达"`
	DeliveredDate     string           `db:"delivered_date" json:"delivered_date" info:"送达日期"`
}

func (Order) TableName() string {
	return `orders`
}
