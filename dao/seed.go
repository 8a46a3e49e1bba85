package dao

import (
	"gitee.com/taoJie_1/support-agent/model/db"
	"gitee.com/taoJie_1/support-agent/model/enum"
)

// 内置种子数据
// 未配置外部数据文件时, 同步任务以这份数据落库
func SeedFaqs() []db.Faq {
	return []db.Faq{
		{Question: "送料はいくらですか？", Answer: "全国一律500円（税込）となっております。"},
		{Question: "営業時間は？", Answer: "当店の営業時間は、平日午前9時から午後6時までです。"},
		{Question: "支払い方法は何がありますか？", Answer: "クレジットカード、銀行振込、代金引換がご利用いただけます。"},
	}
}

func SeedProducts() []db.Product {
	return []db.Product{
		{
			ProductId:   "prod001",
			Name:        "すごいTシャツ",
			Keywords:    db.KeywordList{"tシャツ", "t-shirt", "すごいtシャツ"},
			Price:       3000,
			Description: "着心地抜群！最新技術で作られたすごいTシャツです。色は白と黒があります。",
		},
		{
			ProductId:   "prod002",
			Name:        "便利なマグカップ",
			Keywords:    db.KeywordList{"マグカップ", "カップ", "便利なマグカップ"},
			Price:       1500,
			Description: "取っ手が持ちやすく、たっぷり容量の便利なマグカップ。コーヒータイムに最適です。",
		},
		{
			ProductId:   "prod003",
			Name:        "多機能ボールペン",
			Keywords:    db.KeywordList{"ボールペン", "ペン", "多機能ボールペン", "多機能ペン"},
			Price:       800,
			Description: "黒・赤ボールペンとシャープペンシルが一本になった多機能ペン。ビジネスシーンで活躍します。",
		},
	}
}

func SeedOrders() []db.Order {
	return []db.Order{
		{
			OrderId:      "ORD123",
			CustomerName: "テストユーザーA",
			Status:       enum.OrderStatusShipped,
			ShippedDate:  "2025-04-10",
		},
		{
			OrderId:           "ORD456",
			CustomerName:      "テストユーザーB",
			Status:            enum.OrderStatusProcessing,
			EstimatedDelivery: "2025-04-16",
		},
		{
			OrderId:       "XYZ789",
			CustomerName:  "テストユーザーC",
			Status:        enum.OrderStatusDelivered,
			DeliveredDate: "2025-04-12",
		},
	}
}
