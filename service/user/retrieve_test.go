package user

import (
	"strings"
	"testing"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/db"
)

func TestBuildContextScoring(t *testing.T) {
	store := newTestStore()
	svc := NewRetrieveService(store)

	// 商品名命中得2分, 应排在仅关键词命中(1分)的商品前面
	context, ok := svc.BuildContext("すごいtシャツとペンについて")
	if !ok {
		t.Fatal("应检索到商品上下文")
	}

	tIdx := strings.Index(context, "すごいTシャツ")
	penIdx := strings.Index(context, "多機能ボールペン")
	if tIdx == -1 || penIdx == -1 {
		t.Fatalf("上下文缺少命中的商品: %s", context)
	}
	if tIdx > penIdx {
		t.Error("商品名命中(2分)应排在关键词命中(1分)之前")
	}

	if !strings.HasPrefix(context, "関連する可能性のある商品情報:") {
		t.Errorf("上下文应以固定标题开头: %s", context)
	}
	if !strings.Contains(context, "\n\n---\n\n") {
		t.Error("多条商品信息应以 --- 分隔")
	}
	if !strings.Contains(context, "商品名: すごいTシャツ\n価格: 3000円\n説明: ") {
		t.Errorf("商品信息格式不符: %s", context)
	}
}

func TestBuildContextTopK(t *testing.T) {
	store := newTestStore()
	svc := NewRetrieveService(store)

	// 三个商品都被关键词命中, 只保留前2条
	context, ok := svc.BuildContext("tシャツとマグカップとペンをください")
	if !ok {
		t.Fatal("应检索到商品上下文")
	}
	if got := strings.Count(context, "商品名: "); got != 2 {
		t.Errorf("上下文应只含前2条商品, 实际 %d 条: %s", got, context)
	}
	// 同为1分时保持数据源顺序
	if strings.Contains(context, "多機能ボールペン") {
		t.Error("第三个同分商品不应进入上下文")
	}
}

// 数据不变时两次检索结果完全一致
func TestBuildContextIdempotent(t *testing.T) {
	store := newTestStore()
	svc := NewRetrieveService(store)

	first, ok1 := svc.BuildContext("tシャツとペン")
	second, ok2 := svc.BuildContext("tシャツとペン")
	if !ok1 || !ok2 || first != second {
		t.Error("相同输入的两次检索应返回相同上下文")
	}
}

func TestBuildContextNoMatch(t *testing.T) {
	store := newTestStore()
	svc := NewRetrieveService(store)

	if _, ok := svc.BuildContext("今日の天気は？"); ok {
		t.Error("无命中时ok应为false")
	}
}

// 每个商品的关键词命中只计1次
func TestBuildContextKeywordCountsOnce(t *testing.T) {
	store := &global.StoreSnapshot{}
	store.Replace(nil, []db.Product{
		{Name: "商品A", Keywords: db.KeywordList{"ぺん", "筆記具"}, Price: 100, Description: "a"},
		{Name: "商品B", Keywords: db.KeywordList{"ノート"}, Price: 200, Description: "b"},
	}, nil)
	svc := NewRetrieveService(store)

	// 商品Aの2つのキーワードが両方命中しても1分のまま,
	// 同分の商品Bとはデータ順を維持する
	context, ok := svc.BuildContext("ぺんと筆記具とノート")
	if !ok {
		t.Fatal("应检索到商品上下文")
	}
	aIdx := strings.Index(context, "商品A")
	bIdx := strings.Index(context, "商品B")
	if aIdx == -1 || bIdx == -1 || aIdx > bIdx {
		t.Errorf("同分商品应保持数据源顺序: %s", context)
	}
}

func TestMatchProduct(t *testing.T) {
	store := newTestStore()
	svc := NewRetrieveService(store)

	if !svc.MatchProduct("T-Shirtはありますか") {
		t.Error("英文关键词应命中")
	}
	if svc.MatchProduct("こんにちは") {
		t.Error("无关消息不应命中")
	}
}
