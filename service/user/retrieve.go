package user

import (
	"fmt"
	"sort"
	"strings"

	"gitee.com/taoJie_1/support-agent/global"
)

type IRetrieveService interface {
	// 商品名或任一关键词是否命中用户消息
	MatchProduct(query string) bool
	// 构建RAG上下文, 没有任何商品命中时ok为false
	BuildContext(query string) (context string, ok bool)
}

type retrieveService struct {
	store *global.StoreSnapshot
	topK  int
}

func NewRetrieveService(store *global.StoreSnapshot) *retrieveService {
	topK := global.Config.Ai.RetrieveTopK
	if topK <= 0 {
		topK = 2
	}
	return &retrieveService{
		store: store,
		topK:  topK,
	}
}

func (s *retrieveService) MatchProduct(query string) bool {
	queryLower := strings.ToLower(query)

	for _, product := range s.store.ProductList() {
		if strings.Contains(queryLower, strings.ToLower(product.Name)) {
			return true
		}
		for _, keyword := range product.Keywords {
			if strings.Contains(queryLower, keyword) {
				return true
			}
		}
	}
	return false
}

type scoredProduct struct {
	score int
	info  string
}

// BuildContext 给每个商品打分并取前topK条拼成上下文
// 评分规则: 商品名出现在消息中+2; 任一关键词命中+1(每个商品只计一次)
func (s *retrieveService) BuildContext(query string) (string, bool) {
	queryLower := strings.ToLower(query)

	var relevant []scoredProduct
	for _, product := range s.store.ProductList() {
		score := 0

		if strings.Contains(queryLower, strings.ToLower(product.Name)) {
			score += 2
		}

		for _, keyword := range product.Keywords {
			if strings.Contains(queryLower, keyword) {
				score++
				break // 1商品计1次关键词命中即可
			}
		}

		if score > 0 {
			relevant = append(relevant, scoredProduct{
				score: score,
				info:  fmt.Sprintf("商品名: %s\n価格: %d円\n説明: %s", product.Name, product.Price, product.Description),
			})
		}
	}

	if len(relevant) == 0 {
		return "", false
	}

	// 按分数降序, 同分保持数据源顺序
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].score > relevant[j].score
	})

	if len(relevant) > s.topK {
		relevant = relevant[:s.topK]
	}

	infos := make([]string, 0, len(relevant))
	for _, item := range relevant {
		infos = append(infos, item.info)
	}

	return "関連する可能性のある商品情報:\n\n" + strings.Join(infos, "\n\n---\n\n"), true
}
