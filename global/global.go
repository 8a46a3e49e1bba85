package global

import (
	"strings"
	"sync"
	"time"

	"gitee.com/taoJie_1/support-agent/internal/llm"
	"gitee.com/taoJie_1/support-agent/model/config"
	"gitee.com/taoJie_1/support-agent/model/db"
	"github.com/sirupsen/logrus"
)

// 全局变量
// 业务逻辑禁止修改
var (
	Config     *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log        *logrus.Logger
	Tz         *time.Location
	LlmService llm.Service
	Store      *StoreSnapshot = &StoreSnapshot{
		Faqs:   make(map[string]string),
		Orders: make(map[string]db.Order),
	}
)

// StoreSnapshot 客服知识数据的内存快照, 请求路径只读它, 不直接查库
// 由task.LoadStore整体重建, 写入时持有写锁
type StoreSnapshot struct {
	sync.RWMutex
	Faqs     map[string]string //key为完整问题原文
	Products []db.Product      //保持数据源顺序, 检索排序依赖它
	Orders   map[string]db.Order
}

// FaqAnswer 按问题原文精确匹配
func (s *StoreSnapshot) FaqAnswer(question string) (string, bool) {
	s.RLock()
	defer s.RUnlock()
	v, ok := s.Faqs[question]
	return v, ok
}

// FindOrder 订单号大小写不敏感
func (s *StoreSnapshot) FindOrder(orderId string) (db.Order, bool) {
	s.RLock()
	defer s.RUnlock()
	v, ok := s.Orders[strings.ToUpper(orderId)]
	return v, ok
}

// ProductList 返回当前快照的商品切片; 切片在重建前只读, 调用方不得修改
func (s *StoreSnapshot) ProductList() []db.Product {
	s.RLock()
	defer s.RUnlock()
	return s.Products
}

// Replace 原子替换整个快照内容
func (s *StoreSnapshot) Replace(faqs map[string]string, products []db.Product, orders map[string]db.Order) {
	s.Lock()
	defer s.Unlock()
	s.Faqs = faqs
	s.Products = products
	s.Orders = orders
}
