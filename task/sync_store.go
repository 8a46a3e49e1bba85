package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/db"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"gitee.com/taoJie_1/support-agent/utils"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

// StoreReloader 全量同步客服数据: 数据源 -> 数据库 -> 内存快照
// 数据源优先取配置的外部JSON文件, 未配置或文件缺失时回退内置种子数据
func (m *Manager) StoreReloader() error {
	global.Log.Println("开始同步客服数据...")

	var (
		faqs     []db.Faq
		products []db.Product
		orders   []db.Order
	)

	var g errgroup.Group
	g.Go(func() (e error) {
		faqs, e = loadFaqs()
		return
	})
	g.Go(func() (e error) {
		products, e = loadProducts()
		return
	})
	g.Go(func() (e error) {
		orders, e = loadOrders()
		return
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("读取数据源失败: %w", err)
	}

	var faqCount, productCount, orderCount int64
	err := dao.Tx(func(tx *sqlx.Tx) (e error) {
		// 清空旧数据
		if e = dao.App.FaqDb.CleanTable(tx); e != nil {
			return
		}
		if e = dao.App.ProductDb.CleanTable(tx); e != nil {
			return
		}
		if e = dao.App.OrderDb.CleanTable(tx); e != nil {
			return
		}

		// 插入新数据
		if faqCount, e = dao.App.FaqDb.BatchInsert(faqs, tx); e != nil {
			return
		}
		if productCount, e = dao.App.ProductDb.BatchInsert(products, tx); e != nil {
			return
		}
		orderCount, e = dao.App.OrderDb.BatchInsert(orders, tx)
		return
	})
	if err != nil {
		global.Log.Errorln("[isfsifi]同步客服数据到数据库失败:", err)
		return fmt.Errorf("同步客服数据到数据库失败: %w", err)
	}

	global.Log.Printf("成功落库: FAQ %d 条, 商品 %d 条, 订单 %d 条", faqCount, productCount, orderCount)

	return m.LoadStore()
}

// LoadStore 从数据库加载数据到内存快照
func (m *Manager) LoadStore() error {
	var (
		faqList     = make([]db.Faq, 0)
		productList = make([]db.Product, 0)
		orderList   = make([]db.Order, 0)
	)

	if err := dao.App.FaqDb.GetFaqAllList(&faqList); err != nil {
		return fmt.Errorf("加载FAQ失败: %w", err)
	}
	if err := dao.App.ProductDb.GetProductAllList(&productList); err != nil {
		return fmt.Errorf("加载商品失败: %w", err)
	}
	if err := dao.App.OrderDb.GetOrderAllList(&orderList); err != nil {
		return fmt.Errorf("加载订单失败: %w", err)
	}

	faqMap := make(map[string]string, len(faqList))
	for _, v := range faqList {
		faqMap[v.Question] = v.Answer
	}

	orderMap := make(map[string]db.Order, len(orderList))
	for _, v := range orderList {
		orderMap[strings.ToUpper(v.OrderId)] = v
	}

	global.Store.Replace(faqMap, productList, orderMap)

	global.Log.Printf("成功加载到内存: FAQ %d 条, 商品 %d 条, 订单 %d 条", len(faqMap), len(productList), len(orderMap))
	return nil
}

func loadFaqs() ([]db.Faq, error) {
	path := global.Config.Data.FaqsPath
	if path == "" || !utils.FileExist(path) {
		return dao.SeedFaqs(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取FAQ数据文件 '%s' 失败: %w", path, err)
	}

	// 文件形态: {"質問": "回答", ...}
	var data map[string]string
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("FAQ数据文件 '%s' 格式错误: %w", path, err)
	}

	faqs := make([]db.Faq, 0, len(data))
	for q, a := range data {
		faqs = append(faqs, db.Faq{Question: q, Answer: a})
	}
	return faqs, nil
}

func loadProducts() ([]db.Product, error) {
	path := global.Config.Data.ProductsPath
	if path == "" || !utils.FileExist(path) {
		return dao.SeedProducts(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取商品数据文件 '%s' 失败: %w", path, err)
	}

	var products []db.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("商品数据文件 '%s' 格式错误: %w", path, err)
	}
	return products, nil
}

func loadOrders() ([]db.Order, error) {
	path := global.Config.Data.OrdersPath
	if path == "" || !utils.FileExist(path) {
		return dao.SeedOrders(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取订单数据文件 '%s' 失败: %w", path, err)
	}

	var orders []db.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("订单数据文件 '%s' 格式错误: %w", path, err)
	}

	// 状态值归一, 兼容日文状态的旧文件
	for i := range orders {
		orders[i].Status = enum.ParseOrderStatus(string(orders[i].Status))
	}
	return orders, nil
}
