package dao

import (
	"errors"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/db"
	"github.com/jmoiron/sqlx"
)

type ProductDb struct{}

// 获取所有数据, 按插入顺序返回
func (d *ProductDb) GetProductAllList(list *[]db.Product, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT `product_id`, `name`, `keywords`, `price`, `description` FROM `%s` ORDER BY id ASC;", db.Product{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

// 清空表
func (d *ProductDb) CleanTable(tx *sqlx.Tx) error {
	return utils.cleanTable(db.Product{}, global.Config.Database.Type, tx)
}

// 插入数据
func (d *ProductDb) BatchInsert(data []db.Product, tx *sqlx.Tx) (int64, error) {
	if tx == nil {
		return 0, errors.New("请使用事务[ioddfsaa]")
	}

	if len(data) == 0 {
		return 0, nil
	}

	var sqlData []map[string]interface{}
	for _, p := range data {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			continue // 跳过无效数据
		}

		keywords, err := p.Keywords.Value()
		if err != nil {
			global.Log.Warnf("商品 %s 的关键词序列化失败，已跳过: %v", p.Name, err)
			continue
		}

		sqlData = append(sqlData, map[string]interface{}{
			"product_id":  p.ProductId,
			"name":        p.Name,
			"keywords":    keywords,
			"price":       p.Price,
			"description": p.Description,
		})
	}

	sql, args, err := utils.getBatchInsertSql(db.Product{}, sqlData)
	if err != nil {
		return 0, fmt.Errorf("构建批量插入SQL失败: %w", err)
	}
	if sql == "" {
		return 0, nil
	}

	sql = tx.Rebind(sql)
	result, err := tx.Exec(sql, args...)
	if err != nil {
		return 0, fmt.Errorf("批量插入数据失败: %w", err)
	}

	return result.RowsAffected()
}
