package dao

import (
	"errors"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/db"
	"github.com/jmoiron/sqlx"
)

type OrderDb struct{}

// 获取所有数据
func (d *OrderDb) GetOrderAllList(list *[]db.Order, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT `order_id`, `customer_name`, `status`, `shipped_date`, `estimated_delivery`, `delivered_date` FROM `%s` ORDER BY id ASC;", db.Order{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

// 清空表
func (d *OrderDb) CleanTable(tx *sqlx.Tx) error {
	return utils.cleanTable(db.Order{}, global.Config.Database.Type, tx)
}

// 插入数据
func (d *OrderDb) BatchInsert(data []db.Order, tx *sqlx.Tx) (int64, error) {
	if tx == nil {
		return 0, errors.New("请使用事务[ioddfsaa]")
	}

	if len(data) == 0 {
		return 0, nil
	}

	var sqlData []map[string]interface{}
	for _, o := range data {
		// 注文番号统一大写入库, 查询时同样大写比对
		o.OrderId = strings.ToUpper(strings.TrimSpace(o.OrderId))
		if o.OrderId == "" {
			continue // 跳过无效数据
		}

		sqlData = append(sqlData, map[string]interface{}{
			"order_id":           o.OrderId,
			"customer_name":      o.CustomerName,
			"status":             string(o.Status),
			"shipped_date":       o.ShippedDate,
			"estimated_delivery": o.EstimatedDelivery,
			"delivered_date":     o.DeliveredDate,
		})
	}

	sql, args, err := utils.getBatchInsertSql(db.Order{}, sqlData)
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
