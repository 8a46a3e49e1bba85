package dao

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gitee.com/taoJie_1/support-agent/model/db"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/jmoiron/sqlx"
)

var (
	DB  *sqlx.DB
	App = new(group)

	utils = new(dbUtils)
)

type group struct {
	FaqDb     FaqDb
	ProductDb ProductDb
	OrderDb   OrderDb
}

// Tx 在一个事务中执行fn, fn返回错误则回滚
func Tx(fn func(tx *sqlx.Tx) error) error {
	if DB == nil {
		return errors.New("数据库未初始化[fdsjk2]")
	}

	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("事务回滚失败: %v (原错误: %w)", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

type dbUtils struct{}

func (u *dbUtils) getBatchInsertSql(d db.Dbfunc, data []map[string]interface{}) (string, []interface{}, error) {
	if len(data) == 0 {
		return "", nil, nil
	}

	// 顺序
	keys := make([]string, 0, len(data[0]))
	for k := range data[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// 构建字段
	var fields strings.Builder
	fields.WriteByte('(')
	for i, k := range keys {
		if i > 0 {
			fields.WriteString(", ")
		}
		fields.WriteByte('`')
		fields.WriteString(k)
		fields.WriteByte('`')
	}
	fields.WriteByte(')')

	valueStrings := make([]string, 0, len(data))
	valueArgs := make([]interface{}, 0, len(data)*len(keys))
	tags := db.GetBaseFieldDbTags()
	now := time.Now().Unix()

	for _, row := range data {
		if len(row) != len(keys) {
			return "", nil, fmt.Errorf("批量插入失败：数据行的字段数量不一致")
		}

		if tags.CreatedAtDbTag != "" {
			if _, exists := row[tags.CreatedAtDbTag]; !exists {
				row[tags.CreatedAtDbTag] = now
			}
		}
		if tags.UpdatedAtDbTag != "" {
			if _, exists := row[tags.UpdatedAtDbTag]; !exists {
				row[tags.UpdatedAtDbTag] = now
			}
		}

		// 构建 VALUES 子句中的单行占位符, e.g., "(?, ?, ?)"
		valueStrings = append(valueStrings, "(?"+strings.Repeat(", ?", len(keys)-1)+")")

		// 按照排序后的字段顺序，添加参数到 valueArgs
		for _, k := range keys {
			val, ok := row[k]
			if !ok {
				return "", nil, fmt.Errorf("批量插入失败：数据行缺少字段 '%s'", k)
			}
			valueArgs = append(valueArgs, val)
		}
	}

	var sql strings.Builder
	sql.WriteString("INSERT INTO `")
	sql.WriteString(d.TableName())
	sql.WriteString("` ")
	sql.WriteString(fields.String())
	sql.WriteString(" VALUES ")
	sql.WriteString(strings.Join(valueStrings, ", "))

	return sql.String(), valueArgs, nil
}

// cleanTable 清空表并重置自增ID, 仅允许在事务中调用
func (u *dbUtils) cleanTable(d db.Dbfunc, dbType string, tx *sqlx.Tx) error {
	if tx == nil {
		return errors.New("请使用事务[ioddfsaa]")
	}

	switch dbType {
	case string(enum.SQLITE):
		sql := fmt.Sprintf("DELETE FROM `%s`", d.TableName())
		if _, err := tx.Exec(sql); err != nil {
			return err
		}
		// 重置自增ID
		sql = fmt.Sprintf("DELETE FROM sqlite_sequence WHERE name='%s'", d.TableName())
		_, err := tx.Exec(sql)
		return err
	case string(enum.MYSQL):
		sql := fmt.Sprintf("TRUNCATE TABLE `%s`", d.TableName())
		_, err := tx.Exec(sql)
		return err
	}

	return errors.New("数据库类型错误[rjfsos]")
}
