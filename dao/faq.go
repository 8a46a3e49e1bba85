package dao

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/db"
	"github.com/jmoiron/sqlx"
)

type FaqDb struct{}

// 获取所有数据
func (d *FaqDb) GetFaqAllList(list *[]db.Faq, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT `question`, `answer` FROM `%s` ORDER BY id ASC;", db.Faq{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

// 清空表
func (d *FaqDb) CleanTable(tx *sqlx.Tx) error {
	return utils.cleanTable(db.Faq{}, global.Config.Database.Type, tx)
}

// 插入数据
func (d *FaqDb) BatchInsert(data []db.Faq, tx *sqlx.Tx) (int64, error) {
	if tx == nil {
		return 0, errors.New("请使用事务[ioddfsaa]")
	}

	if len(data) == 0 {
		return 0, nil
	}

	var sqlData []map[string]interface{}
	for _, faq := range data {
		faq.Question = strings.TrimSpace(faq.Question)
		if faq.Question == "" || faq.Answer == "" {
			continue // 跳过无效数据
		}
		if utf8.RuneCountInString(faq.Question) > int(global.Config.Ai.MaxPromptLength) {
			global.Log.Warnf("question 超出长度限制，已跳过: %s", faq.Question)
			continue
		}

		sqlData = append(sqlData, map[string]interface{}{
			"question": faq.Question,
			"answer":   faq.Answer,
		})
	}

	sql, args, err := utils.getBatchInsertSql(db.Faq{}, sqlData)
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
