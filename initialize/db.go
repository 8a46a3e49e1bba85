package initialize

import (
	"fmt"
	"time"

	"gitee.com/taoJie_1/support-agent/dao"
	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/enum"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type mysql struct{}
type sqlite struct{}

// dbStart 根据配置初始化数据库连接
func (i *Initializer) dbStart() error {
	var dbRes interface {
		connect() error
		ensureSchema() error
		version() string
	}

	switch global.Config.Database.Type {
	case string(enum.MYSQL):
		dbRes = &mysql{}
	case string(enum.SQLITE):
		dbRes = &sqlite{}
	default:
		dbRes = &sqlite{}
	}

	if err := dbRes.connect(); err != nil {
		return err
	}
	return dbRes.ensureSchema()
}

// dbClose 关闭数据库连接
func (i *Initializer) dbClose() error {
	if dao.DB != nil {
		return dao.DB.Close()
	}
	return nil
}

func (s *sqlite) connect() error {
	var err error

	if dao.DB, err = sqlx.Open(string(enum.SQLITE), global.Config.Database.SqlitePath); err != nil {
		return fmt.Errorf("数据库连接失败: %w", err)
	}
	if err = dao.DB.Ping(); err != nil {
		return fmt.Errorf("数据库连接失败: %w", err)
	}

	dao.DB.SetMaxOpenConns(16)
	dao.DB.SetMaxIdleConns(8)
	dao.DB.SetConnMaxLifetime(time.Minute * 5)

	if _, err = dao.DB.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return fmt.Errorf("数据库设置失败: %w", err)
	}
	if _, err = dao.DB.Exec("PRAGMA busy_timeout = 10000;"); err != nil {
		return fmt.Errorf("数据库设置失败: %w", err)
	}
	if _, err = dao.DB.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		return fmt.Errorf("数据库设置失败: %w", err)
	}

	global.Log.Infof("%s版本: %s; 地址: %s", global.Config.Database.Type, s.version(), global.Config.Database.SqlitePath)
	return nil
}

func (s *sqlite) ensureSchema() error {
	schemas := []string{
		"CREATE TABLE IF NOT EXISTS `faqs` (" +
			"`id` INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"`question` TEXT NOT NULL DEFAULT '', " +
			"`answer` TEXT NOT NULL DEFAULT '', " +
			"`created_at` INTEGER NOT NULL DEFAULT 0, " +
			"`updated_at` INTEGER NOT NULL DEFAULT 0)",
		"CREATE TABLE IF NOT EXISTS `products` (" +
			"`id` INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"`product_id` TEXT NOT NULL DEFAULT '', " +
			"`name` TEXT NOT NULL DEFAULT '', " +
			"`keywords` TEXT NOT NULL DEFAULT '[]', " +
			"`price` INTEGER NOT NULL DEFAULT 0, " +
			"`description` TEXT NOT NULL DEFAULT '', " +
			"`created_at` INTEGER NOT NULL DEFAULT 0, " +
			"`updated_at` INTEGER NOT NULL DEFAULT 0)",
		"CREATE TABLE IF NOT EXISTS `orders` (" +
			"`id` INTEGER PRIMARY KEY AUTOINCREMENT, " +
			"`order_id` TEXT NOT NULL DEFAULT '', " +
			"`customer_name` TEXT NOT NULL DEFAULT '', " +
			"`status` TEXT NOT NULL DEFAULT '', " +
			"`shipped_date` TEXT NOT NULL DEFAULT '', " +
			"`estimated_delivery` TEXT NOT NULL DEFAULT '', " +
			"`delivered_date` TEXT NOT NULL DEFAULT '', " +
			"`created_at` INTEGER NOT NULL DEFAULT 0, " +
			"`updated_at` INTEGER NOT NULL DEFAULT 0)",
	}

	for _, schema := range schemas {
		if _, err := dao.DB.Exec(schema); err != nil {
			return fmt.Errorf("初始化表结构失败: %w", err)
		}
	}
	return nil
}

func (m *mysql) connect() error {
	var err error
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local", global.Config.Database.MysqlUsername, global.Config.Database.MysqlPassword, global.Config.Database.MysqlHost, global.Config.Database.MysqlPort, global.Config.Database.MysqlDbname)

	if dao.DB, err = sqlx.Connect(string(enum.MYSQL), dsn); err != nil {
		return fmt.Errorf("数据库连接失败[rwbhe3]: %s\n%w", dsn, err)
	}

	dao.DB.SetMaxOpenConns(16)
	dao.DB.SetMaxIdleConns(8)
	dao.DB.SetConnMaxLifetime(time.Minute * 5)

	if err = dao.DB.Ping(); err != nil {
		return fmt.Errorf("数据库连接失败: %s\n%w", dsn, err)
	}

	global.Log.Infof("%s版本: %s; 地址: @tcp(%s:%s)/%s", global.Config.Database.Type, m.version(), global.Config.Database.MysqlHost, global.Config.Database.MysqlPort, global.Config.Database.MysqlDbname)
	return nil
}

func (m *mysql) ensureSchema() error {
	schemas := []string{
		"CREATE TABLE IF NOT EXISTS `faqs` (" +
			"`id` INT UNSIGNED AUTO_INCREMENT PRIMARY KEY, " +
			"`question` VARCHAR(1024) NOT NULL DEFAULT '', " +
			"`answer` TEXT NOT NULL, " +
			"`created_at` BIGINT NOT NULL DEFAULT 0, " +
			"`updated_at` BIGINT NOT NULL DEFAULT 0) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
		"CREATE TABLE IF NOT EXISTS `products` (" +
			"`id` INT UNSIGNED AUTO_INCREMENT PRIMARY KEY, " +
			"`product_id` VARCHAR(64) NOT NULL DEFAULT '', " +
			"`name` VARCHAR(255) NOT NULL DEFAULT '', " +
			"`keywords` TEXT NOT NULL, " +
			"`price` BIGINT NOT NULL DEFAULT 0, " +
			"`description` TEXT NOT NULL, " +
			"`created_at` BIGINT NOT NULL DEFAULT 0, " +
			"`updated_at` BIGINT NOT NULL DEFAULT 0) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
		"CREATE TABLE IF NOT EXISTS `orders` (" +
			"`id` INT UNSIGNED AUTO_INCREMENT PRIMARY KEY, " +
			"`order_id` VARCHAR(64) NOT NULL DEFAULT '', " +
			"`customer_name` VARCHAR(255) NOT NULL DEFAULT '', " +
			"`status` VARCHAR(32) NOT NULL DEFAULT '', " +
			"`shipped_date` VARCHAR(32) NOT NULL DEFAULT '', " +
			"`estimated_delivery` VARCHAR(32) NOT NULL DEFAULT '', " +
			"`delivered_date` VARCHAR(32) NOT NULL DEFAULT '', " +
			"`created_at` BIGINT NOT NULL DEFAULT 0, " +
			"`updated_at` BIGINT NOT NULL DEFAULT 0) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	}

	for _, schema := range schemas {
		if _, err := dao.DB.Exec(schema); err != nil {
			return fmt.Errorf("初始化表结构失败: %w", err)
		}
	}
	return nil
}

func (*sqlite) version() (t string) {
	if err := dao.DB.Get(&t, `SELECT sqlite_version()`); err != nil {
		global.Log.Warnf("查询sqlite版本失败: %v", err)
	}
	return
}

func (*mysql) version() (t string) {
	if err := dao.DB.Get(&t, `SELECT version()`); err != nil {
		global.Log.Warnf("查询mysql版本失败: %v", err)
	}
	return
}
