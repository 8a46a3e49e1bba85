package initialize

import (
	"flag"
	"fmt"

	"gitee.com/taoJie_1/support-agent/global"
	"gitee.com/taoJie_1/support-agent/model/config"
	"gitee.com/taoJie_1/support-agent/model/enum"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "catalog": 强制同步客服数据;`)
}

// New 创建一个新的初始化器，并加载配置文件
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	if configPath == "" {
		configPath = `config.yaml`
	}

	initializer := &Initializer{}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		panic("读取配置失败[u9ij]: " + configPath + err.Error())
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("配置文件变化[djiads]: ", e.Name)
		oldConfig := global.Config.DeepCopy()
		if err := v.Unmarshal(global.Config); err != nil {
			fmt.Println(err)
			return
		}
		handleConfig(global.Config)
		initializer.HandleConfigChange(oldConfig, global.Config)
	})

	if err := v.Unmarshal(global.Config); err != nil {
		panic("出错[dhfal]: " + err.Error())
	}

	handleConfig(global.Config)

	return initializer
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	if c.ProjectName == "" {
		c.ProjectName = "AI客服系统"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":80"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.Tz == "" {
		c.Tz = "Asia/Tokyo"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"*"}
	}
	if c.Database.Type == "" {
		c.Database.Type = string(enum.SQLITE)
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data.db"
	}
	for i := range c.Llm {
		if c.Llm[i].Timeout == 0 {
			c.Llm[i].Timeout = 30
		}
	}
	if c.Ai.MaxPromptLength == 0 {
		c.Ai.MaxPromptLength = 1000
	}
	if len(c.Ai.OrderKeywords) == 0 {
		c.Ai.OrderKeywords = []string{
			"注文", "オーダー", "発送", "配送", "届かない", "いつ届きますか",
			"order", "shipment", "delivery", "track",
		}
	}
	if c.Ai.RetrieveTopK == 0 {
		c.Ai.RetrieveTopK = 2
	}
}
