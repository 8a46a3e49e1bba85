package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Llm struct {
	Url         string   `json:"url" mapstructure:"url" yaml:"url"`
	Model       string   `json:"model" mapstructure:"model" yaml:"model"`
	Auth        string   `json:"auth" mapstructure:"auth" yaml:"auth"`
	Size        string   `json:"size" mapstructure:"size" yaml:"size"`
	Timeout     int64    `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	Temperature *float32 `json:"temperature" mapstructure:"temperature" yaml:"temperature"`
}

type Ai struct {
	MaxPromptLength uint     `json:"max_prompt_length" mapstructure:"max_prompt_length" yaml:"max_prompt_length"`
	OrderKeywords   []string `json:"order_keywords" mapstructure:"order_keywords" yaml:"order_keywords"`
	RetrieveTopK    int      `json:"retrieve_top_k" mapstructure:"retrieve_top_k" yaml:"retrieve_top_k"`
}

// Data 外部数据文件路径, 留空则使用内置种子数据
type Data struct {
	FaqsPath     string `json:"faqs_path" mapstructure:"faqs_path" yaml:"faqs_path"`
	ProductsPath string `json:"products_path" mapstructure:"products_path" yaml:"products_path"`
	OrdersPath   string `json:"orders_path" mapstructure:"orders_path" yaml:"orders_path"`
}
