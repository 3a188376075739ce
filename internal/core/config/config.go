package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string // local / development / production
	HTTP HTTP
}

// LogRotate 日志文件切割（lumberjack）；Enable=false 时只写 stdout
type LogRotate struct {
	Enable     bool   `mapstructure:"enable"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type Log struct {
	Level  string
	JSON   bool
	Rotate LogRotate `mapstructure:"rotate"`
}

type JWT struct {
	Secret             string
	Issuer             string
	AccessTokenTTLDays int
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DB struct {
	Driver             string // mysql / postgres / sqlite
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Weather 第三方天气服务（weatherapi.com）
type Weather struct {
	BaseURL     string `mapstructure:"base_url"`
	APIKey      string `mapstructure:"api_key"`
	CacheTTLMin int    `mapstructure:"cache_ttl_min"`
	TimeoutSec  int    `mapstructure:"timeout_sec"`
}

// Inference 外部推理服务（聊天机器人转发目标，留空则走本地关键词规则）
type Inference struct {
	BaseURL    string `mapstructure:"base_url"`
	TimeoutSec int    `mapstructure:"timeout_sec"`
}

type Upload struct {
	Dir string `mapstructure:"dir"`
}

// Predict 预测因子表外置配置（留空用内置默认表）
type Predict struct {
	TablesPath string `mapstructure:"tables_path"`
}

type Config struct {
	App       App
	Log       Log
	JWT       JWT
	DB        DB
	Redis     Redis     `mapstructure:"redis"`
	Weather   Weather   `mapstructure:"weather"`
	Inference Inference `mapstructure:"inference"`
	Upload    Upload    `mapstructure:"upload"`
	Predict   Predict   `mapstructure:"predict"`
}

func (c *Config) Production() bool { return c.App.Env == "production" }

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	if c.JWT.AccessTokenTTLDays <= 0 {
		c.JWT.AccessTokenTTLDays = 30
	}
	if c.Upload.Dir == "" {
		c.Upload.Dir = "./uploads"
	}
	return &c
}
