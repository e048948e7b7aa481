package config

import (
	"errors"
	"sync"

	"github.com/kelseyhightower/envconfig"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 CAMP_PORT、CAMP_DATABASE_DRIVER
const EnvPrefix = "CAMP"

var (
	cfg *Config
	mu  sync.RWMutex
)

// Init 读取 config.yaml（可选），再用环境变量覆盖，失败时 panic
func Init() {
	c, err := Load(".", "./config")
	if err != nil {
		panic(err)
	}
	Set(c)
}

// Load 按 默认值 -> 配置文件 -> 环境变量 的顺序构造配置
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, pkgerrors.Wrap(err, "read config file")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, pkgerrors.Wrap(err, "decode config")
	}
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return nil, pkgerrors.Wrap(err, "process env config")
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "5555")
	v.SetDefault("mode", string(ModeDebug))
	v.SetDefault("database.driver", string(DriverSqlite))
	v.SetDefault("database.sqlite.path", "app.db")
	v.SetDefault("database.mysql.host", "127.0.0.1")
	v.SetDefault("database.mysql.port", "3306")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
}

// Get 返回当前配置；未初始化时返回 debug 模式的默认配置
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = &Config{
			Host: "0.0.0.0",
			Port: "5555",
			Mode: ModeDebug,
			Database: Database{
				Driver: DriverSqlite,
				Sqlite: Sqlite{Path: "app.db"},
			},
			Log: Log{Level: "info"},
		}
	}
	return cfg
}

// Set 替换全局配置，测试中也用它注入配置
func Set(c *Config) {
	mu.Lock()
	cfg = c
	mu.Unlock()
}
