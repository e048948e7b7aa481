package config

type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

type Driver string

const (
	DriverMysql  Driver = "mysql"
	DriverSqlite Driver = "sqlite"
)

// Config 环境变量名由字段路径推导，例如 Database.Mysql.DBName -> CAMP_DATABASE_MYSQL_DB_NAME
type Config struct {
	Host     string
	Port     string
	Prefix   string
	Mode     Mode
	Database Database `mapstructure:"database"`
	Log      Log      `mapstructure:"log"`
	Sentry   Sentry   `mapstructure:"sentry"`

	// AllowOrigins 跨域白名单，为空时允许任意来源
	AllowOrigins []string `mapstructure:"allow_origins" split_words:"true"`
	// ExposeErrorOrigin 错误响应附带 origin（原始错误和堆栈），只在本地调试时打开
	ExposeErrorOrigin bool `mapstructure:"expose_error_origin" split_words:"true"`
}

type Database struct {
	Driver Driver `mapstructure:"driver"`
	Mysql  Mysql  `mapstructure:"mysql"`
	Sqlite Sqlite `mapstructure:"sqlite"`
}

type Mysql struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string `mapstructure:"db_name" split_words:"true"`
}

type Sqlite struct {
	// Path 数据库文件路径，也可以是以 file: 开头的完整 DSN
	Path string
}

type Log struct {
	FilePath   string `mapstructure:"file_path" split_words:"true"`   // 日志文件路径
	Level      string `mapstructure:"level"`                          // 日志级别：debug, info, warn, error
	MaxSize    int    `mapstructure:"max_size" split_words:"true"`    // 日志文件最大大小（MB）
	MaxBackups int    `mapstructure:"max_backups" split_words:"true"` // 保留的旧日志文件数
	MaxAge     int    `mapstructure:"max_age" split_words:"true"`     // 日志文件保留天数
	Compress   bool   `mapstructure:"compress"`                       // 是否压缩旧日志文件
}

type Sentry struct {
	Dsn         string
	Environment string
	SampleRate  float64 `mapstructure:"sample_rate" split_words:"true"`
	Tracing     Tracing
}

type Tracing struct {
	DBSlowThresholdMs int `mapstructure:"db_slow_threshold_ms" split_words:"true"`
}
