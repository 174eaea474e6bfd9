package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver          string `mapstructure:"DB_DRIVER"`
	Host            string `mapstructure:"DB_HOST"`
	Port            int    `mapstructure:"DB_PORT"`
	User            string `mapstructure:"DB_USER"`
	Password        string `mapstructure:"DB_PASSWORD"`
	Name            string `mapstructure:"DB_NAME"`
	SSLMode         string `mapstructure:"DB_SSLMODE"`
	TimeZone        string `mapstructure:"DB_TIMEZONE"`
	SQLitePath      string `mapstructure:"SQLITE_PATH"`
	MaxOpenConns    int    `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int    `mapstructure:"DB_MAX_IDLE_CONNS"`
	ConnMaxLifeTime int    `mapstructure:"DB_CONN_MAX_LIFETIME_MIN"` // минут
}

type AdminConfig struct {
	Username string `mapstructure:"ADMIN_USERNAME"`
	Password string `mapstructure:"ADMIN_PASSWORD"`
}

type NotifyConfig struct {
	AMQPURL      string        `mapstructure:"AMQP_URL"` // пусто — публикация в RabbitMQ выключена
	AMQPExchange string        `mapstructure:"AMQP_EXCHANGE"`
	Timeout      time.Duration `mapstructure:"NOTIFY_TIMEOUT"`
	AuditEvents  bool          `mapstructure:"AUDIT_EVENTS"`
}

// Config — полная конфигурация процесса.
type Config struct {
	Env       string `mapstructure:"ENV"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	GRPCAddr  string `mapstructure:"GRPC_ADDR"`
	StatsCron string `mapstructure:"STATS_CRON"`

	DB     DBConfig     `mapstructure:",squash"`
	Admin  AdminConfig  `mapstructure:",squash"`
	Notify NotifyConfig `mapstructure:",squash"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load читает .env (если есть), затем переменные окружения поверх дефолтов.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env не обязателен

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.DB.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"ENV":        "development",
		"LOG_LEVEL":  "info",
		"GRPC_ADDR":  ":50051",
		"STATS_CRON": "0 21 * * *",

		"DB_DRIVER":                DriverPostgres,
		"DB_HOST":                  "postgres",
		"DB_PORT":                  5432,
		"DB_USER":                  "booking",
		"DB_PASSWORD":              "booking",
		"DB_NAME":                  "booking_db",
		"DB_SSLMODE":               "disable",
		"DB_TIMEZONE":              "UTC",
		"SQLITE_PATH":              "barber.db",
		"DB_MAX_OPEN_CONNS":        10,
		"DB_MAX_IDLE_CONNS":        5,
		"DB_CONN_MAX_LIFETIME_MIN": 30,

		"ADMIN_USERNAME": "admin",
		"ADMIN_PASSWORD": "password",

		"AMQP_URL":       "",
		"AMQP_EXCHANGE":  "booking.exchange",
		"NOTIFY_TIMEOUT": 10 * time.Second,
		"AUDIT_EVENTS":   true,
	}
	// SetDefault регистрирует ключ, без этого AutomaticEnv не попадёт в Unmarshal.
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
}

// Validate — минимальная валидация параметров подключения.
func (c DBConfig) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" || c.User == "" || c.Name == "" {
			return fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("invalid DB config: sqlite path must not be empty")
		}
	default:
		return fmt.Errorf("invalid DB config: unknown driver %q", c.Driver)
	}
	return nil
}
