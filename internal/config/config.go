package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds application configuration
type Config struct {
	Port      string `toml:"port"`
	LogLevel  string `toml:"log_level"`
	JWTSecret string `toml:"jwt_secret"`
	CBRURL    string `toml:"cbr_url"`

	StoreDriver string `toml:"store_driver"` // memory, file, redis, postgres, sqlite
	DBConn      string `toml:"db_conn"`      // DSN for postgres, path for file/sqlite
	RedisAddr   string `toml:"redis_addr"`

	ClockSlots int    `toml:"clock_slots"`
	ClockSpec  string `toml:"clock_spec"`

	SMTPHost     string `toml:"smtp_host"`
	SMTPPort     string `toml:"smtp_port"`
	SMTPUsername string `toml:"smtp_username"`
	SMTPPassword string `toml:"smtp_password"`
	SenderEmail  string `toml:"sender_email"`
}

// NewConfig loads configuration from an optional TOML file named by
// CALC_CONFIG, then from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:        "8080",
		LogLevel:    "INFO",
		JWTSecret:   "secret",
		CBRURL:      "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx",
		StoreDriver: "memory",
		RedisAddr:   "localhost:6379",
		ClockSlots:  3,
		ClockSpec:   "* * * * * *",
		SMTPPort:    "587",
	}

	if path := os.Getenv("CALC_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.CBRURL = getEnv("CBR_URL", cfg.CBRURL)
	cfg.StoreDriver = getEnv("STORE_DRIVER", cfg.StoreDriver)
	cfg.DBConn = getEnv("DB_CONN", cfg.DBConn)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.ClockSpec = getEnv("CLOCK_SPEC", cfg.ClockSpec)
	cfg.SMTPHost = getEnv("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = getEnv("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUsername = getEnv("SMTP_USERNAME", cfg.SMTPUsername)
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", cfg.SMTPPassword)
	cfg.SenderEmail = getEnv("SENDER_EMAIL", cfg.SenderEmail)

	if v, ok := os.LookupEnv("CLOCK_SLOTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CLOCK_SLOTS must be a number: %w", err)
		}
		cfg.ClockSlots = n
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	switch cfg.StoreDriver {
	case "memory":
	case "file", "postgres", "sqlite":
		if cfg.DBConn == "" {
			return nil, fmt.Errorf("DB_CONN is required for store driver %s", cfg.StoreDriver)
		}
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.ClockSlots < 2 {
		return nil, fmt.Errorf("CLOCK_SLOTS must be at least 2, got %d", cfg.ClockSlots)
	}

	return cfg, nil
}

// MailEnabled reports whether an SMTP server is configured
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.SenderEmail != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
