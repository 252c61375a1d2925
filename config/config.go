package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DB       DBConfig
	Redis    RedisConfig
	HTTP     HTTPConfig
	Session  SessionConfig
	Telegram TelegramConfig

	// AdminEmail is the single privileged account: it may list all orders
	// and advance order statuses.
	AdminEmail string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RedisConfig struct {
	Addr string
	DB   int
}

type HTTPConfig struct {
	Addr string
}

type SessionConfig struct {
	CookieName string
	TTL        time.Duration
}

type TelegramConfig struct {
	MessageToken string // token for sending new-order notifications to admin
	AdminChatID  int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	sessionTTL, _ := strconv.Atoi(getEnv("SESSION_TTL_HOURS", "72"))
	adminChat, _ := strconv.ParseInt(getEnv("ADMIN_CHAT_ID", "0"), 10, 64)

	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     port,
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "rollpoint"),
		},
		Redis: RedisConfig{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
			DB:   redisDB,
		},
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Session: SessionConfig{
			CookieName: getEnv("SESSION_COOKIE", "rp_session"),
			TTL:        time.Duration(sessionTTL) * time.Hour,
		},
		Telegram: TelegramConfig{
			MessageToken: getEnv("MESSAGE_TOKEN", ""),
			AdminChatID:  adminChat,
		},
		AdminEmail: getEnv("ADMIN_EMAIL", "admin@example.com"),
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
