package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	Environment   string
	LogLevel      string
	HTTPAddr      string
	MigrationsDir string
	SeedFile      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	CORSOrigins []string

	TelegramToken string
	AdminChatIDs  []int64
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	} else {
		log.Println("Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		Environment:   getEnv("ENV", "development"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		HTTPAddr:      getEnv("HTTP_ADDR", ":30025"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		SeedFile:      os.Getenv("SEED_FILE"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "*")),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("parse CACHE_TTL: %w", err)
	}

	for _, raw := range splitList(os.Getenv("ADMIN_CHAT_IDS")) {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ADMIN_CHAT_IDS %q: %w", raw, err)
		}
		cfg.AdminChatIDs = append(cfg.AdminChatIDs, id)
	}

	if cfg.TelegramToken != "" && len(cfg.AdminChatIDs) == 0 {
		return nil, fmt.Errorf("ADMIN_CHAT_IDS is required when TELEGRAM_TOKEN is set")
	}

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
