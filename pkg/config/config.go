package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	GigaChat GigaChatConfig
	Insight  InsightConfig
	Receipt  ReceiptConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// BodyLimit bounds upload payload size; the extraction pipeline itself
	// imposes no limit.
	BodyLimit int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

type InsightConfig struct {
	MaxAttempts  int
	RetryDelay   time.Duration
	SummaryLimit int
	TrendLimit   int
}

type ReceiptConfig struct {
	// AutoPersist inserts a transaction for every parsed receipt carrying a
	// userId, instead of returning the parsed fields only.
	AutoPersist bool
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine, environment variables are used directly

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	bodyLimit, _ := strconv.Atoi(getEnv("SERVER_BODY_LIMIT_BYTES", "5242880"))
	jwtExp, _ := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	refreshExp, _ := strconv.Atoi(getEnv("JWT_REFRESH_EXPIRATION_HOURS", "168"))
	maxAttempts, _ := strconv.Atoi(getEnv("INSIGHT_MAX_ATTEMPTS", "3"))
	retryDelay, _ := strconv.Atoi(getEnv("INSIGHT_RETRY_DELAY_SECONDS", "2"))
	summaryLimit, _ := strconv.Atoi(getEnv("INSIGHT_SUMMARY_LIMIT", "700"))
	trendLimit, _ := strconv.Atoi(getEnv("INSIGHT_TREND_LIMIT", "20"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"
	autoPersist := getEnv("RECEIPT_AUTO_PERSIST", "false") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			BodyLimit:    bodyLimit,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "spendlens"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Hour,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
		},
		Insight: InsightConfig{
			MaxAttempts:  maxAttempts,
			RetryDelay:   time.Duration(retryDelay) * time.Second,
			SummaryLimit: summaryLimit,
			TrendLimit:   trendLimit,
		},
		Receipt: ReceiptConfig{
			AutoPersist: autoPersist,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
