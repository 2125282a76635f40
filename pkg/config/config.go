package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	LLM      LLMConfig
	Session  SessionConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver         string // "postgres" or "sqlite"
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConns       int
	MinConns       int
	SQLitePath     string
	AutoMigrate    bool
	ConnectTimeout time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig holds object storage configuration for the analysis archive
type StorageConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// LLMConfig holds the chat-completion provider settings (LLM_* variables).
// Any OpenAI-compatible endpoint works; the default points at Groq.
type LLMConfig struct {
	APIKey  string        `envconfig:"API_KEY"`
	BaseURL string        `envconfig:"BASE_URL" default:"https://api.groq.com/openai/v1"`
	Model   string        `envconfig:"MODEL" default:"llama-3.1-8b-instant"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`

	QuestionCount       int     `envconfig:"QUESTION_COUNT" default:"5"`
	QuestionMaxTokens   int     `envconfig:"QUESTION_MAX_TOKENS" default:"200"`
	QuestionTemperature float32 `envconfig:"QUESTION_TEMPERATURE" default:"0.7"`

	ChatMaxTokens   int     `envconfig:"CHAT_MAX_TOKENS" default:"400"`
	ChatTemperature float32 `envconfig:"CHAT_TEMPERATURE" default:"0.7"`

	AnalysisMaxTokens   int     `envconfig:"ANALYSIS_MAX_TOKENS" default:"1000"`
	AnalysisTemperature float32 `envconfig:"ANALYSIS_TEMPERATURE" default:"0.3"`

	// USD per 1K tokens, used for the usage ledger
	InputPricePer1K  float64 `envconfig:"INPUT_PRICE_PER_1K" default:"0.0005"`
	OutputPricePer1K float64 `envconfig:"OUTPUT_PRICE_PER_1K" default:"0.0015"`
}

// SessionConfig holds deepening-session settings (SESSION_* variables)
type SessionConfig struct {
	LockBackend string        `envconfig:"LOCK_BACKEND" default:"memory"`
	LockTTL     time.Duration `envconfig:"LOCK_TTL" default:"60s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Driver:         getEnv("DB_DRIVER", "postgres"),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			Name:           getEnv("DB_NAME", "reunicheck"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxConns:       getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:       getEnvAsInt("DB_MIN_CONNS", 5),
			SQLitePath:     getEnv("DB_SQLITE_PATH", "reunicheck.db"),
			AutoMigrate:    getEnvAsBool("DB_AUTO_MIGRATE", false),
			ConnectTimeout: getEnvAsDuration("DB_CONNECT_TIMEOUT", "30s"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Enabled:         getEnvAsBool("STORAGE_ENABLED", false),
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "reunicheck"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
		},
	}

	if err := envconfig.Process("LLM", &config.LLM); err != nil {
		return nil, fmt.Errorf("failed to load LLM config: %w", err)
	}
	if err := envconfig.Process("SESSION", &config.Session); err != nil {
		return nil, fmt.Errorf("failed to load session config: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if c.LLM.QuestionCount < 1 {
		return fmt.Errorf("LLM_QUESTION_COUNT must be at least 1")
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.Database.Driver)
	}
	switch c.Session.LockBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("SESSION_LOCK_BACKEND must be memory or redis, got %q", c.Session.LockBackend)
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
