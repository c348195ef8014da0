package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"personal-task-sync/internal/model"
)

const (
	CacheDriverFile  = "file"
	CacheDriverRedis = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task service
	Store StoreConfig
	Cache CacheConfig
	Redis RedisConfig
	Dates DatesConfig
	JWT   JWTConfig

	// Notifications
	Telegram TelegramConfig

	// Reference task store
	StoreServer StoreServerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StoreConfig locates the remote task store used by the task service.
type StoreConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig selects the local cache backend.
type CacheConfig struct {
	Driver string // file | redis
	Dir    string
	Key    string
	Prefix string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatesConfig struct {
	Timezone string
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type StoreServerConfig struct {
	Port            int
	DatabaseURL     string
	RateLimitPerMin int
}

// Load loads configuration using Viper. A .env file in the working
// directory, when present, is loaded into the environment first.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Task service
	cfg.Store.BaseURL = viper.GetString("store.base_url")
	cfg.Store.Timeout = viper.GetDuration("store.timeout")

	cfg.Cache.Driver = strings.ToLower(viper.GetString("cache.driver"))
	cfg.Cache.Dir = viper.GetString("cache.dir")
	cfg.Cache.Key = viper.GetString("cache.key")
	cfg.Cache.Prefix = viper.GetString("cache.prefix")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.Dates.Timezone = viper.GetString("dates.timezone")

	cfg.JWT.Secret = viper.GetString("jwt.secret")
	cfg.JWT.TTL = viper.GetDuration("jwt.ttl")

	// Notifications
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")

	// Reference task store
	cfg.StoreServer.Port = viper.GetInt("store_server.port")
	cfg.StoreServer.DatabaseURL = viper.GetString("store_server.database_url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.StoreServer.DatabaseURL = dbURL
	}
	cfg.StoreServer.RateLimitPerMin = viper.GetInt("store_server.rate_limit_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("store.base_url", "http://localhost:5000")
	viper.SetDefault("store.timeout", "10s")
	viper.SetDefault("cache.driver", CacheDriverFile)
	viper.SetDefault("cache.dir", ".cache")
	viper.SetDefault("cache.key", "todos")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("dates.timezone", "UTC")
	viper.SetDefault("jwt.ttl", "24h")

	viper.SetDefault("store_server.port", 5000)
	viper.SetDefault("store_server.rate_limit_per_min", 120)
}

func validate(cfg *Config) error {
	switch cfg.Cache.Driver {
	case CacheDriverFile, CacheDriverRedis:
	default:
		return fmt.Errorf("cache.driver must be %q or %q, got %q", CacheDriverFile, CacheDriverRedis, cfg.Cache.Driver)
	}
	if cfg.Store.BaseURL == "" {
		return fmt.Errorf("store.base_url is required")
	}
	if cfg.Cache.Key == "" {
		return fmt.Errorf("cache.key is required")
	}
	return nil
}
