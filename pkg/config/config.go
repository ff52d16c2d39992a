package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env  string
	Port int

	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Cache     CacheConfig
	API       APIConfig
	RateLimit RateLimitConfig
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CacheConfig carries per-operation TTLs for the cache-aside read path.
type CacheConfig struct {
	ListTTL   time.Duration
	DetailTTL time.Duration
	SearchTTL time.Duration
	StatsTTL  time.Duration
}

// APIConfig tunes request shaping for the query endpoints.
type APIConfig struct {
	MaxPageLimit int
	Version      string
}

// RateLimitConfig governs the per-client token bucket. Disabled by default.
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// A missing .env is not an error: env-vars-only deployments run on
	// defaults plus the process environment. With an explicit config file
	// viper surfaces the raw *fs.PathError rather than its own not-found type,
	// so both shapes are accepted.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")

	cfg.Database = DatabaseConfig{
		Host:            v.GetString("DB_HOST"),
		Port:            v.GetInt("DB_PORT"),
		User:            v.GetString("DB_USER"),
		Password:        v.GetString("DB_PASSWORD"),
		Name:            v.GetString("DB_NAME"),
		SSLMode:         v.GetString("DB_SSL_MODE"),
		MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: parseDuration(v.GetString("DB_CONN_MAX_LIFETIME"), time.Hour),
		ConnMaxIdleTime: parseDuration(v.GetString("DB_CONN_MAX_IDLE_TIME"), 30*time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Cache = CacheConfig{
		ListTTL:   parseDuration(v.GetString("CACHE_LIST_TTL"), 5*time.Minute),
		DetailTTL: parseDuration(v.GetString("CACHE_DETAIL_TTL"), 10*time.Minute),
		SearchTTL: parseDuration(v.GetString("CACHE_SEARCH_TTL"), 5*time.Minute),
		StatsTTL:  parseDuration(v.GetString("CACHE_STATS_TTL"), 2*time.Minute),
	}

	cfg.API = APIConfig{
		MaxPageLimit: v.GetInt("API_MAX_PAGE_LIMIT"),
		Version:      v.GetString("API_VERSION"),
	}

	cfg.RateLimit = RateLimitConfig{
		Enabled:           v.GetBool("RATE_LIMIT_ENABLED"),
		RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
		Burst:             v.GetInt("RATE_LIMIT_BURST"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 3000)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "media_content")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", "30m")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CACHE_LIST_TTL", "5m")
	v.SetDefault("CACHE_DETAIL_TTL", "10m")
	v.SetDefault("CACHE_SEARCH_TTL", "5m")
	v.SetDefault("CACHE_STATS_TTL", "2m")

	v.SetDefault("API_MAX_PAGE_LIMIT", 100)
	v.SetDefault("API_VERSION", "1.0.0")

	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
