package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	DB        DBConfig
	Redis     RedisConfig
	Schedule  ScheduleConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	TimeZone    string
	AutoMigrate bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	// Timeout applies to dialing and to every command, including the startup ping
	Timeout  time.Duration
}

func (c RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type ScheduleConfig struct {
	// MaxNumber is the booking capacity given to slots created without one
	MaxNumber int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type CacheConfig struct {
	AllcodeSize int
}

// IsDevelopment reports whether the app runs in the development environment
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadConfig reads configuration from the env file at path, if it exists, and from the
// process environment, which takes precedence.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetString("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_NAME"),
			TimeZone:    v.GetString("DB_TIMEZONE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Timeout:  v.GetDuration("REDIS_TIMEOUT"),
		},
		Schedule: ScheduleConfig{
			MaxNumber: v.GetInt("MAX_NUMBER_SCHEDULE"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		Cache: CacheConfig{
			AllcodeSize: v.GetInt("ALLCODE_CACHE_SIZE"),
		},
	}

	if config.Schedule.MaxNumber < 1 {
		return nil, fmt.Errorf("MAX_NUMBER_SCHEDULE must be at least 1, got %d", config.Schedule.MaxNumber)
	}

	if config.Redis.Timeout <= 0 {
		return nil, fmt.Errorf("REDIS_TIMEOUT must be positive, got %s", config.Redis.Timeout)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "bookingcare")
	v.SetDefault("DB_TIMEZONE", "Asia/Ho_Chi_Minh")
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("REDIS_ENABLED", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_TIMEOUT", "5s")
	v.SetDefault("MAX_NUMBER_SCHEDULE", 10)
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("ALLCODE_CACHE_SIZE", 32)
}
