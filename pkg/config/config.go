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
	Env       string
	Port      int
	APIPrefix string

	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	Seed       SeedConfig
	Display    DisplayConfig
	Attendance AttendanceConfig
	Dashboard  DashboardConfig
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

// SeedConfig points at an optional YAML fixture replacing the built-in data set.
type SeedConfig struct {
	File string
}

// DisplayConfig selects the locale used for human readable dates and times.
type DisplayConfig struct {
	Locale string
}

// AttendanceConfig carries defaults applied to newly created attendance records.
type AttendanceConfig struct {
	DefaultInstructor string
}

// DashboardConfig governs dashboard caching and composition.
type DashboardConfig struct {
	CacheEnabled   bool
	CacheTTL       time.Duration
	RecentStudents int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

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

	cfg.Seed = SeedConfig{File: strings.TrimSpace(v.GetString("SEED_FILE"))}

	cfg.Display = DisplayConfig{Locale: v.GetString("DISPLAY_LOCALE")}

	cfg.Attendance = AttendanceConfig{
		DefaultInstructor: v.GetString("ATTENDANCE_DEFAULT_INSTRUCTOR"),
	}

	recent := v.GetInt("DASHBOARD_RECENT_STUDENTS")
	if recent <= 0 {
		recent = 5
	}
	cfg.Dashboard = DashboardConfig{
		CacheEnabled:   v.GetBool("ENABLE_CACHE"),
		CacheTTL:       parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
		RecentStudents: recent,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED_FILE", "")
	v.SetDefault("DISPLAY_LOCALE", "es-CO")
	v.SetDefault("ATTENDANCE_DEFAULT_INSTRUCTOR", "Miguel Ángel Torres")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	v.SetDefault("DASHBOARD_RECENT_STUDENTS", 5)
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
