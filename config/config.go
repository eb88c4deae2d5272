package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// LifeOS specifics
	App            AppConfig
	Auth           AuthConfig
	RateLimit      RateLimitConfig
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
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

type DatabaseConfig struct {
	DSN           string
	LogLevel      string
	SlowThreshold time.Duration
	MaxOpenConns  int
}

// AppConfig holds the timezone used to decide what "today" is.
type AppConfig struct {
	Timezone string
}

type AuthConfig struct {
	SessionTTL   time.Duration
	CacheSize    int
	CookieName   string
	CookieSecure bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type SchedulerConfig struct {
	Enabled        bool
	OverdueSweepAt string // HH:MM in App.Timezone
	SessionPurgeAt string
}

// GoogleCalendarConfig is optional. An empty CredentialsPath disables events.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarIDs     []string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/lifeos/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/lifeos/")

	return load(v)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("lifeos")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.DSN = v.GetString("database.dsn")
	cfg.Database.LogLevel = v.GetString("database.log_level")
	cfg.Database.SlowThreshold = v.GetDuration("database.slow_threshold")
	cfg.Database.MaxOpenConns = v.GetInt("database.max_open_conns")

	// LifeOS specifics
	cfg.App.Timezone = v.GetString("app.timezone")
	cfg.Auth.SessionTTL = v.GetDuration("auth.session_ttl")
	cfg.Auth.CacheSize = v.GetInt("auth.cache_size")
	cfg.Auth.CookieName = v.GetString("auth.cookie_name")
	cfg.Auth.CookieSecure = v.GetBool("auth.cookie_secure")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.Scheduler.Enabled = v.GetBool("scheduler.enabled")
	cfg.Scheduler.OverdueSweepAt = v.GetString("scheduler.overdue_sweep_at")
	cfg.Scheduler.SessionPurgeAt = v.GetString("scheduler.session_purge_at")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarIDs = splitList(v.GetStringSlice("google_calendar.calendar_ids"))

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("database.dsn", "data/lifeos.db")
	v.SetDefault("database.log_level", "warn")
	v.SetDefault("database.slow_threshold", "1s")
	v.SetDefault("database.max_open_conns", 1)

	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("auth.session_ttl", "720h")
	v.SetDefault("auth.cache_size", 1000)
	v.SetDefault("auth.cookie_name", "lifeos_session")
	v.SetDefault("auth.cookie_secure", false)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.overdue_sweep_at", "00:05")
	v.SetDefault("scheduler.session_purge_at", "03:00")

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_ids", []string{"primary"})
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("app.timezone: %w", err)
	}
	if cfg.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive")
	}
	return nil
}

// splitList flattens comma separated entries, since env overrides arrive as one string.
func splitList(raw []string) []string {
	var out []string
	for _, entry := range raw {
		for _, s := range strings.Split(entry, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
