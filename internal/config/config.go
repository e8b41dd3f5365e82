package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	CORS   CORSConfig
	Report ReportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ReportConfig holds GST report settings.
type ReportConfig struct {
	// FilerName appears in exported workbook metadata and filenames.
	FilerName string `mapstructure:"filer_name"`
	// MaxDetailRows caps document-level rows in a single export.
	MaxDetailRows int `mapstructure:"max_detail_rows"`
}

// Load reads configuration from environment variables with the GSTBOOKS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTBOOKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstbooks")
	v.SetDefault("db.password", "gstbooks_secret")
	v.SetDefault("db.name", "gstbooks_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Report defaults
	v.SetDefault("report.filer_name", "gstbooks")
	v.SetDefault("report.max_detail_rows", 10000)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "GSTBOOKS_SERVER_PORT",
		"server.read_timeout":    "GSTBOOKS_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "GSTBOOKS_SERVER_WRITE_TIMEOUT",
		"server.environment":     "GSTBOOKS_SERVER_ENVIRONMENT",
		"db.host":                "GSTBOOKS_DB_HOST",
		"db.port":                "GSTBOOKS_DB_PORT",
		"db.user":                "GSTBOOKS_DB_USER",
		"db.password":            "GSTBOOKS_DB_PASSWORD",
		"db.name":                "GSTBOOKS_DB_NAME",
		"db.sslmode":             "GSTBOOKS_DB_SSLMODE",
		"db.max_open":            "GSTBOOKS_DB_MAX_OPEN",
		"db.max_idle":            "GSTBOOKS_DB_MAX_IDLE",
		"log.level":              "GSTBOOKS_LOG_LEVEL",
		"log.format":             "GSTBOOKS_LOG_FORMAT",
		"cors.allowed_origins":   "GSTBOOKS_CORS_ALLOWED_ORIGINS",
		"report.filer_name":      "GSTBOOKS_REPORT_FILER_NAME",
		"report.max_detail_rows": "GSTBOOKS_REPORT_MAX_DETAIL_ROWS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTBOOKS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTBOOKS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Report = ReportConfig{
		FilerName:     v.GetString("report.filer_name"),
		MaxDetailRows: v.GetInt("report.max_detail_rows"),
	}

	return cfg, nil
}
