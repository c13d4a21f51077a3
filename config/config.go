package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const ServiceName = "resort-admin"

type DBConfig struct {
	Driver  string // mysql or postgres
	URL     string
	Host    string
	Port    string
	User    string
	Pass    string
	Name    string
	SSLMode string
}

type Config struct {
	Port                 string
	Env                  string
	LogLevel             string
	DB                   DBConfig
	UploadDir            string
	MaxUploadMB          int64
	CORSOrigins          []string
	DefaultAdminPassword string
	MetricsEnabled       bool
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found; continuing with environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "mysql")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_NAME", "resort_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("MAX_UPLOAD_MB", 10)
	v.SetDefault("DEFAULT_ADMIN_PASSWORD", "admin123")
	v.SetDefault("METRICS_ENABLED", true)

	driver := strings.ToLower(strings.TrimSpace(v.GetString("DB_DRIVER")))
	port := strings.TrimSpace(v.GetString("DB_PORT"))
	if port == "" {
		port = "3306"
		if driver == "postgres" {
			port = "5432"
		}
	}

	url := strings.TrimSpace(v.GetString("MYSQL_URL"))
	if url == "" || driver == "postgres" {
		url = strings.TrimSpace(v.GetString("DATABASE_URL"))
	}

	return &Config{
		Port:     v.GetString("PORT"),
		Env:      v.GetString("APP_ENV"),
		LogLevel: v.GetString("LOG_LEVEL"),
		DB: DBConfig{
			Driver:  driver,
			URL:     url,
			Host:    v.GetString("DB_HOST"),
			Port:    port,
			User:    v.GetString("DB_USER"),
			Pass:    v.GetString("DB_PASS"),
			Name:    v.GetString("DB_NAME"),
			SSLMode: v.GetString("DB_SSLMODE"),
		},
		UploadDir:            v.GetString("UPLOAD_DIR"),
		MaxUploadMB:          v.GetInt64("MAX_UPLOAD_MB"),
		CORSOrigins:          parseCorsOrigins(v.GetString("CORS_ORIGINS")),
		DefaultAdminPassword: v.GetString("DEFAULT_ADMIN_PASSWORD"),
		MetricsEnabled:       v.GetBool("METRICS_ENABLED"),
	}
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
