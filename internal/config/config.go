package config

import (
	"os"
	"strconv"
	"strings"
)

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout int // seconds
	MaxPoolSize    uint64
}

// AuthConfig holds token signing settings.
type AuthConfig struct {
	Secret          string
	Issuer          string
	AccessTTLMin    int
	RefreshTTLHours int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// SMTPConfig holds outbound email settings. Empty username/password disables sending.
type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Sender     string
	AdminEmail string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost     string
	Port        string
	CORSOrigins []string
	Mongo       MongoConfig
	Auth        AuthConfig
	MinIO       MinIOConfig
	SMTP        SMTPConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:     getEnv("APP_HOST", "localhost:8080"),
		Port:        getEnv("PORT", "8080"), // default only for non-sensitive value
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173")),
		Mongo: MongoConfig{
			URI:            getEnv("MONGODB_URL", ""),
			Database:       getEnv("MONGODB_DATABASE", "ucocms"),
			ConnectTimeout: getEnvInt("MONGODB_CONNECT_TIMEOUT_SEC", 10),
			MaxPoolSize:    uint64(getEnvInt("MONGODB_MAX_POOL_SIZE", 100)),
		},
		Auth: AuthConfig{
			Secret:          getEnv("SECRET_KEY", ""),
			Issuer:          getEnv("TOKEN_ISSUER", "ucoportal"),
			AccessTTLMin:    getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 1440),
			RefreshTTLHours: getEnvInt("REFRESH_TOKEN_EXPIRE_HOURS", 720),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_SERVER", "smtp.gmail.com"),
			Port:       getEnvInt("SMTP_PORT", 587),
			Username:   getEnv("SMTP_USERNAME", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			Sender:     getEnv("SENDER_EMAIL", getEnv("SMTP_USERNAME", "")),
			AdminEmail: getEnv("ADMIN_EMAIL", "admin@krbcleanenergy.com"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
