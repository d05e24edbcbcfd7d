package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Backends de armazenamento suportados
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config agrupa todas as configurações da aplicação
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Postgres PostgresConfig
	JWT      JWTConfig
	Geocoder GeocoderConfig
	Storage  string
}

// ServerConfig contém as configurações do servidor HTTP
type ServerConfig struct {
	AppEnv             string
	Port               string
	BasePath           string
	Timezone           string
	CORSAllowedOrigins []string
	AutoMigrate        bool
}

// LoggerConfig contém as configurações de log
type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// PostgresConfig contém as configurações para conexão com o PostgreSQL
type PostgresConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
}

// JWTConfig contém as configurações dos tokens
type JWTConfig struct {
	SecretKey         string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
}

// GeocoderConfig contém as configurações do serviço de geocodificação reversa
type GeocoderConfig struct {
	BaseURL       string
	UserAgent     string
	Timeout       time.Duration
	RatePerSecond float64
}

// Load lê o arquivo .env (quando existir) e carrega a configuração do ambiente
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			AppEnv:             getEnv("APP_ENV", "development"),
			Port:               getEnv("HTTP_PORT", "8080"),
			BasePath:           getEnv("API_BASE_PATH", "/api/v1"),
			Timezone:           getEnv("APP_TIMEZONE", "Asia/Tashkent"),
			CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AutoMigrate:        getEnvBool("DB_AUTO_MIGRATE", false),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOG_LEVEL", "info"),
			Encoding:          getEnv("LOG_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOG_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOG_DISABLE_STACKTRACE", true),
		},
		Postgres: PostgresConfig{
			URL:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Database:        getEnv("DB_NAME", "loja"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  int32(getEnvInt("DB_MAX_CONNECTIONS", 10)),
			MinConnections:  int32(getEnvInt("DB_MIN_CONNECTIONS", 2)),
			MaxConnLifetime: time.Duration(getEnvInt("DB_MAX_LIFETIME", 300)) * time.Second,
		},
		JWT: JWTConfig{
			SecretKey:         getEnv("JWT_SECRET_KEY", ""),
			AccessExpiration:  time.Duration(getEnvInt("JWT_EXPIRATION_HOURS", 24)) * time.Hour,
			RefreshExpiration: time.Duration(getEnvInt("JWT_REFRESH_EXPIRATION_HOURS", 24*7)) * time.Hour,
		},
		Geocoder: GeocoderConfig{
			BaseURL:       strings.TrimRight(getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"), "/"),
			UserAgent:     getEnv("NOMINATIM_USER_AGENT", "loja-api/1.0"),
			Timeout:       time.Duration(getEnvInt("GEOCODER_TIMEOUT_SECONDS", 5)) * time.Second,
			RatePerSecond: getEnvFloat("GEOCODER_RATE_PER_SECOND", 1),
		},
		Storage: strings.ToLower(getEnv("STORAGE_BACKEND", StoragePostgres)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifica as combinações obrigatórias de configuração
func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return fmt.Errorf("JWT_SECRET_KEY não configurada")
	}
	if c.Storage != StoragePostgres && c.Storage != StorageMemory {
		return fmt.Errorf("STORAGE_BACKEND inválido: %q", c.Storage)
	}
	if _, err := time.LoadLocation(c.Server.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE inválido: %w", err)
	}
	if c.Geocoder.Timeout <= 0 {
		return fmt.Errorf("GEOCODER_TIMEOUT_SECONDS deve ser positivo")
	}
	return nil
}

// Location retorna o fuso horário da aplicação
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Server.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c PostgresConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
