package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrMissingJWTSecret se devuelve cuando JWT_SECRET no está configurado.
// Es una condición fatal de arranque: sin secreto no se pueden emitir ni verificar tokens.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET es obligatorio")

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	AI        AIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// IsDevelopment indica si se deben exponer pistas de diagnóstico en las respuestas de error.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	Driver             string // postgres (por defecto) | memory
	DatabaseURL        string
	Host               string
	Port               int
	User               string
	Password           string
	DBName             string
	SSLMode            string
	MaxConns           int
	ConnectTimeout     time.Duration
	StatementTimeoutMs int
	AutoMigrate        bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// TTL devuelve la vigencia por defecto de un token.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.Expiration) * time.Minute
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	BodyLimitMB int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig origen permitido para el frontend del tenant.
type CORSConfig struct {
	Origin string
}

// RateLimitConfig límite de peticiones por IP sobre /api.
type RateLimitConfig struct {
	MaxRequests int
	WindowMs    int
}

// Window devuelve la ventana de conteo como duración.
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMs) * time.Millisecond
}

// RedisConfig almacenamiento compartido del rate limiter (opcional).
type RedisConfig struct {
	URL string
}

// AIConfig proveedores externos para normalizar prompts. Sin claves se usa la heurística local.
type AIConfig struct {
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Devuelve ErrMissingJWTSecret si no hay secreto de firma.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env; se ignora el error si no existen
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "kabs-design-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:             getString(v, "DB_DRIVER", "postgres"),
			DatabaseURL:        getString(v, "DATABASE_URL", ""),
			Host:               getString(v, "DB_HOST", "localhost"),
			Port:               getInt(v, "DB_PORT", 5432),
			User:               getString(v, "DB_USER", "postgres"),
			Password:           getString(v, "DB_PASSWORD", "postgres"),
			DBName:             getString(v, "DB_NAME", "kab_design_tool"),
			SSLMode:            getString(v, "DB_SSLMODE", "disable"),
			MaxConns:           getInt(v, "DB_MAX_CONNS", 20),
			ConnectTimeout:     time.Duration(getInt(v, "DB_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
			StatementTimeoutMs: getInt(v, "DB_STATEMENT_TIMEOUT_MS", 10000),
			AutoMigrate:        getBool(v, "DB_AUTO_MIGRATE", false),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 7*24*60),
			Issuer:     getString(v, "JWT_ISSUER", "kabs-design-api"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 3001),
			BodyLimitMB: getInt(v, "HTTP_BODY_LIMIT_MB", 10),
		},
		CORS: CORSConfig{
			Origin: getString(v, "CORS_ORIGIN", "http://localhost:5173"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getInt(v, "RATE_LIMIT_MAX_REQUESTS", 100),
			WindowMs:    getInt(v, "RATE_LIMIT_WINDOW_MS", 900000),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
		AI: AIConfig{
			OpenAIAPIKey:    getString(v, "OPENAI_API_KEY", ""),
			OpenAIModel:     getString(v, "OPENAI_MODEL", "gpt-4o-mini"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	if cfg.JWT.Expiration <= 0 {
		return nil, fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo, recibido %d", cfg.JWT.Expiration)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch v.Get(key).(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return n
	default:
		return v.GetInt(key)
	}
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	return v.GetBool(key)
}
