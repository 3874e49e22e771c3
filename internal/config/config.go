package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Supabase  SupabaseConfig  `yaml:"supabase"`
	Vault     VaultConfig     `yaml:"vault"`
	Redis     RedisConfig     `yaml:"redis"`
	Events    EventsConfig    `yaml:"events"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// Origins splits AllowedOrigins into trimmed, non-empty entries.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods into trimmed, non-empty entries.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders into trimmed, non-empty entries.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings for the admin
// (service-role) connection.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`

	// StatementTimeout bounds a single cascade delete. Zero leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"2m"`
}

// SupabaseConfig holds the managed backend endpoints and credentials.
type SupabaseConfig struct {
	URL            string        `yaml:"url"              env:"SUPABASE_URL"              env-required:"true"`
	ServiceRoleKey string        `yaml:"service_role_key" env:"SUPABASE_SERVICE_ROLE_KEY" env-required:"true"`
	JWTSecret      string        `yaml:"jwt_secret"       env:"SUPABASE_JWT_SECRET"       env-required:"true"`
	JWTAudience    string        `yaml:"jwt_audience"     env:"SUPABASE_JWT_AUDIENCE"     env-default:"authenticated"`
	RequestTimeout time.Duration `yaml:"request_timeout"  env:"SUPABASE_REQUEST_TIMEOUT"  env-default:"30s"`
	RetryCount     int           `yaml:"retry_count"      env:"SUPABASE_RETRY_COUNT"      env-default:"2"`
}

// VaultConfig holds object-storage cleanup parameters.
type VaultConfig struct {
	Bucket              string `yaml:"bucket"                env:"VAULT_BUCKET"                env-default:"vault"`
	RemoveBatchSize     int    `yaml:"remove_batch_size"     env:"VAULT_REMOVE_BATCH_SIZE"     env-default:"100"`
	CatalogPageSize     int    `yaml:"catalog_page_size"     env:"VAULT_CATALOG_PAGE_SIZE"     env-default:"1000"`
	ListPageSize        int    `yaml:"list_page_size"        env:"VAULT_LIST_PAGE_SIZE"        env-default:"100"`
	MaxWalkDepth        int    `yaml:"max_walk_depth"        env:"VAULT_MAX_WALK_DEPTH"        env-default:"16"`
	ProfileVerifyPasses int    `yaml:"profile_verify_passes" env:"VAULT_PROFILE_VERIFY_PASSES" env-default:"3"`
	ResidueSampleSize   int    `yaml:"residue_sample_size"   env:"VAULT_RESIDUE_SAMPLE_SIZE"   env-default:"5"`
}

// RedisConfig holds settings for the in-flight deletion guard.
// An empty Addr disables the guard.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	LockTTL  time.Duration `yaml:"lock_ttl" env:"REDIS_LOCK_TTL" env-default:"10m"`
}

// Enabled reports whether a redis address is configured.
func (c RedisConfig) Enabled() bool { return strings.TrimSpace(c.Addr) != "" }

// EventsConfig holds RabbitMQ settings. An empty AMQPURL selects the logging
// fallback publisher.
type EventsConfig struct {
	AMQPURL  string `yaml:"amqp_url" env:"EVENTS_AMQP_URL"`
	Exchange string `yaml:"exchange" env:"EVENTS_EXCHANGE" env-default:"medvault.events"`
}

// Enabled reports whether an AMQP URL is configured.
func (c EventsConfig) Enabled() bool { return strings.TrimSpace(c.AMQPURL) != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds destructive endpoints per client IP.
type RateLimitConfig struct {
	DeletePerMinute int           `yaml:"delete_per_minute" env:"RATELIMIT_DELETE_PER_MINUTE" env-default:"5"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATELIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
