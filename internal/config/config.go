package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Redis         RedisConfig         `yaml:"redis"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Auth          AuthConfig          `yaml:"auth"`
	Dispatch      DispatchConfig      `yaml:"dispatch"`
	SMTP          SMTPConfig          `yaml:"smtp"`
	Search        SearchConfig        `yaml:"search"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
	Retention     RetentionConfig     `yaml:"retention"`
}

// RetentionConfig controls the cleanup command.
type RetentionConfig struct {
	NotificationDays int `yaml:"notification_days" env:"RETENTION_NOTIFICATION_DAYS" env-default:"90"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig bounds write requests per client IP. Zero disables limiting.
type RateLimitConfig struct {
	WritesPerMinute int           `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"120"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	GinMode         string        `yaml:"gin_mode"         env:"GIN_MODE"                env-default:"release"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the channel-config cache settings. Empty Addr disables the cache.
type RedisConfig struct {
	Addr         string        `yaml:"addr"          env:"REDIS_ADDR"`
	Password     string        `yaml:"password"      env:"REDIS_PASSWORD"`
	DB           int           `yaml:"db"            env:"REDIS_DB"            env-default:"0"`
	DialTimeout  time.Duration `yaml:"dial_timeout"  env:"REDIS_DIAL_TIMEOUT"  env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"REDIS_READ_TIMEOUT"  env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize     int           `yaml:"pool_size"     env:"REDIS_POOL_SIZE"     env-default:"10"`
	CacheTTL     time.Duration `yaml:"cache_ttl"     env:"REDIS_CACHE_TTL"     env-default:"10m"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// ElasticsearchConfig holds the search backend connection used when search.backend=elasticsearch.
type ElasticsearchConfig struct {
	Addresses string `yaml:"addresses" env:"ELASTICSEARCH_ADDRESSES" env-default:"http://localhost:9200"`
	Username  string `yaml:"username"  env:"ELASTICSEARCH_USERNAME"`
	Password  string `yaml:"password"  env:"ELASTICSEARCH_PASSWORD"`
	Index     string `yaml:"index"     env:"ELASTICSEARCH_INDEX"     env-default:"customizations"`
}

// AddressList splits Addresses on commas.
func (c ElasticsearchConfig) AddressList() []string {
	var out []string
	for _, a := range strings.Split(c.Addresses, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// AuthConfig holds actor-token validation settings. Empty JWTSecret disables
// token resolution and every request runs as the system actor.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"customtrack"`
}

// Enabled reports whether actor tokens are validated.
func (c AuthConfig) Enabled() bool { return c.JWTSecret != "" }

// DispatchConfig holds notification dispatch settings.
type DispatchConfig struct {
	Timeout    time.Duration `yaml:"timeout"     env:"DISPATCH_TIMEOUT"     env-default:"6s"`
	Workers    int           `yaml:"workers"     env:"DISPATCH_WORKERS"     env-default:"4"`
	QueueSize  int           `yaml:"queue_size"  env:"DISPATCH_QUEUE_SIZE"  env-default:"256"`
	SubjectTag string        `yaml:"subject_tag" env:"DISPATCH_SUBJECT_TAG" env-default:"[CT]"`
}

// SMTPConfig holds outbound email settings. Empty Host disables email.
type SMTPConfig struct {
	Host     string `yaml:"host"     env:"SMTP_HOST"`
	Port     int    `yaml:"port"     env:"SMTP_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
	From     string `yaml:"from"     env:"SMTP_FROM"     env-default:"customtrack@localhost"`
}

// Enabled reports whether an SMTP host is configured.
func (c SMTPConfig) Enabled() bool { return c.Host != "" }

// SearchConfig holds search-index refresh settings.
type SearchConfig struct {
	Backend     string        `yaml:"backend"      env:"SEARCH_BACKEND"      env-default:"postgres"`
	Embedder    string        `yaml:"embedder"     env:"SEARCH_EMBEDDER"     env-default:"lexical"`
	Dimension   int           `yaml:"dimension"    env:"SEARCH_DIMENSION"    env-default:"384"`
	Workers     int           `yaml:"workers"      env:"SEARCH_WORKERS"      env-default:"1"`
	QueueSize   int           `yaml:"queue_size"   env:"SEARCH_QUEUE_SIZE"   env-default:"128"`
	Timeout     time.Duration `yaml:"timeout"      env:"SEARCH_TIMEOUT"      env-default:"10s"`
	OllamaURL   string        `yaml:"ollama_url"   env:"SEARCH_OLLAMA_URL"   env-default:"http://localhost:11434"`
	OllamaModel string        `yaml:"ollama_model" env:"SEARCH_OLLAMA_MODEL" env-default:"bge-m3"`
	OllamaToken string        `yaml:"ollama_token" env:"SEARCH_OLLAMA_TOKEN"`
}

// Search backends and embedders accepted by SearchConfig.
const (
	SearchBackendPostgres      = "postgres"
	SearchBackendElasticsearch = "elasticsearch"
	SearchBackendNone          = "none"

	EmbedderLexical = "lexical"
	EmbedderOllama  = "ollama"
)

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
