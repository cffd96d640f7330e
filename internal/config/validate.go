package config

import (
	"fmt"
	"time"
)

// maxDispatchTimeout bounds a single channel attempt.
const maxDispatchTimeout = 30 * time.Second

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Dispatch.validate(); err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	if c.SMTP.Enabled() && (c.SMTP.Port <= 0 || c.SMTP.Port > 65535) {
		return fmt.Errorf("smtp.port must be in 1..65535 (got %d)", c.SMTP.Port)
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.Search.Backend == SearchBackendElasticsearch && len(c.Elasticsearch.AddressList()) == 0 {
		return fmt.Errorf("elasticsearch.addresses required when search.backend=%s", SearchBackendElasticsearch)
	}

	if c.RateLimit.WritesPerMinute < 0 {
		return fmt.Errorf("rate_limit.writes_per_minute must be >= 0 (got %d)", c.RateLimit.WritesPerMinute)
	}

	if c.Retention.NotificationDays < 1 {
		return fmt.Errorf("retention.notification_days must be >= 1 (got %d)", c.Retention.NotificationDays)
	}

	return nil
}

func (d *DispatchConfig) validate() error {
	if d.Timeout <= 0 || d.Timeout > maxDispatchTimeout {
		return fmt.Errorf("timeout must be in (0, %s] (got %s)", maxDispatchTimeout, d.Timeout)
	}
	if d.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", d.Workers)
	}
	if d.QueueSize < 1 {
		return fmt.Errorf("queue_size must be >= 1 (got %d)", d.QueueSize)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	switch s.Backend {
	case SearchBackendPostgres, SearchBackendElasticsearch, SearchBackendNone:
	default:
		return fmt.Errorf("backend must be one of postgres, elasticsearch, none (got %q)", s.Backend)
	}
	switch s.Embedder {
	case EmbedderLexical, EmbedderOllama:
	default:
		return fmt.Errorf("embedder must be one of lexical, ollama (got %q)", s.Embedder)
	}
	if s.Dimension < 8 {
		return fmt.Errorf("dimension must be >= 8 (got %d)", s.Dimension)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", s.Workers)
	}
	if s.QueueSize < 1 {
		return fmt.Errorf("queue_size must be >= 1 (got %d)", s.QueueSize)
	}
	return nil
}
