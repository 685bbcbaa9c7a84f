package server

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the service settings, read from SVGBAR_* variables.
type Config struct {
	Addr           string        `envconfig:"ADDR" default:":8080"`
	RedisAddr      string        `envconfig:"REDIS_ADDR"`
	CacheTTL       time.Duration `envconfig:"CACHE_TTL" default:"24h"`
	CacheEntries   int           `envconfig:"CACHE_ENTRIES" default:"1024"`
	RateLimit      int           `envconfig:"RATE_LIMIT" default:"60"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"20s"`
	MaxBodyBytes   int64         `envconfig:"MAX_BODY_BYTES" default:"1048576"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("svgbar", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
