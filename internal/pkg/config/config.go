package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSAllowedOrigins must list explicit origins; credentials are allowed.
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:3000"`

	Mongo         MongoConfig
	Redis         RedisConfig
	Identity      IdentityConfig
	Session       SessionConfig
	Notifications NotificationConfig
	Limits        LimitsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=labcel_store"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type IdentityConfig struct {
	SessionURL string        `env:"IDENTITY_SESSION_URL, default=https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"`
	Timeout    time.Duration `env:"IDENTITY_TIMEOUT,     default=10s"`
}

type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL,            default=168h"`
	CacheTTL      time.Duration `env:"SESSION_CACHE_TTL,      default=5m"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL, default=1h"`
}

type NotificationConfig struct {
	Workers int `env:"NOTIFY_WORKERS, default=4"`
	Buffer  int `env:"NOTIFY_BUFFER,  default=256"`
}

type LimitsConfig struct {
	UploadMaxBytes  int64   `env:"UPLOAD_MAX_BYTES,  default=5242880"`
	AuthRateLimit   float64 `env:"AUTH_RATE_LIMIT,   default=5"`
	UploadRateLimit float64 `env:"UPLOAD_RATE_LIMIT, default=2"`
}

// IsProduction reports whether cookies and logging should use production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory is loaded first when present; real
// environment variables take precedence over it.
func Load() *Config {
	_ = godotenv.Load()

	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
