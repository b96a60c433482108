package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	JWT       JWTConfig       `koanf:"jwt"`
	Uploads   UploadsConfig   `koanf:"uploads"`
	Jobs      JobsConfig      `koanf:"jobs"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	CORS      CORSConfig      `koanf:"cors"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Driver selects the repository backend: "postgres", "mongo" or "memory".
	Driver          string        `koanf:"driver"`
	URL             string        `koanf:"url"`
	MongoURI        string        `koanf:"mongo_uri"`
	MongoDatabase   string        `koanf:"mongo_database"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
}

type JWTConfig struct {
	// Secret is the server-held HS256 signing secret. Read-only after startup.
	Secret string `koanf:"secret"`
	// Expire of zero issues tokens without an expiration claim.
	Expire   time.Duration `koanf:"expire"`
	Issuer   string        `koanf:"issuer"`
	Audience string        `koanf:"audience"`
}

type UploadsConfig struct {
	Dir         string `koanf:"dir"`
	MaxFiles    int    `koanf:"max_files"`
	MaxFileSize int64  `koanf:"max_file_size"`
}

type JobsConfig struct {
	OverdueScanEnabled  bool   `koanf:"overdue_scan_enabled"`
	OverdueScanSchedule string `koanf:"overdue_scan_schedule"`
}

type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Burst    int           `koanf:"burst"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

var (
	cfg  *Config
	once sync.Once
)

func Load(configPath string) (*Config, error) {
	var loadErr error

	once.Do(func() {
		k := koanf.New(".")

		if err := loadDefaults(k); err != nil {
			loadErr = fmt.Errorf("load defaults: %w", err)
			return
		}

		if configPath != "" {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				loadErr = fmt.Errorf("load config file: %w", err)
				return
			}
		}

		if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
			loadErr = fmt.Errorf("load env vars: %w", err)
			return
		}

		cfg = &Config{}
		if err := k.Unmarshal("", cfg); err != nil {
			loadErr = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		if err := validate(cfg); err != nil {
			loadErr = fmt.Errorf("validate config: %w", err)
			return
		}
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return cfg, nil
}

func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call Load() first")
	}
	return cfg
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "Apartment Rental API",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"server.host":             "0.0.0.0",
		"server.port":             3000,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",

		"database.driver":             "postgres",
		"database.mongo_database":     "apartment_db",
		"database.query_timeout":      "5s",
		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",

		"redis.pool_size":      10,
		"redis.min_idle_conns": 5,

		"jwt.expire":   "0s",
		"jwt.issuer":   "apartment-rental-api",
		"jwt.audience": "apartment-rental-client",

		"uploads.dir":           "uploads",
		"uploads.max_files":     5,
		"uploads.max_file_size": 10 << 20,

		"jobs.overdue_scan_enabled":  true,
		"jobs.overdue_scan_schedule": "5 0 * * *",

		"rate_limit.requests": 100,
		"rate_limit.window":   "1m",
		"rate_limit.burst":    20,

		"cors.allowed_origins": []string{"http://localhost:5173"},
		"cors.allowed_methods": []string{
			"GET",
			"POST",
			"DELETE",
			"OPTIONS",
		},
		"cors.allowed_headers": []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
		},
		"cors.allow_credentials": true,
		"cors.max_age":           300,

		"log.level":  "info",
		"log.format": "json",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "apartment-rental-api",
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"DATABASE_DRIVER":        "database.driver",
	"DATABASE_URL":           "database.url",
	"DATABASE_QUERY_TIMEOUT": "database.query_timeout",
	"MONGO_URI":              "database.mongo_uri",
	"MONGO_DATABASE":         "database.mongo_database",
	"REDIS_URL":              "redis.url",
	"ENVIRONMENT":            "app.environment",
	"HOST":                   "server.host",
	"PORT":                   "server.port",
	"LOG_LEVEL":              "log.level",
	"LOG_FORMAT":             "log.format",
	"JWT_SECRET":             "jwt.secret",
	"JWT_EXPIRE":             "jwt.expire",
	"JWT_ISSUER":             "jwt.issuer",
	"JWT_AUDIENCE":           "jwt.audience",
	"UPLOADS_DIR":            "uploads.dir",
	"UPLOADS_MAX_FILES":      "uploads.max_files",
	"UPLOADS_MAX_FILE_SIZE":  "uploads.max_file_size",
	"OVERDUE_SCAN_ENABLED":   "jobs.overdue_scan_enabled",
	"OVERDUE_SCAN_SCHEDULE":  "jobs.overdue_scan_schedule",
	"RATE_LIMIT_REQUESTS":    "rate_limit.requests",
	"RATE_LIMIT_WINDOW":      "rate_limit.window",
	"RATE_LIMIT_BURST":       "rate_limit.burst",
	"OTEL_ENDPOINT":          "otel.endpoint",
	"OTEL_SERVICE_NAME":      "otel.service_name",
	"OTEL_ENABLED":           "otel.enabled",
	"OTEL_INSECURE":          "otel.insecure",
	"OTEL_SAMPLE_RATE":       "otel.sample_rate",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	case "mongo":
		if c.Database.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the mongo driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}

	// The memory driver is the zero-dependency dev/test mode; everything else
	// expects redis for rate limiting and health checks.
	if c.Redis.URL == "" && c.Database.Driver != "memory" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.Uploads.MaxFiles <= 0 {
		return fmt.Errorf("uploads.max_files must be positive")
	}

	if c.CORS.AllowCredentials {
		for _, origin := range c.CORS.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf(
					"CORS wildcard '*' cannot be used with AllowCredentials",
				)
			}
		}
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
