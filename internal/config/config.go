package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// ledger identities, demo seeding, the dashboard and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default minimum log level when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the origins allowed to call the API from a browser
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-default:"*" env-separator:"," yaml:"corsOrigins"`
		// Pprof mounts the runtime profiler under /debug/pprof/
		Pprof bool `env:"HTTP_PPROF" env-default:"false" yaml:"pprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"tb3" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Auth contains the RSA key pair used for governance bearer tokens
	Auth struct {
		// PublicKey verifies tokens on governance writes; empty disables the check
		PublicKey string `env:"AUTH_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens issued by the jwt command
		PrivateKey string `env:"AUTH_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"auth"`

	// Chain contains the ledger identity and the well-known actor addresses.
	// Empty addresses are derived deterministically from the demo seed.
	Chain struct {
		ChainID string `env:"CHAIN_ID" env-default:"tbthree" yaml:"chainId"`
		Admin   string `env:"CHAIN_ADMIN_ADDR" yaml:"admin"`
		Cloud   string `env:"CHAIN_CLOUD_ADDR" yaml:"cloud"`
		Vehicle string `env:"CHAIN_VEHICLE_ADDR" yaml:"vehicle"`
		Edge1   string `env:"CHAIN_EDGE1_ADDR" yaml:"edge1"`
		Edge2   string `env:"CHAIN_EDGE2_ADDR" yaml:"edge2"`
		Edge3   string `env:"CHAIN_EDGE3_ADDR" yaml:"edge3"`
	} `yaml:"chain"`

	// Demo controls the demo seed worker
	Demo struct {
		// Workers is the number of concurrent seed jobs river may run
		Workers int `env:"DEMO_WORKERS" env-default:"1" yaml:"workers"`
		// SeedOnStart enqueues a seed run with default parameters when serve starts
		SeedOnStart bool `env:"DEMO_SEED_ON_START" env-default:"false" yaml:"seedOnStart"`
		// AddressSeed derives missing actor addresses
		AddressSeed int64 `env:"DEMO_ADDRESS_SEED" env-default:"42" yaml:"addressSeed"`
		// MaxAttempts is how many times river retries a failed seed run
		MaxAttempts int `env:"DEMO_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// UniquePeriod is the window in which identical seed requests are deduplicated
		UniquePeriod time.Duration `env:"DEMO_UNIQUE_PERIOD" env-default:"1m" yaml:"uniquePeriod"`
	} `yaml:"demo"`

	// Dashboard contains the server-rendered dashboard settings
	Dashboard struct {
		// Addr is the address the dashboard listens on
		Addr string `env:"DASHBOARD_ADDR" env-default:":8081" yaml:"addr"`
		// BackendURL is the base URL of the tb3 REST surface
		BackendURL string `env:"DASHBOARD_BACKEND_URL" env-default:"http://localhost:8080" yaml:"backendURL"`
		// Token is sent as the bearer token on governance actions
		Token string `env:"DASHBOARD_TOKEN" yaml:"token"`
		// RequestTimeout bounds every backend call made while rendering a page
		RequestTimeout time.Duration `env:"DASHBOARD_REQUEST_TIMEOUT" env-default:"5s" yaml:"requestTimeout"`
	} `yaml:"dashboard"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
