package config

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	EngineMemory   = "memory"
	EngineSQLite   = "sqlite"
	EnginePostgres = "postgres"

	AdapterPGX  = "pgx"
	AdapterSQL  = "sql"
	AdapterSQLX = "sqlx"
)

var (
	ErrConfigPathNotSet   = errors.New("config path is not set: use --config flag or CONFIG_PATH env var")
	ErrConfigFileNotFound = errors.New("config file does not exist")
	ErrUnknownEngine      = errors.New("storage.engine must be memory, sqlite or postgres")
	ErrUnknownAdapter     = errors.New("storage.postgres.adapter must be pgx, sql or sqlx")
	ErrWeakJWTSecret      = errors.New("auth.jwt_secret must be at least 32 characters")
)

type Config struct {
	Env           string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer    HTTPServer    `yaml:"http_server"`
	Storage       Storage       `yaml:"storage"`
	Auth          Auth          `yaml:"auth"`
	Loans         Loans         `yaml:"loans"`
	DefaultAdmin  DefaultAdmin  `yaml:"default_admin"`
	Observability Observability `yaml:"observability"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env:"HTTP_SERVER_ADDRESS" env-default:"localhost:8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_SERVER_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_SERVER_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_SERVER_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	AllowedOrigins  []string      `yaml:"allowed_origins" env:"HTTP_SERVER_ALLOWED_ORIGINS" env-separator:","`
}

type Storage struct {
	Engine    string   `yaml:"engine" env:"STORAGE_ENGINE" env-default:"sqlite"`
	TableName string   `yaml:"table_name" env:"STORAGE_TABLE_NAME" env-default:"events"`
	SQLite    SQLite   `yaml:"sqlite"`
	Postgres  Postgres `yaml:"postgres"`
}

type SQLite struct {
	Path string `yaml:"path" env:"STORAGE_SQLITE_PATH" env-default:"storage/library.db"`
}

type Postgres struct {
	DSN        string `yaml:"dsn" env:"STORAGE_POSTGRES_DSN"`
	ReplicaDSN string `yaml:"replica_dsn" env:"STORAGE_POSTGRES_REPLICA_DSN"`
	Adapter    string `yaml:"adapter" env:"STORAGE_POSTGRES_ADAPTER" env-default:"pgx"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"AUTH_TOKEN_TTL" env-default:"24h"`
}

type Loans struct {
	LoanPeriod      time.Duration `yaml:"loan_period" env:"LOANS_LOAN_PERIOD" env-default:"336h"`
	OverdueInterval time.Duration `yaml:"overdue_interval" env:"LOANS_OVERDUE_INTERVAL" env-default:"1h"`
}

type DefaultAdmin struct {
	Email     string `yaml:"email" env:"DEFAULT_ADMIN_EMAIL" env-default:"admin@example.com"`
	Password  string `yaml:"password" env:"DEFAULT_ADMIN_PASSWORD" env-default:"admin"`
	FirstName string `yaml:"first_name" env:"DEFAULT_ADMIN_FIRST_NAME" env-default:"Admin"`
	LastName  string `yaml:"last_name" env:"DEFAULT_ADMIN_LAST_NAME" env-default:"User"`
}

type Observability struct {
	Enabled        bool   `yaml:"enabled" env:"OBSERVABILITY_ENABLED" env-default:"false"`
	ServiceName    string `yaml:"service_name" env:"OBSERVABILITY_SERVICE_NAME" env-default:"school-library"`
	ServiceVersion string `yaml:"service_version" env:"OBSERVABILITY_SERVICE_VERSION" env-default:"dev"`
	TraceEndpoint  string `yaml:"trace_endpoint" env:"OBSERVABILITY_TRACE_ENDPOINT" env-default:"localhost:4317"`
	MetricEndpoint string `yaml:"metric_endpoint" env:"OBSERVABILITY_METRIC_ENDPOINT" env-default:"localhost:4317"`
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, errors.Join(ErrConfigFileNotFound, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// MustLoad is Load with the path taken from CONFIG_PATH or --config. It exits on any error.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal(ErrConfigPathNotSet)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config %s: %s", configPath, err)
	}

	return cfg
}

func (c *Config) validate() error {
	switch c.Storage.Engine {
	case EngineMemory, EngineSQLite, EnginePostgres:
	default:
		return ErrUnknownEngine
	}

	if c.Storage.Engine == EnginePostgres {
		switch c.Storage.Postgres.Adapter {
		case AdapterPGX, AdapterSQL, AdapterSQLX:
		default:
			return ErrUnknownAdapter
		}
	}

	if len(c.Auth.JWTSecret) < 32 {
		return ErrWeakJWTSecret
	}

	return nil
}
