package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Log    LogConfig
	DB     DBConfig
	Redis  RedisConfig
	GRPC   GRPCConfig
	HTTP   HTTPConfig
	Auth   AuthConfig
	Geo    GeoConfig
	Notify NotifyConfig
}

type AppConfig struct {
	ENV        string
	InstanceID string
}

type LogConfig struct {
	Level     string
	Format    string
	Component string
	Source    bool
}

type DBConfig struct {
	Driver          string // postgres, mysql, sqlite
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type GRPCConfig struct {
	Host string
	Port string
}

type HTTPConfig struct {
	Host string
	Port string
}

type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

type GeoConfig struct {
	IndexKey          string
	ReconcileInterval time.Duration
	ReconcileBatch    int
}

type NotifyConfig struct {
	Channel   string
	Workers   int
	QueueSize int
}

// New builds the configuration from defaults and environment variables.
// A config.yaml in the working directory is honored when present.
func New() *Config {
	cfg, err := Load(".")
	if err != nil {
		// a broken file should not take the defaults down with it
		v := newViper()
		return fromViper(v)
	}
	return cfg
}

// Load reads config.yaml from dir (if any) and overlays environment variables.
// A .env file in dir fills in variables that are not already set.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return fromViper(v), nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "production")
	v.SetDefault("app.instance_id", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.component", "grpc_server")
	v.SetDefault("log.source", false)

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "")
	v.SetDefault("db.user", "nearby")
	v.SetDefault("db.password", "nearby")
	v.SetDefault("db.name", "nearby")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.max_open_conns", 50)
	v.SetDefault("db.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("grpc.host", "127.0.0.1")
	v.SetDefault("grpc.port", "50051")

	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", "8080")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")

	v.SetDefault("geo.index_key", "user:locations")
	v.SetDefault("geo.reconcile_interval", 10*time.Minute)
	v.SetDefault("geo.reconcile_batch", 500)

	v.SetDefault("notify.channel", "notifications")
	v.SetDefault("notify.workers", 4)
	v.SetDefault("notify.queue_size", 1024)

	// older deployments export MYSQL_DSN / DATABASE_URL
	_ = v.BindEnv("db.dsn", "DB_DSN", "DATABASE_URL", "MYSQL_DSN")

	return v
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	// App
	cfg.App.ENV = v.GetString("app.env")
	cfg.App.InstanceID = v.GetString("app.instance_id")
	if cfg.App.InstanceID == "" {
		cfg.App.InstanceID = uuid.NewString()
	}

	// Logger
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Log.Component = v.GetString("log.component")
	cfg.Log.Source = v.GetBool("log.source")

	// Database
	cfg.DB.Driver = strings.ToLower(v.GetString("db.driver"))
	cfg.DB.DSN = v.GetString("db.dsn")
	cfg.DB.Host = v.GetString("db.host")
	cfg.DB.Port = v.GetString("db.port")
	cfg.DB.User = v.GetString("db.user")
	cfg.DB.Password = v.GetString("db.password")
	cfg.DB.Name = v.GetString("db.name")
	cfg.DB.SSLMode = v.GetString("db.sslmode")
	cfg.DB.MaxIdleConns = v.GetInt("db.max_idle_conns")
	cfg.DB.MaxOpenConns = v.GetInt("db.max_open_conns")
	cfg.DB.ConnMaxLifetime = v.GetDuration("db.conn_max_lifetime")
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = buildDSN(cfg.DB)
	}

	// Redis
	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")

	// gRPC / HTTP
	cfg.GRPC.Host = v.GetString("grpc.host")
	cfg.GRPC.Port = v.GetString("grpc.port")
	cfg.HTTP.Host = v.GetString("http.host")
	cfg.HTTP.Port = v.GetString("http.port")

	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.Auth.Issuer = v.GetString("auth.issuer")

	cfg.Geo.IndexKey = v.GetString("geo.index_key")
	cfg.Geo.ReconcileInterval = v.GetDuration("geo.reconcile_interval")
	cfg.Geo.ReconcileBatch = v.GetInt("geo.reconcile_batch")

	cfg.Notify.Channel = v.GetString("notify.channel")
	cfg.Notify.Workers = v.GetInt("notify.workers")
	cfg.Notify.QueueSize = v.GetInt("notify.queue_size")

	return cfg
}

func buildDSN(db DBConfig) string {
	switch db.Driver {
	case "mysql":
		port := db.Port
		if port == "" {
			port = "3306"
		}
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
			db.User, db.Password, db.Host, port, db.Name,
		)
	case "sqlite":
		return "file:nearby.db?_busy_timeout=5000&_foreign_keys=on"
	default:
		port := db.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			db.Host, port, db.User, db.Password, db.Name, db.SSLMode,
		)
	}
}

// GRPCAddr returns host:port for the gRPC listener.
func (c *Config) GRPCAddr() string { return c.GRPC.Host + ":" + c.GRPC.Port }

// HTTPAddr returns host:port for the HTTP listener.
func (c *Config) HTTPAddr() string { return c.HTTP.Host + ":" + c.HTTP.Port }
