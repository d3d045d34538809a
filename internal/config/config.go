package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env          string `env:"ENV" env-default:"development"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	AppName      string `env:"APP_NAME" env-default:"CRM Application"`
	HttpServer   HttpServer
	Database     Database
	Limiter      Limiter
	Registration RegistrationConfig
	Identity     IdentityConfig
	Storage      StorageConfig
	SMTP         SMTPConfig
	Email        EmailConfig
	Cache        Cache
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"8000"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	CORSOrigins    []string      `env:"HTTP_CORS_ORIGINS" env-default:"http://localhost:8000,http://127.0.0.1:8000"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE" env-default:"UTC"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
	ConnMaxLifetime    time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`
	AutoMigrate        bool          `env:"DB_AUTO_MIGRATE" env-default:"true"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type RegistrationConfig struct {
	BaseURL          string        `env:"APP_BASE_URL" env-default:"http://localhost:8000" env-description:"public origin used in verification links"`
	TokenTTL         time.Duration `env:"VERIFICATION_TOKEN_TTL" env-default:"24h"`
	MaxUploadBytes   int64         `env:"MAX_UPLOAD_BYTES" env-default:"5242880"`
	AllowedMimeTypes []string      `env:"ALLOWED_MIME_TYPES" env-default:"image/jpeg,image/png,image/gif"`
}

type IdentityConfig struct {
	BaseURL string        `env:"IDENTITY_BASE_URL" env-default:"https://verification.didit.me"`
	APIKey  string        `env:"IDENTITY_API_KEY" env-default:"" env-description:"empty key selects the always-approve stub"`
	Timeout time.Duration `env:"IDENTITY_TIMEOUT" env-default:"10s"`
}

func (c IdentityConfig) Configured() bool {
	return c.APIKey != ""
}

type StorageConfig struct {
	Provider           string        `env:"STORAGE_PROVIDER" env-default:"" env-description:"one of minio/s3/gcs, empty disables uploads"`
	Bucket             string        `env:"STORAGE_BUCKET" env-default:""`
	Region             string        `env:"STORAGE_REGION" env-default:"us-east-1"`
	Endpoint           string        `env:"STORAGE_ENDPOINT" env-default:"" env-description:"minio host:port or custom s3 endpoint"`
	AccessKey          string        `env:"STORAGE_ACCESS_KEY" env-default:""`
	SecretKey          string        `env:"STORAGE_SECRET_KEY" env-default:""`
	UseSSL             bool          `env:"STORAGE_USE_SSL" env-default:"true"`
	PublicBaseURL      string        `env:"STORAGE_PUBLIC_BASE_URL" env-default:""`
	GCSCredentialsFile string        `env:"STORAGE_GCS_CREDENTIALS_FILE" env-default:""`
	GCSProjectID       string        `env:"STORAGE_GCS_PROJECT_ID" env-default:""`
	Timeout            time.Duration `env:"STORAGE_TIMEOUT" env-default:"15s"`
}

func (c StorageConfig) Configured() bool {
	return c.Provider != ""
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST" env-default:"" env-description:"empty host logs verification links instead of sending"`
	Port     int    `env:"SMTP_PORT" env-default:"587"`
	User     string `env:"SMTP_USER" env-default:""`
	Pass     string `env:"SMTP_PASS" env-default:""`
	From     string `env:"SMTP_FROM" env-default:"noreply@example.com"`
	FromName string `env:"SMTP_FROM_NAME" env-default:""`
}

func (c SMTPConfig) Configured() bool {
	return c.Host != ""
}

type EmailConfig struct {
	Async   bool   `env:"EMAIL_ASYNC" env-default:"false" env-description:"deliver verification emails through the redis-backed queue"`
	Subject string `env:"EMAIL_VERIFICATION_SUBJECT" env-default:"Verify your email address"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
}

func (c Cache) Configured() bool {
	if c.Redis.Address != "" {
		return true
	}
	for _, addr := range c.RedisCluster.Addresses {
		if strings.TrimSpace(addr) != "" {
			return true
		}
	}
	return false
}

func Load() (*Config, error) {
	if env := os.Getenv("ENV"); env == "" || env == "development" {
		// a missing .env is fine, real environments set variables directly
		_ = godotenv.Load()
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config from environment: %w", err)
	}

	if cfg.Email.Async && !cfg.Cache.Configured() {
		return nil, fmt.Errorf("EMAIL_ASYNC requires REDIS_ADDR or REDIS_CLUSTER_ADDRS")
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return cfg
}
