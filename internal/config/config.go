package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Storage struct {
		Type      string `yaml:"type"`       // database, s3
		BaseURL   string `yaml:"base_url"`   // public URL base for served files
		Bucket    string `yaml:"bucket"`     // for s3
		Region    string `yaml:"region"`     // for s3
		AccessKey string `yaml:"access_key"` // for s3
		SecretKey string `yaml:"secret_key"` // for s3
		Endpoint  string `yaml:"endpoint"`   // for s3-compatible providers
		UseSSL    bool   `yaml:"use_ssl"`
	} `yaml:"storage"`

	Upload struct {
		MaxImageSize    int64 `yaml:"max_image_size"`    // bytes
		MaxDocumentSize int64 `yaml:"max_document_size"` // bytes
	} `yaml:"upload"`

	Cache struct {
		Type       string `yaml:"type"` // memory, redis
		Addr       string `yaml:"addr"`
		Password   string `yaml:"password"`
		DB         int    `yaml:"db"`
		TTLSeconds int    `yaml:"ttl_seconds"`
	} `yaml:"cache"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		NotifyEmail  string `yaml:"notify_email"` // contact form recipient
		Enabled      bool   `yaml:"enabled"`
	} `yaml:"email"`

	// Seeded on startup so a fresh deployment has an admin account.
	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml, or falls back to environment variables
// when DATABASE_URL is set (test and container deployments).
func LoadConfig() {
	var cfg Config

	// .env is optional; real env vars win over file contents.
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("failed to parse config file at %s: %v", configPath, err)
		}

		cfg.FirstAdminEmail = envOr("FIRST_ADMIN_EMAIL", cfg.FirstAdminEmail)
		cfg.FirstAdminPassword = envOr("FIRST_ADMIN_PASSWORD", cfg.FirstAdminPassword)

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Storage.Type = envOr("STORAGE_TYPE", "database")
	cfg.Storage.BaseURL = envOr("STORAGE_BASE_URL", "/images")
	cfg.Storage.Bucket = os.Getenv("S3_BUCKET")
	cfg.Storage.Region = os.Getenv("S3_REGION")
	cfg.Storage.AccessKey = os.Getenv("S3_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("S3_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("S3_ENDPOINT")

	cfg.Cache.Type = envOr("CACHE_TYPE", "memory")
	cfg.Cache.Addr = os.Getenv("REDIS_ADDR")
	cfg.Cache.Password = os.Getenv("REDIS_PASSWORD")

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "database"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/images"
	}
	if cfg.Upload.MaxImageSize == 0 {
		cfg.Upload.MaxImageSize = 5 * 1024 * 1024
	}
	if cfg.Upload.MaxDocumentSize == 0 {
		cfg.Upload.MaxDocumentSize = 10 * 1024 * 1024
	}
	if cfg.Cache.Type == "" {
		cfg.Cache.Type = "memory"
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = 600
	}
	if cfg.JWT.TTL == 0 {
		cfg.JWT.TTL = 60
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
