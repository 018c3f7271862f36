package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"readTimeout"`
		WriteTimeout time.Duration `yaml:"writeTimeout"`
		MaxUploadMB  int64         `yaml:"maxUploadMB"`
	} `yaml:"server"`

	Log struct {
		Mode  string `yaml:"mode"` // dev | prod
		Level string `yaml:"level"`
	} `yaml:"log"`

	Storage struct {
		// Driver: memory | mysql | postgres | redis
		Driver string `yaml:"driver"`
		// KeepHistory records every analysis result (mysql, postgres, memory).
		KeepHistory bool `yaml:"keepHistory"`
	} `yaml:"storage"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
		Migrate  bool   `yaml:"migrate"`
	} `yaml:"database"`

	Redis struct {
		Addr     string        `yaml:"addr"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"redis"`

	Minio struct {
		Enabled    bool          `yaml:"enabled"`
		Endpoint   string        `yaml:"endpoint"`
		AccessKey  string        `yaml:"accessKey"`
		SecretKey  string        `yaml:"secretKey"`
		BucketName string        `yaml:"bucketName"`
		Region     string        `yaml:"region"`
		UseSSL     bool          `yaml:"useSSL"`
		PresignTTL time.Duration `yaml:"presignTTL"`
	} `yaml:"minio"`

	OpenAI struct {
		APIKey  string `yaml:"apiKey"`
		BaseURL string `yaml:"baseURL"`
		// Model overrides every persona's model when set.
		Model        string `yaml:"model"`
		RewriteModel string `yaml:"rewriteModel"`
	} `yaml:"openai"`

	OCR struct {
		// Provider: vision | none
		Provider        string `yaml:"provider"`
		CredentialsFile string `yaml:"credentialsFile"`
	} `yaml:"ocr"`

	Report struct {
		Compress bool   `yaml:"compress"`
		TempDir  string `yaml:"tempDir"`
	} `yaml:"report"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Auth struct {
		// APIKeys maps a client name to its key. Empty disables auth.
		APIKeys map[string]string `yaml:"apiKeys"`
	} `yaml:"auth"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`
}

// Load baca file config.yaml, lalu override dari env
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML, applies env overrides and defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_BASE"); v != "" {
		c.OpenAI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		c.OpenAI.Model = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	// completion calls are slow; the core sets no timeout of its own
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 5 * time.Minute
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 20
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "memory"
	}
	if c.OCR.Provider == "" {
		c.OCR.Provider = "none"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 30
	}
	if c.RateLimit.RefillRate == 0 {
		c.RateLimit.RefillRate = 1
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "memory", "mysql", "postgres", "redis":
	default:
		return fmt.Errorf("config: unknown storage.driver %q", c.Storage.Driver)
	}
	switch c.OCR.Provider {
	case "vision", "none":
	default:
		return fmt.Errorf("config: unknown ocr.provider %q", c.OCR.Provider)
	}
	if c.Minio.Enabled && (c.Minio.Endpoint == "" || c.Minio.BucketName == "") {
		return fmt.Errorf("config: minio.endpoint and minio.bucketName are required when minio is enabled")
	}
	return nil
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN builds a lib/pq connection string.
func (c *Config) PostgresDSN() string {
	ssl := c.Database.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		ssl,
	)
}
