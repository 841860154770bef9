// Package config loads the gateway configuration once at startup: an optional
// .env file, an optional YAML file, then environment overrides.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	AuthNone        = "none"
	AuthServiceHTTP = "service_http"
)

type Config struct {
	Server        ServerConfig   `yaml:"server"`
	Redis         RedisConfig    `yaml:"redis"`
	Workflow      UpstreamConfig `yaml:"workflow"`
	ConceptDesign UpstreamConfig `yaml:"conceptDesign"`
	S3            S3Config       `yaml:"s3"`
	Plotly        PlotlyConfig   `yaml:"plotly"`
	Database      DatabaseConfig `yaml:"database"`
	RateLimit     RateConfig     `yaml:"rateLimit"`
}

type ServerConfig struct {
	Port   int        `yaml:"port"`
	AppURL string     `yaml:"appUrl"`
	Auth   AuthConfig `yaml:"auth"`
}

type AuthConfig struct {
	Type        string `yaml:"type"`
	BearerToken string `yaml:"bearerToken"`
	// TokenHash is a bcrypt hash accepted in place of the plain token. The
	// first match costs a full bcrypt compare; later requests with the same
	// token are checked against a cached digest. Wrong tokens always pay the
	// full cost, so keep the rate limiter in front of the guard.
	TokenHash string `yaml:"tokenHash"`
	// JWTKey enables HS256 signed bearer tokens.
	JWTKey string `yaml:"jwtKey"`
}

type RedisConfig struct {
	URL    string `yaml:"url"`
	Prefix string `yaml:"prefix"`
}

// UpstreamConfig describes one backend. Timeout is in seconds, as in the YAML file.
type UpstreamConfig struct {
	BaseURL string `yaml:"baseUrl"`
	APIKey  string `yaml:"apiKey"`
	Bearer  string `yaml:"bearer"`
	Timeout int    `yaml:"timeout"`
}

func (u UpstreamConfig) TimeoutDuration() time.Duration {
	return time.Duration(u.Timeout) * time.Second
}

type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"accessKeyId"`
	SecretAccessKey string `yaml:"secretAccessKey"`
	PublicURL       string `yaml:"publicUrl"`
	Prefix          string `yaml:"prefix"`
}

// Enabled reports whether a bucket and both keys are set.
func (s S3Config) Enabled() bool {
	return s.Bucket != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

type PlotlyConfig struct {
	GridResolution int    `yaml:"gridResolution"`
	ColorScheme    string `yaml:"colorScheme"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type RateConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Port: 3000,
			Auth: AuthConfig{Type: AuthNone},
		},
		Redis:         RedisConfig{Prefix: "monkeys:"},
		Workflow:      UpstreamConfig{Timeout: 900},
		ConceptDesign: UpstreamConfig{Timeout: 900},
		S3:            S3Config{Region: "us-east-1"},
		Plotly:        PlotlyConfig{GridResolution: 50, ColorScheme: "viridis"},
		RateLimit:     RateConfig{RPS: 5, Burst: 10},
	}
}

// Load reads .env (if present), the YAML file at path (if present) and the
// environment, in that order of increasing priority.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case os.IsNotExist(err):
			log.Printf("[config] %s not found, using defaults and environment", path)
		default:
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	if cfg.Server.AppURL == "" {
		cfg.Server.AppURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnvInt("PORT", cfg.Server.Port)
	cfg.Server.AppURL = getEnv("APP_URL", cfg.Server.AppURL)
	cfg.Server.Auth.Type = getEnv("AUTH_TYPE", cfg.Server.Auth.Type)
	cfg.Server.Auth.BearerToken = getEnv("AUTH_BEARER_TOKEN", cfg.Server.Auth.BearerToken)
	cfg.Server.Auth.TokenHash = getEnv("AUTH_TOKEN_HASH", cfg.Server.Auth.TokenHash)
	cfg.Server.Auth.JWTKey = getEnv("TOKEN_KEY", cfg.Server.Auth.JWTKey)

	cfg.Redis.URL = getEnv("REDIS_URL", cfg.Redis.URL)
	cfg.Redis.Prefix = getEnv("REDIS_PREFIX", cfg.Redis.Prefix)

	cfg.Workflow.BaseURL = getEnv("WORKFLOW_BASE_URL", cfg.Workflow.BaseURL)
	cfg.Workflow.APIKey = getEnv("WORKFLOW_API_KEY", cfg.Workflow.APIKey)
	cfg.Workflow.Timeout = getEnvInt("WORKFLOW_TIMEOUT", cfg.Workflow.Timeout)

	cfg.ConceptDesign.BaseURL = getEnv("CONCEPT_DESIGN_BASE_URL", cfg.ConceptDesign.BaseURL)
	cfg.ConceptDesign.Bearer = getEnv("CONCEPT_DESIGN_BEARER", cfg.ConceptDesign.Bearer)
	cfg.ConceptDesign.Timeout = getEnvInt("CONCEPT_DESIGN_TIMEOUT", cfg.ConceptDesign.Timeout)

	cfg.S3.Bucket = getEnv("S3_BUCKET", cfg.S3.Bucket)
	cfg.S3.Region = getEnv("S3_REGION", cfg.S3.Region)
	cfg.S3.Endpoint = getEnv("S3_ENDPOINT", cfg.S3.Endpoint)
	cfg.S3.AccessKeyID = getEnv("S3_ACCESS_KEY_ID", cfg.S3.AccessKeyID)
	cfg.S3.SecretAccessKey = getEnv("S3_SECRET_ACCESS_KEY", cfg.S3.SecretAccessKey)
	cfg.S3.PublicURL = getEnv("S3_PUBLIC_URL", cfg.S3.PublicURL)

	cfg.Plotly.GridResolution = getEnvInt("PLOTLY_GRID_RESOLUTION", cfg.Plotly.GridResolution)
	cfg.Plotly.ColorScheme = getEnv("PLOTLY_COLOR_SCHEME", cfg.Plotly.ColorScheme)

	cfg.Database.URL = getEnv("DATABASE_URL", cfg.Database.URL)

	cfg.RateLimit.RPS = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimit.RPS)
	cfg.RateLimit.Burst = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
}

func (c Config) Validate() error {
	switch c.Server.Auth.Type {
	case AuthNone:
	case AuthServiceHTTP:
		a := c.Server.Auth
		if a.BearerToken == "" && a.TokenHash == "" && a.JWTKey == "" {
			return fmt.Errorf("invalid config: auth.bearerToken must not be empty when auth.type is service_http")
		}
	default:
		return fmt.Errorf("invalid config: unknown auth.type %q", c.Server.Auth.Type)
	}
	if c.Plotly.GridResolution < 10 || c.Plotly.GridResolution > 100 {
		return fmt.Errorf("invalid config: plotly.gridResolution must be within [10, 100], got %d", c.Plotly.GridResolution)
	}
	if strings.TrimSpace(c.Plotly.ColorScheme) == "" {
		return fmt.Errorf("invalid config: plotly.colorScheme must not be empty")
	}
	if c.Workflow.Timeout <= 0 || c.ConceptDesign.Timeout <= 0 {
		return fmt.Errorf("invalid config: upstream timeouts must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: failed to parse %s as int, using default: %v", key, err)
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: failed to parse %s as float, using default: %v", key, err)
		return defaultValue
	}
	return f
}
