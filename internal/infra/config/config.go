package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Auth       AuthConfig       `yaml:"auth"`
	LLM        LLMConfig        `yaml:"llm"`
	Analysis   AnalysisConfig   `yaml:"analysis"`
	Profiles   ProfilesConfig   `yaml:"profiles"`
	Reports    ReportsConfig    `yaml:"reports"`
	Geocoding  GeocodingConfig  `yaml:"geocoding"`
	Media      MediaConfig      `yaml:"media"`
	SolarTerms SolarTermsConfig `yaml:"solarTerms"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// AuthConfig contains password and token settings.
type AuthConfig struct {
	JWTSecret       string         `yaml:"jwtSecret"`
	AccessTokenTTL  time.Duration  `yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration  `yaml:"refreshTokenTtl"`
	OIDC            OIDCConfig     `yaml:"oidc"`
	Postgres        PostgresConfig `yaml:"postgres"`
}

// OIDCConfig verifies third party id_tokens for the OAuth login route.
type OIDCConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Issuer   string `yaml:"issuer"`
	ClientID string `yaml:"clientId"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	VisionModel string  `yaml:"visionModel"`
	Temperature float32 `yaml:"temperature"`
}

// AnalysisConfig controls the analysis domain.
type AnalysisConfig struct {
	DefaultLanguage string `yaml:"defaultLanguage"`
	MaxImageBytes   int64  `yaml:"maxImageBytes"`
}

// ProfilesConfig controls profile persistence.
type ProfilesConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
}

// ReportsConfig controls analysis report storage.
type ReportsConfig struct {
	CacheTTL time.Duration `yaml:"cacheTtl"`
	Valkey   ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for report storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// GeocodingConfig configures the Mapbox forward geocoder.
type GeocodingConfig struct {
	BaseURL     string `yaml:"baseUrl"`
	AccessToken string `yaml:"accessToken"`
}

// MediaConfig configures S3 compatible photo storage.
type MediaConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"useSsl"`
}

// SolarTermsConfig points at an optional precomputed term table file. When
// the path is empty the calculator falls back to its built-in approximation.
type SolarTermsConfig struct {
	TablePath string `yaml:"tablePath"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		cfg.HTTP.AllowedOrigins = origins
	}
	if v := os.Getenv("AUTH_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("AUTH_ACCESS_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.AccessTokenTTL = parsed
		}
	}
	if v := os.Getenv("AUTH_REFRESH_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.RefreshTokenTTL = parsed
		}
	}
	if v := os.Getenv("AUTH_OIDC_ENABLED"); v != "" {
		cfg.Auth.OIDC.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("AUTH_OIDC_ISSUER"); v != "" {
		cfg.Auth.OIDC.Issuer = v
	}
	if v := os.Getenv("AUTH_OIDC_CLIENT_ID"); v != "" {
		cfg.Auth.OIDC.ClientID = v
	}
	if v := os.Getenv("AUTH_POSTGRES_DSN"); v != "" {
		cfg.Auth.Postgres.DSN = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_VISION_MODEL"); v != "" {
		cfg.LLM.VisionModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("ANALYSIS_DEFAULT_LANGUAGE"); v != "" {
		cfg.Analysis.DefaultLanguage = v
	}
	if v := os.Getenv("ANALYSIS_MAX_IMAGE_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Analysis.MaxImageBytes = parsed
		}
	}
	if v := os.Getenv("PROFILES_POSTGRES_DSN"); v != "" {
		cfg.Profiles.Postgres.DSN = v
	}
	if v := os.Getenv("PROFILES_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Profiles.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("PROFILES_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Profiles.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("REPORTS_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Reports.CacheTTL = parsed
		}
	}
	if v := os.Getenv("REPORTS_VALKEY_ENABLED"); v != "" {
		cfg.Reports.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("REPORTS_VALKEY_ADDR"); v != "" {
		cfg.Reports.Valkey.Addr = v
	}
	if v := os.Getenv("GEOCODING_BASE_URL"); v != "" {
		cfg.Geocoding.BaseURL = v
	}
	if v := os.Getenv("GEOCODING_ACCESS_TOKEN"); v != "" {
		cfg.Geocoding.AccessToken = v
	}
	if v := os.Getenv("MEDIA_ENDPOINT"); v != "" {
		cfg.Media.Endpoint = v
	}
	if v := os.Getenv("MEDIA_ACCESS_KEY"); v != "" {
		cfg.Media.AccessKey = v
	}
	if v := os.Getenv("MEDIA_SECRET_KEY"); v != "" {
		cfg.Media.SecretKey = v
	}
	if v := os.Getenv("MEDIA_BUCKET"); v != "" {
		cfg.Media.Bucket = v
	}
	if v := os.Getenv("MEDIA_USE_SSL"); v != "" {
		cfg.Media.UseSSL = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("SOLAR_TERMS_TABLE_PATH"); v != "" {
		cfg.SolarTerms.TablePath = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
				Exclude: []string{
					"/api/v1/analysis",
				},
			},
		},
		Auth: AuthConfig{
			JWTSecret:       "dev-secret-change-me",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 30 * 24 * time.Hour,
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			VisionModel: "gpt-4o",
			Temperature: 0.2,
		},
		Analysis: AnalysisConfig{
			DefaultLanguage: "zh",
			MaxImageBytes:   10 << 20,
		},
		Profiles: ProfilesConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
		},
		Reports: ReportsConfig{
			CacheTTL: 30 * 24 * time.Hour,
		},
		Geocoding: GeocodingConfig{
			BaseURL: "https://api.mapbox.com/geocoding/v5/mapbox.places",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwtSecret cannot be empty")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return errors.New("auth.accessTokenTtl must be positive")
	}
	if c.Auth.RefreshTokenTTL <= 0 {
		return errors.New("auth.refreshTokenTtl must be positive")
	}
	if c.Auth.OIDC.Enabled {
		if strings.TrimSpace(c.Auth.OIDC.Issuer) == "" {
			return errors.New("auth.oidc.issuer cannot be empty when oidc is enabled")
		}
		if strings.TrimSpace(c.Auth.OIDC.ClientID) == "" {
			return errors.New("auth.oidc.clientId cannot be empty when oidc is enabled")
		}
	}
	if strings.TrimSpace(c.LLM.VisionModel) == "" {
		return errors.New("llm.visionModel cannot be empty")
	}
	switch c.Analysis.DefaultLanguage {
	case "zh", "en":
	default:
		return errors.New("analysis.defaultLanguage must be zh or en")
	}
	if c.Analysis.MaxImageBytes <= 0 {
		return errors.New("analysis.maxImageBytes must be positive")
	}
	if c.Reports.CacheTTL < 0 {
		return errors.New("reports.cacheTtl cannot be negative")
	}
	if c.Reports.Valkey.Enabled && strings.TrimSpace(c.Reports.Valkey.Addr) == "" {
		return errors.New("reports.valkey.addr cannot be empty when valkey storage is enabled")
	}
	if c.Geocoding.BaseURL == "" {
		return errors.New("geocoding.baseUrl cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
