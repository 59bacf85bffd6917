package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/octa-app/fengshui-backend/internal/domain/analysis"
	"github.com/octa-app/fengshui-backend/internal/domain/auth"
	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
	"github.com/octa-app/fengshui-backend/internal/domain/profile"
	"github.com/octa-app/fengshui-backend/internal/infra/config"
	"github.com/octa-app/fengshui-backend/internal/infra/geocoder"
	"github.com/octa-app/fengshui-backend/internal/infra/llm/chatgpt"
	"github.com/octa-app/fengshui-backend/internal/infra/media"
	"github.com/octa-app/fengshui-backend/internal/infra/profilerepo"
	"github.com/octa-app/fengshui-backend/internal/infra/reportstore"
	"github.com/octa-app/fengshui-backend/internal/infra/solarterm"
	"github.com/octa-app/fengshui-backend/internal/infra/userrepo"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:          cfg.Auth.JWTSecret,
		TokenTTL:        cfg.Auth.AccessTokenTTL,
		RefreshTokenTTL: cfg.Auth.RefreshTokenTTL,
	}
}

func provideAnalysisConfig(cfg *config.Config) analysis.Config {
	return analysis.Config{
		Model:           cfg.LLM.VisionModel,
		Temperature:     cfg.LLM.Temperature,
		DefaultLanguage: cfg.Analysis.DefaultLanguage,
	}
}

func provideMaxImageBytes(cfg *config.Config) int64 {
	return cfg.Analysis.MaxImageBytes
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideOIDCVerifier(cfg *config.Config, logger *slog.Logger) auth.IDTokenVerifier {
	if !cfg.Auth.OIDC.Enabled {
		logger.Info("oidc disabled, oauth login unavailable")
		return nil
	}
	logger.Info("oidc verifier enabled", "issuer", cfg.Auth.OIDC.Issuer)
	return auth.NewOIDCVerifier(cfg.Auth.OIDC.Issuer, cfg.Auth.OIDC.ClientID)
}

func provideCalculator(cfg *config.Config, logger *slog.Logger) *bazi.Calculator {
	path := strings.TrimSpace(cfg.SolarTerms.TablePath)
	if path == "" {
		return bazi.NewCalculator()
	}
	src, err := solarterm.Load(path)
	if err != nil {
		logger.Error("failed to load solar term table, using approximation", "path", path, "error", err)
		return bazi.NewCalculator()
	}
	logger.Info("solar term table loaded", "path", path)
	return bazi.NewCalculator(bazi.WithTermSource(src))
}

func provideGeocoder(cfg *config.Config, logger *slog.Logger) profile.Geocoder {
	if strings.TrimSpace(cfg.Geocoding.AccessToken) == "" {
		logger.Info("geocoding token not set, using builtin place table")
		return geocoder.NewStaticGeocoder()
	}
	return geocoder.NewMapboxClient(cfg.Geocoding.BaseURL, cfg.Geocoding.AccessToken)
}

func provideAuthRepository(cfg *config.Config, logger *slog.Logger) auth.Repository {
	pool := newPostgresPool(cfg.Auth.Postgres, logger, "auth")
	if pool == nil {
		return userrepo.NewMemoryRepository()
	}
	return userrepo.NewPostgresRepository(pool)
}

func provideProfileRepository(cfg *config.Config, logger *slog.Logger) profile.Repository {
	pool := newPostgresPool(cfg.Profiles.Postgres, logger, "profiles")
	if pool == nil {
		return profilerepo.NewMemoryRepository()
	}
	return profilerepo.NewPostgresRepository(pool)
}

func provideReportStore(cfg *config.Config, logger *slog.Logger) analysis.ReportStore {
	if cfg.Reports.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg.Reports.Valkey.Addr)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return reportstore.NewMemoryStore(cfg.Reports.CacheTTL)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return reportstore.NewMemoryStore(cfg.Reports.CacheTTL)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("report valkey store enabled", "addr", cfg.Reports.Valkey.Addr)
			return reportstore.NewValkeyStore(client, "report", cfg.Reports.CacheTTL)
		}
	}
	return reportstore.NewMemoryStore(cfg.Reports.CacheTTL)
}

func provideMediaStorage(cfg *config.Config, logger *slog.Logger) media.Storage {
	if strings.TrimSpace(cfg.Media.Endpoint) == "" {
		logger.Info("media endpoint not set, using memory storage")
		return media.NewMemoryStorage()
	}
	storage, err := media.NewMinioStorage(cfg.Media.Endpoint, cfg.Media.AccessKey, cfg.Media.SecretKey, cfg.Media.Bucket, cfg.Media.UseSSL, logger)
	if err != nil {
		logger.Error("failed to initialize media storage, using memory storage", "error", err)
		return media.NewMemoryStorage()
	}
	logger.Info("media storage enabled", "endpoint", cfg.Media.Endpoint, "bucket", cfg.Media.Bucket)
	return storage
}

func newPostgresPool(pg config.PostgresConfig, logger *slog.Logger, name string) *pgxpool.Pool {
	dsn := strings.TrimSpace(pg.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repository", "repo", name)
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "repo", name, "error", err)
		return nil
	}
	if pg.MaxConns > 0 {
		poolConfig.MaxConns = pg.MaxConns
	}
	if pg.MinConns > 0 {
		poolConfig.MinConns = pg.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "repo", name, "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "repo", name, "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres repository enabled", "repo", name)
	return pool
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
