//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/octa-app/fengshui-backend/internal/bootstrap"
	"github.com/octa-app/fengshui-backend/internal/domain/analysis"
	"github.com/octa-app/fengshui-backend/internal/domain/auth"
	"github.com/octa-app/fengshui-backend/internal/domain/profile"
	"github.com/octa-app/fengshui-backend/internal/infra/config"
	"github.com/octa-app/fengshui-backend/internal/infra/llm/chatgpt"
	httpiface "github.com/octa-app/fengshui-backend/internal/interface/http"
	"github.com/octa-app/fengshui-backend/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideAnalysisConfig,
		provideMaxImageBytes,
		provideChatGPTClient,
		provideOIDCVerifier,
		provideCalculator,
		provideGeocoder,
		provideAuthRepository,
		provideProfileRepository,
		provideReportStore,
		provideMediaStorage,
		auth.NewService,
		profile.NewService,
		analysis.NewService,
		wire.Bind(new(analysis.ProfileSource), new(profile.Service)),
		wire.Bind(new(analysis.VisionClient), new(*chatgpt.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
