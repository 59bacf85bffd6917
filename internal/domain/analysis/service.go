package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
	"github.com/octa-app/fengshui-backend/internal/domain/profile"
	"github.com/octa-app/fengshui-backend/internal/infra/llm/chatgpt"
	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
	"github.com/octa-app/fengshui-backend/pkg/metrics"
)

// Service exposes scene-dispatched feng-shui analysis.
type Service interface {
	Analyze(ctx context.Context, userID string, req Request) (Report, error)
	Get(ctx context.Context, userID, reportID string) (Report, error)
	List(ctx context.Context, userID string) ([]Report, error)
}

// ProfileSource loads a user's natal profile for prompt construction.
type ProfileSource interface {
	Get(ctx context.Context, userID, profileID string) (profile.Profile, error)
}

// VisionClient sends multimodal chat completions.
type VisionClient interface {
	CreateVisionCompletion(ctx context.Context, req chatgpt.VisionCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

type service struct {
	cfg      Config
	profiles ProfileSource
	client   VisionClient
	store    ReportStore
	logger   *slog.Logger
	tokens   *tokenCounter
}

// NewService wires up the analysis domain.
func NewService(cfg Config, profiles ProfileSource, client VisionClient, store ReportStore, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		profiles: profiles,
		client:   client,
		store:    store,
		logger:   logger.With("component", "analysis.service"),
		tokens:   newTokenCounter(),
	}
}

func (s *service) Analyze(ctx context.Context, userID string, req Request) (Report, error) {
	if strings.TrimSpace(req.ProfileID) == "" {
		return Report{}, apperrors.Wrap("invalid_input", "profile id cannot be empty", nil)
	}

	scene := req.SceneType
	if scene == "" {
		scene = SceneWorkspace
	}
	urls := req.ImageURLs
	if len(urls) == 0 && strings.TrimSpace(req.ImageURL) != "" {
		urls = []string{req.ImageURL}
	}

	switch scene {
	case SceneWorkspace, SceneFloorplan:
		if len(urls) == 0 {
			return Report{}, apperrors.Wrap("invalid_input", "image url cannot be empty", nil)
		}
	case SceneLookaround8:
		if len(urls) != lookaroundImageCount {
			msg := fmt.Sprintf("lookaround8 requires exactly %d images, got %d", lookaroundImageCount, len(urls))
			return Report{}, apperrors.Wrap("invalid_input", msg, nil)
		}
	default:
		return Report{}, apperrors.Wrap("invalid_input", "unsupported scene type "+string(scene), nil)
	}

	language := s.sanitizeLanguage(req.Language)

	p, err := s.profiles.Get(ctx, userID, req.ProfileID)
	if err != nil {
		return Report{}, err
	}

	var report Report
	switch scene {
	case SceneFloorplan:
		report = s.analyzeFloorplan(p, language)
	case SceneLookaround8:
		report = s.analyzeLookaround(p, language)
	default:
		report, err = s.analyzeWorkspace(ctx, p, urls[0], language)
		if err != nil {
			return Report{}, err
		}
	}
	report.UserID = userID

	if err := s.store.Save(ctx, report); err != nil {
		return Report{}, apperrors.Wrap("analysis_error", "could not persist report", err)
	}

	s.logger.Info("analysis completed",
		"report_id", report.ID,
		"scene_type", string(report.SceneType),
		"profile_id", p.ID,
		"overall_score", report.OverallScore,
		"prompt_tokens", report.TokenUsage.PromptTokens,
	)
	return report, nil
}

func (s *service) analyzeWorkspace(ctx context.Context, p profile.Profile, imageURL, language string) (Report, error) {
	start := time.Now()
	prompt := buildAnalysisPrompt(p, language)

	resp, err := s.client.CreateVisionCompletion(ctx, chatgpt.VisionCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatgpt.VisionMessage{
			{
				Role:    "system",
				Content: []chatgpt.ContentPart{{Type: "text", Text: systemPrompt(language)}},
			},
			{
				Role: "user",
				Content: []chatgpt.ContentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &chatgpt.ImageURL{URL: imageURL}},
				},
			},
		},
		Temperature:    s.cfg.Temperature,
		ResponseFormat: &chatgpt.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return Report{}, apperrors.Wrap("analysis_error", "vision completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return Report{}, apperrors.Wrap("analysis_error", "model returned no choices", nil)
	}

	reply, err := parseModelReply(resp.Choices[0].Message.Content)
	if err != nil {
		return Report{}, apperrors.Wrap("analysis_error", "model reply was not valid JSON", err)
	}

	usage := metrics.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	if usage.IsZero() {
		n := s.tokens.Count(prompt)
		usage = metrics.TokenUsage{PromptTokens: n, TotalTokens: n}
	}

	report := Report{
		ID:        "result_" + uuid.NewString(),
		ProfileID: p.ID,
		SceneType: SceneWorkspace,
		Language:  language,

		OverallScore:    clampScore(reply.OverallScore),
		Summary:         reply.Summary,
		DeskPosition:    reply.DeskPosition,
		ElementBalance:  reply.ElementBalance,
		EnergyFlow:      reply.EnergyFlow,
		Recommendations: reply.Recommendations,

		LuckyElements:   p.LuckyElements,
		UnluckyElements: p.UnluckyElements,
		SuggestedColors: bazi.LuckyColors(p.LuckyElements),
		SuggestedItems:  suggestedItems(p.LuckyElements),

		TokenUsage: usage,
		CreatedAt:  time.Now().UTC(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	return report, nil
}

func (s *service) Get(ctx context.Context, userID, reportID string) (Report, error) {
	report, found, err := s.store.Get(ctx, reportID)
	if err != nil {
		return Report{}, apperrors.Wrap("analysis_error", "could not load report", err)
	}
	if !found || report.UserID != userID {
		return Report{}, apperrors.Wrap("report_not_found", "report not found", nil)
	}
	return report, nil
}

func (s *service) List(ctx context.Context, userID string) ([]Report, error) {
	reports, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("analysis_error", "could not list reports", err)
	}
	return reports, nil
}

func (s *service) sanitizeLanguage(language string) string {
	switch language {
	case LanguageZH, LanguageEN:
		return language
	case "":
		if s.cfg.DefaultLanguage != "" {
			return s.cfg.DefaultLanguage
		}
		return LanguageZH
	default:
		return LanguageZH
	}
}

// parseModelReply tolerates markdown code fences around the JSON body but is
// otherwise strict.
func parseModelReply(content string) (modelReply, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var reply modelReply
	if err := json.Unmarshal([]byte(trimmed), &reply); err != nil {
		return modelReply{}, err
	}
	return reply, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
