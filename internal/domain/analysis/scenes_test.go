package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

func eightImages() []string {
	urls := make([]string, 0, 8)
	for _, dir := range lookaroundDirections {
		urls = append(urls, "https://cdn.example.com/"+strings.ToLower(dir)+".jpg")
	}
	return urls
}

func TestAnalyzeDefaultsToWorkspaceScene(t *testing.T) {
	vision := &stubVision{content: validReply}
	svc := NewService(baseConfig(), &stubProfiles{profile: testProfile(t)}, vision, newStubStore(), newTestLogger())

	report, err := svc.Analyze(context.Background(), "user-1", Request{ProfileID: "bazi_test", ImageURL: "https://x/y.jpg"})
	require.NoError(t, err)
	require.Equal(t, SceneWorkspace, report.SceneType)
	require.NotEmpty(t, vision.lastReq.Messages)
}

func TestAnalyzeFloorplanScene(t *testing.T) {
	store := newStubStore()
	// A failing vision stub proves the floorplan pipeline never calls the model.
	vision := &stubVision{err: errors.New("must not be called")}
	svc := NewService(baseConfig(), &stubProfiles{profile: testProfile(t)}, vision, store, newTestLogger())

	report, err := svc.Analyze(context.Background(), "user-1", Request{
		ProfileID: "bazi_test",
		SceneType: SceneFloorplan,
		ImageURL:  "https://cdn.example.com/plan.png",
		Language:  LanguageEN,
	})
	require.NoError(t, err)

	require.Equal(t, SceneFloorplan, report.SceneType)
	require.Equal(t, 0, report.OverallScore)
	require.Contains(t, report.Summary, "coming soon")
	require.Len(t, report.KeyFindings, 3)
	require.Len(t, report.Recommendations, 3)
	require.Equal(t, "layout", report.Recommendations[0].Category)

	stored, found, err := store.Get(context.Background(), report.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "user-1", stored.UserID)
}

func TestAnalyzeLookaroundScene(t *testing.T) {
	store := newStubStore()
	vision := &stubVision{err: errors.New("must not be called")}
	svc := NewService(baseConfig(), &stubProfiles{profile: testProfile(t)}, vision, store, newTestLogger())

	report, err := svc.Analyze(context.Background(), "user-1", Request{
		ProfileID: "bazi_test",
		SceneType: SceneLookaround8,
		ImageURLs: eightImages(),
	})
	require.NoError(t, err)

	require.Equal(t, SceneLookaround8, report.SceneType)
	require.Equal(t, LanguageZH, report.Language)
	require.Len(t, report.KeyFindings, 8)
	require.Contains(t, report.KeyFindings[0], "北")
	require.Contains(t, report.KeyFindings[7], "西北")
	require.Len(t, report.Recommendations, 3)

	got, err := svc.Get(context.Background(), "user-1", report.ID)
	require.NoError(t, err)
	require.Equal(t, report.ID, got.ID)
}

func TestAnalyzeLookaroundRequiresEightImages(t *testing.T) {
	svc := NewService(baseConfig(), &stubProfiles{profile: testProfile(t)}, &stubVision{content: validReply}, newStubStore(), newTestLogger())

	_, err := svc.Analyze(context.Background(), "user-1", Request{
		ProfileID: "bazi_test",
		SceneType: SceneLookaround8,
		ImageURLs: eightImages()[:3],
	})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.Analyze(context.Background(), "user-1", Request{
		ProfileID: "bazi_test",
		SceneType: SceneLookaround8,
	})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestAnalyzeRejectsUnknownScene(t *testing.T) {
	svc := NewService(baseConfig(), &stubProfiles{profile: testProfile(t)}, &stubVision{content: validReply}, newStubStore(), newTestLogger())

	_, err := svc.Analyze(context.Background(), "user-1", Request{
		ProfileID: "bazi_test",
		SceneType: "garden",
		ImageURL:  "https://x/y.jpg",
	})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestDirectionElementsCoverAllDirections(t *testing.T) {
	for _, dir := range lookaroundDirections {
		elem, ok := directionElements[dir]
		require.True(t, ok, "direction %s", dir)
		require.Contains(t, []string{"wood", "fire", "earth", "metal", "water"}, elem)
	}
	// Ba Gua fixed points.
	require.Equal(t, "water", directionElements["N"])
	require.Equal(t, "fire", directionElements["S"])
	require.Equal(t, "wood", directionElements["E"])
	require.Equal(t, "metal", directionElements["W"])
}
