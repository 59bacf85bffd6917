package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/octa-app/fengshui-backend/internal/domain/profile"
	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

const defaultBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxClient resolves place names through the Mapbox forward-geocoding API.
type MapboxClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewMapboxClient builds an API client.
func NewMapboxClient(baseURL, accessToken string) *MapboxClient {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &MapboxClient{
		baseURL:     strings.TrimRight(base, "/"),
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Geocode resolves a free-form place to coordinates, taking the highest
// relevance match.
func (c *MapboxClient) Geocode(ctx context.Context, place string) (profile.Location, error) {
	query := strings.TrimSpace(place)
	if query == "" {
		return profile.Location{}, apperrors.Wrap("invalid_input", "place cannot be empty", nil)
	}

	endpoint := fmt.Sprintf("%s/%s.json?access_token=%s&limit=1&types=place,locality,region",
		c.baseURL, url.PathEscape(query), url.QueryEscape(c.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return profile.Location{}, fmt.Errorf("build geocoding request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return profile.Location{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return profile.Location{}, fmt.Errorf("geocoding request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return profile.Location{}, fmt.Errorf("read geocoding response: %w", err)
	}

	var raw featureCollection
	if err := json.Unmarshal(body, &raw); err != nil {
		return profile.Location{}, fmt.Errorf("decode geocoding response: %w", err)
	}
	if len(raw.Features) == 0 {
		return profile.Location{}, apperrors.Wrap("geocode_error", fmt.Sprintf("no match for %q", query), nil)
	}

	feature := raw.Features[0]
	if len(feature.Center) < 2 {
		return profile.Location{}, apperrors.Wrap("geocode_error", "malformed geocoding feature", nil)
	}
	return profile.Location{
		Longitude: feature.Center[0],
		Latitude:  feature.Center[1],
		PlaceName: feature.PlaceName,
	}, nil
}

var _ profile.Geocoder = (*MapboxClient)(nil)

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
	Relevance float64   `json:"relevance"`
}
