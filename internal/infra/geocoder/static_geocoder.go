package geocoder

import (
	"context"
	"fmt"
	"strings"

	"github.com/octa-app/fengshui-backend/internal/domain/profile"
	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

// StaticGeocoder resolves a small set of well-known cities without any
// network access. Used when no geocoding token is configured.
type StaticGeocoder struct {
	places map[string]profile.Location
}

// NewStaticGeocoder builds the offline geocoder.
func NewStaticGeocoder() *StaticGeocoder {
	g := &StaticGeocoder{places: make(map[string]profile.Location)}
	add := func(loc profile.Location, names ...string) {
		for _, name := range names {
			g.places[strings.ToLower(name)] = loc
		}
	}
	add(profile.Location{Longitude: 116.4074, Latitude: 39.9042, PlaceName: "Beijing, China"}, "beijing", "北京")
	add(profile.Location{Longitude: 121.4737, Latitude: 31.2304, PlaceName: "Shanghai, China"}, "shanghai", "上海")
	add(profile.Location{Longitude: 113.2644, Latitude: 23.1291, PlaceName: "Guangzhou, China"}, "guangzhou", "广州")
	add(profile.Location{Longitude: 114.0579, Latitude: 22.5431, PlaceName: "Shenzhen, China"}, "shenzhen", "深圳")
	add(profile.Location{Longitude: 104.0665, Latitude: 30.5723, PlaceName: "Chengdu, China"}, "chengdu", "成都")
	add(profile.Location{Longitude: 108.9402, Latitude: 34.3416, PlaceName: "Xi'an, China"}, "xi'an", "xian", "西安")
	add(profile.Location{Longitude: 114.1694, Latitude: 22.3193, PlaceName: "Hong Kong"}, "hong kong", "香港")
	add(profile.Location{Longitude: 121.5654, Latitude: 25.0330, PlaceName: "Taipei, Taiwan"}, "taipei", "台北")
	add(profile.Location{Longitude: 103.8198, Latitude: 1.3521, PlaceName: "Singapore"}, "singapore", "新加坡")
	add(profile.Location{Longitude: 139.6503, Latitude: 35.6762, PlaceName: "Tokyo, Japan"}, "tokyo", "东京")
	add(profile.Location{Longitude: -74.0060, Latitude: 40.7128, PlaceName: "New York, United States"}, "new york", "纽约")
	add(profile.Location{Longitude: -122.4194, Latitude: 37.7749, PlaceName: "San Francisco, United States"}, "san francisco", "旧金山")
	add(profile.Location{Longitude: -0.1276, Latitude: 51.5072, PlaceName: "London, United Kingdom"}, "london", "伦敦")
	add(profile.Location{Longitude: 151.2093, Latitude: -33.8688, PlaceName: "Sydney, Australia"}, "sydney", "悉尼")
	return g
}

// Geocode looks the place up in the builtin table.
func (g *StaticGeocoder) Geocode(_ context.Context, place string) (profile.Location, error) {
	query := strings.ToLower(strings.TrimSpace(place))
	if query == "" {
		return profile.Location{}, apperrors.Wrap("invalid_input", "place cannot be empty", nil)
	}
	if loc, ok := g.places[query]; ok {
		return loc, nil
	}
	// Accept forms like "Beijing, China" against the bare city key.
	for key, loc := range g.places {
		if strings.HasPrefix(query, key+",") || strings.HasPrefix(query, key+" ") {
			return loc, nil
		}
	}
	return profile.Location{}, apperrors.Wrap("geocode_error", fmt.Sprintf("unknown place %q", place), nil)
}

var _ profile.Geocoder = (*StaticGeocoder)(nil)
