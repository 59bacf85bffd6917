package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubRepo struct {
	profiles map[string]Profile
	failWith error
}

func newStubRepo() *stubRepo {
	return &stubRepo{profiles: map[string]Profile{}}
}

func (r *stubRepo) Create(_ context.Context, p Profile) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.profiles[p.ID] = p
	return nil
}

func (r *stubRepo) ListByUser(_ context.Context, userID string) ([]Profile, error) {
	var out []Profile
	for _, p := range r.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) Get(_ context.Context, profileID string) (Profile, bool, error) {
	p, ok := r.profiles[profileID]
	return p, ok, nil
}

func (r *stubRepo) Update(_ context.Context, p Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *stubRepo) Delete(_ context.Context, profileID string) error {
	delete(r.profiles, profileID)
	return nil
}

type stubGeocoder struct {
	location Location
	err      error
	lastName string
}

func (g *stubGeocoder) Geocode(_ context.Context, place string) (Location, error) {
	g.lastName = place
	if g.err != nil {
		return Location{}, g.err
	}
	return g.location, nil
}

func newTestService(repo *stubRepo, geo *stubGeocoder) Service {
	return NewService(bazi.NewCalculator(), repo, geo, newTestLogger())
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:          "Li Wei",
		Gender:        GenderMale,
		BirthDate:     "1990-05-15",
		BirthTime:     "14:30",
		BirthLocation: "Beijing",
		Timezone:      "Asia/Shanghai",
	}
}

func TestCreateComputesChartAndReadings(t *testing.T) {
	repo := newStubRepo()
	geo := &stubGeocoder{location: Location{Longitude: 116.4, Latitude: 39.9, PlaceName: "Beijing, China"}}
	svc := newTestService(repo, geo)

	p, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(p.ID, "bazi_"))
	require.Equal(t, "user-1", p.UserID)
	require.Equal(t, "Beijing, China", p.BirthLocation)
	require.Equal(t, "Beijing", geo.lastName)
	require.InDelta(t, 116.4, p.Longitude, 0.001)

	require.Equal(t, "庚", p.Chart.DayPillar.Stem)
	require.Equal(t, "辰", p.Chart.DayPillar.Branch)
	require.Equal(t, "未", p.Chart.HourPillar.Branch)
	require.Equal(t, bazi.StrengthStrong, p.Strength.Label)
	require.Equal(t, []string{bazi.ElementWood, bazi.ElementWater}, p.LuckyElements)
	require.Equal(t, []string{"east", "southeast", "north"}, p.LuckyDirections)
	require.NotEmpty(t, p.LuckyColors)
	require.True(t, p.IsActive)

	stored, found, err := repo.Get(context.Background(), p.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, p.ID, stored.ID)
}

func TestCreateWithoutBirthTimeOmitsHourPillar(t *testing.T) {
	repo := newStubRepo()
	geo := &stubGeocoder{location: Location{Longitude: 116.4}}
	svc := newTestService(repo, geo)

	req := validCreateRequest()
	req.BirthTime = ""
	p, err := svc.Create(context.Background(), "user-1", req)
	require.NoError(t, err)
	require.True(t, p.Chart.HourPillar.IsZero())
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubGeocoder{})

	tests := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"unknown gender", func(r *CreateRequest) { r.Gender = "unknown" }},
		{"empty location", func(r *CreateRequest) { r.BirthLocation = "  " }},
		{"future birth date", func(r *CreateRequest) { r.BirthDate = "2999-01-01" }},
		{"before 1900", func(r *CreateRequest) { r.BirthDate = "1899-12-31" }},
		{"bad date layout", func(r *CreateRequest) { r.BirthDate = "15/05/1990" }},
		{"bad time layout", func(r *CreateRequest) { r.BirthTime = "2 pm" }},
		{"name too long", func(r *CreateRequest) { r.Name = strings.Repeat("x", 101) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)
			_, err := svc.Create(context.Background(), "user-1", req)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, "invalid_input"))
		})
	}
}

func TestCreateGeocodeFailure(t *testing.T) {
	svc := newTestService(newStubRepo(), &stubGeocoder{err: errors.New("upstream down")})

	_, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "geocode_error"))
}

func TestGetEnforcesOwnership(t *testing.T) {
	repo := newStubRepo()
	geo := &stubGeocoder{location: Location{Longitude: 116.4}}
	svc := newTestService(repo, geo)

	p, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), "user-1", p.ID)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)

	_, err = svc.Get(context.Background(), "user-2", p.ID)
	require.True(t, apperrors.IsCode(err, "profile_not_found"))

	_, err = svc.Get(context.Background(), "user-1", "bazi_missing")
	require.True(t, apperrors.IsCode(err, "profile_not_found"))
}

func TestUpdateMutatesAllowedFields(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubGeocoder{location: Location{Longitude: 116.4}})

	p, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	name := "New Name"
	inactive := false
	updated, err := svc.Update(context.Background(), "user-1", p.ID, UpdateRequest{
		Name:     &name,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)
	require.False(t, updated.IsActive)
	// The chart is immutable through updates.
	require.Equal(t, p.Chart, updated.Chart)
}

func TestDeleteRemovesProfile(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubGeocoder{location: Location{Longitude: 116.4}})

	p, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "user-1", p.ID))
	_, err = svc.Get(context.Background(), "user-1", p.ID)
	require.True(t, apperrors.IsCode(err, "profile_not_found"))

	// Deleting someone else's profile is a not-found, not a silent success.
	p2, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)
	err = svc.Delete(context.Background(), "user-2", p2.ID)
	require.True(t, apperrors.IsCode(err, "profile_not_found"))
}

func TestListReturnsOnlyOwnProfiles(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo, &stubGeocoder{location: Location{Longitude: 116.4}})

	_, err := svc.Create(context.Background(), "user-1", validCreateRequest())
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "user-2", validCreateRequest())
	require.NoError(t, err)

	profiles, err := svc.List(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Equal(t, "user-1", profiles[0].UserID)
}
