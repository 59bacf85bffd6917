package profile

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
	apperrors "github.com/octa-app/fengshui-backend/pkg/errors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	minBirthYear = 1900
	maxNameLen   = 100
)

// Service exposes natal profile management.
type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (Profile, error)
	List(ctx context.Context, userID string) ([]Profile, error)
	Get(ctx context.Context, userID, profileID string) (Profile, error)
	Update(ctx context.Context, userID, profileID string, req UpdateRequest) (Profile, error)
	Delete(ctx context.Context, userID, profileID string) error
}

type service struct {
	calc     *bazi.Calculator
	repo     Repository
	geocoder Geocoder
	logger   *slog.Logger
}

// NewService wires up the profile domain.
func NewService(calc *bazi.Calculator, repo Repository, geocoder Geocoder, logger *slog.Logger) Service {
	return &service{
		calc:     calc,
		repo:     repo,
		geocoder: geocoder,
		logger:   logger.With("component", "profile.service"),
	}
}

func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (Profile, error) {
	birthDate, birthTime, err := validateCreate(req)
	if err != nil {
		return Profile{}, err
	}

	loc, err := s.geocoder.Geocode(ctx, strings.TrimSpace(req.BirthLocation))
	if err != nil {
		return Profile{}, apperrors.Wrap("geocode_error", "could not resolve birth location", err)
	}

	input := bazi.BirthInput{
		Year:      birthDate.Year(),
		Month:     int(birthDate.Month()),
		Day:       birthDate.Day(),
		Timezone:  req.Timezone,
		Longitude: &loc.Longitude,
	}
	if birthTime != nil {
		hour, minute := birthTime.Hour(), birthTime.Minute()
		input.Hour = &hour
		input.Minute = &minute
	}

	chart, err := s.calc.Compute(input)
	if err != nil {
		return Profile{}, err
	}
	strength := bazi.EvaluateStrength(chart)
	lucky := bazi.AnalyzeLuckyElements(chart, strength)

	now := time.Now().UTC()
	p := Profile{
		ID:            "bazi_" + uuid.NewString(),
		UserID:        userID,
		Name:          strings.TrimSpace(req.Name),
		Gender:        req.Gender,
		BirthDate:     req.BirthDate,
		BirthTime:     req.BirthTime,
		BirthLocation: loc.PlaceName,
		Longitude:     loc.Longitude,

		Chart:           chart,
		Strength:        strength,
		LuckyElements:   lucky.Favorable,
		UnluckyElements: lucky.Unfavorable,
		LuckyDirections: bazi.LuckyDirections(lucky.Favorable),
		LuckyColors:     bazi.LuckyColors(lucky.Favorable),

		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if p.BirthLocation == "" {
		p.BirthLocation = strings.TrimSpace(req.BirthLocation)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, apperrors.Wrap("profile_error", "could not persist profile", err)
	}

	s.logger.Info("profile created", "profile_id", p.ID, "day_master", chart.DayMaster)
	return p, nil
}

func (s *service) List(ctx context.Context, userID string) ([]Profile, error) {
	profiles, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap("profile_error", "could not list profiles", err)
	}
	return profiles, nil
}

func (s *service) Get(ctx context.Context, userID, profileID string) (Profile, error) {
	return s.owned(ctx, userID, profileID)
}

func (s *service) Update(ctx context.Context, userID, profileID string, req UpdateRequest) (Profile, error) {
	p, err := s.owned(ctx, userID, profileID)
	if err != nil {
		return Profile{}, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len([]rune(name)) > maxNameLen {
			return Profile{}, apperrors.Wrap("invalid_input", "name too long", nil)
		}
		p.Name = name
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, apperrors.Wrap("profile_error", "could not update profile", err)
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, userID, profileID string) error {
	if _, err := s.owned(ctx, userID, profileID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, profileID); err != nil {
		return apperrors.Wrap("profile_error", "could not delete profile", err)
	}
	s.logger.Info("profile deleted", "profile_id", profileID)
	return nil
}

// owned loads a profile and enforces ownership. A profile belonging to a
// different user is indistinguishable from a missing one.
func (s *service) owned(ctx context.Context, userID, profileID string) (Profile, error) {
	p, found, err := s.repo.Get(ctx, profileID)
	if err != nil {
		return Profile{}, apperrors.Wrap("profile_error", "could not load profile", err)
	}
	if !found || p.UserID != userID {
		return Profile{}, apperrors.Wrap("profile_not_found", "profile not found", nil)
	}
	return p, nil
}

func validateCreate(req CreateRequest) (time.Time, *time.Time, error) {
	switch req.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return time.Time{}, nil, apperrors.Wrap("invalid_input", "gender must be male, female or other", nil)
	}
	if strings.TrimSpace(req.BirthLocation) == "" {
		return time.Time{}, nil, apperrors.Wrap("invalid_input", "birth location cannot be empty", nil)
	}
	if len([]rune(strings.TrimSpace(req.Name))) > maxNameLen {
		return time.Time{}, nil, apperrors.Wrap("invalid_input", "name too long", nil)
	}

	birthDate, err := time.Parse(dateLayout, req.BirthDate)
	if err != nil {
		return time.Time{}, nil, apperrors.Wrap("invalid_input", "birth date must use the YYYY-MM-DD layout", err)
	}
	if birthDate.Year() < minBirthYear {
		return time.Time{}, nil, apperrors.Wrap("invalid_input", "birth year must be 1900 or later", nil)
	}
	if birthDate.After(time.Now().UTC()) {
		return time.Time{}, nil, apperrors.Wrap("invalid_input", "birth date cannot be in the future", nil)
	}

	if req.BirthTime == "" {
		return birthDate, nil, nil
	}
	birthTime, err := time.Parse(timeLayout, req.BirthTime)
	if err != nil {
		return time.Time{}, nil, apperrors.Wrap("invalid_input", "birth time must use the HH:MM layout", err)
	}
	return birthDate, &birthTime, nil
}
