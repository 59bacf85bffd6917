package profilerepo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octa-app/fengshui-backend/internal/domain/bazi"
	"github.com/octa-app/fengshui-backend/internal/domain/profile"
)

// PostgresRepository persists profiles in Postgres. The derived chart and
// readings live in a single JSONB column.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

type readingPayload struct {
	Chart           bazi.Chart              `json:"chart"`
	Strength        bazi.StrengthAssessment `json:"strength"`
	LuckyElements   []string                `json:"luckyElements"`
	UnluckyElements []string                `json:"unluckyElements"`
	LuckyDirections []string                `json:"luckyDirections"`
	LuckyColors     []string                `json:"luckyColors"`
}

// Create inserts a new profile row.
func (r *PostgresRepository) Create(ctx context.Context, p profile.Profile) error {
	reading, err := json.Marshal(readingPayload{
		Chart:           p.Chart,
		Strength:        p.Strength,
		LuckyElements:   p.LuckyElements,
		UnluckyElements: p.UnluckyElements,
		LuckyDirections: p.LuckyDirections,
		LuckyColors:     p.LuckyColors,
	})
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO profiles (id, user_id, name, gender, birth_date, birth_time, birth_location, longitude, reading, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, p.ID, p.UserID, p.Name, p.Gender, p.BirthDate, p.BirthTime, p.BirthLocation, p.Longitude, reading, p.IsActive, p.CreatedAt, p.UpdatedAt)
	return err
}

// ListByUser returns the user's profiles, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]profile.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, gender, birth_date, birth_time, birth_location, longitude, reading, is_active, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// Get fetches by primary key.
func (r *PostgresRepository) Get(ctx context.Context, profileID string) (profile.Profile, bool, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, name, gender, birth_date, birth_time, birth_location, longitude, reading, is_active, created_at, updated_at
		FROM profiles
		WHERE id = $1
		LIMIT 1
	`, profileID)
	if err != nil {
		return profile.Profile{}, false, err
	}
	defer rows.Close()
	if !rows.Next() {
		return profile.Profile{}, false, rows.Err()
	}
	p, err := scanProfile(rows)
	if err != nil {
		return profile.Profile{}, false, err
	}
	return p, true, rows.Err()
}

// Update rewrites the mutable columns.
func (r *PostgresRepository) Update(ctx context.Context, p profile.Profile) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET name = $2, is_active = $3, updated_at = $4
		WHERE id = $1
	`, p.ID, p.Name, p.IsActive, p.UpdatedAt)
	return err
}

// Delete removes the profile row.
func (r *PostgresRepository) Delete(ctx context.Context, profileID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, profileID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (profile.Profile, error) {
	var (
		p       profile.Profile
		reading []byte
		created time.Time
		updated time.Time
	)
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Gender,
		&p.BirthDate,
		&p.BirthTime,
		&p.BirthLocation,
		&p.Longitude,
		&reading,
		&p.IsActive,
		&created,
		&updated,
	); err != nil {
		return profile.Profile{}, err
	}
	var payload readingPayload
	if err := json.Unmarshal(reading, &payload); err != nil {
		return profile.Profile{}, err
	}
	p.Chart = payload.Chart
	p.Strength = payload.Strength
	p.LuckyElements = payload.LuckyElements
	p.UnluckyElements = payload.UnluckyElements
	p.LuckyDirections = payload.LuckyDirections
	p.LuckyColors = payload.LuckyColors
	p.CreatedAt = created.UTC()
	p.UpdatedAt = updated.UTC()
	return p, nil
}

var _ profile.Repository = (*PostgresRepository)(nil)
