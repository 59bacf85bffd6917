package profilerepo

import (
	"context"
	"sort"
	"sync"

	"github.com/octa-app/fengshui-backend/internal/domain/profile"
)

// MemoryRepository is an in-memory profile store used for tests/dev.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[string]profile.Profile
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[string]profile.Profile)}
}

// Create stores the profile.
func (r *MemoryRepository) Create(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

// ListByUser returns the user's profiles, newest first.
func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]profile.Profile, 0)
	for _, p := range r.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Get fetches by ID.
func (r *MemoryRepository) Get(_ context.Context, profileID string) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[profileID]
	return p, ok, nil
}

// Update replaces the stored profile.
func (r *MemoryRepository) Update(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

// Delete removes the profile.
func (r *MemoryRepository) Delete(_ context.Context, profileID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.profiles, profileID)
	return nil
}

var _ profile.Repository = (*MemoryRepository)(nil)
