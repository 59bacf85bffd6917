package reportstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/octa-app/fengshui-backend/internal/domain/analysis"
)

type storedReport struct {
	payload   analysis.Report
	expiresAt time.Time
}

// MemoryStore is an in-memory report store used for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]storedReport
	ttl     time.Duration
}

// NewMemoryStore constructs a store backed by process memory. A zero ttl
// keeps reports forever.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		reports: make(map[string]storedReport),
		ttl:     ttl,
	}
}

// Save stores the report.
func (s *MemoryStore) Save(_ context.Context, report analysis.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if s.ttl > 0 {
		exp = time.Now().Add(s.ttl)
	}
	s.reports[report.ID] = storedReport{payload: report, expiresAt: exp}
	return nil
}

// Get fetches a report by ID.
func (s *MemoryStore) Get(_ context.Context, reportID string) (analysis.Report, bool, error) {
	s.mu.RLock()
	record, ok := s.reports[reportID]
	s.mu.RUnlock()
	if !ok {
		return analysis.Report{}, false, nil
	}
	if hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.reports, reportID)
		s.mu.Unlock()
		return analysis.Report{}, false, nil
	}
	return record.payload, true, nil
}

// ListByUser returns the user's reports, newest first.
func (s *MemoryStore) ListByUser(_ context.Context, userID string) ([]analysis.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]analysis.Report, 0)
	for _, record := range s.reports {
		if hasExpired(record.expiresAt) {
			continue
		}
		if record.payload.UserID == userID {
			out = append(out, record.payload)
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

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ analysis.ReportStore = (*MemoryStore)(nil)
