package reportstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/octa-app/fengshui-backend/internal/domain/analysis"
)

// ValkeyStore persists reports in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyStore constructs a new store backed by Valkey. A zero ttl keeps
// reports forever.
func NewValkeyStore(client valkey.Client, prefix string, ttl time.Duration) *ValkeyStore {
	if prefix == "" {
		prefix = "report"
	}
	return &ValkeyStore{client: client, prefix: prefix, ttl: ttl}
}

// The report's own JSON hides UserID, so persistence wraps it in an
// envelope that carries the owner.
type reportEnvelope struct {
	UserID string          `json:"userId"`
	Report analysis.Report `json:"report"`
}

func (s *ValkeyStore) Save(ctx context.Context, report analysis.Report) error {
	payload, err := json.Marshal(reportEnvelope{UserID: report.UserID, Report: report})
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.reportKey(report.ID)).Value(string(payload))
	var cmd valkey.Completed
	if s.ttl > 0 {
		ttl := s.ttl
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return err
	}
	push := s.client.B().Lpush().Key(s.userKey(report.UserID)).Element(report.ID).Build()
	if err := s.client.Do(ctx, push).Error(); err != nil {
		return err
	}
	if s.ttl > 0 {
		_ = s.client.Do(ctx, s.client.B().Expire().Key(s.userKey(report.UserID)).Seconds(int64(s.ttl/time.Second)).Build()).Error()
	}
	return nil
}

func (s *ValkeyStore) Get(ctx context.Context, reportID string) (analysis.Report, bool, error) {
	cmd := s.client.B().Get().Key(s.reportKey(reportID)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return analysis.Report{}, false, nil
		}
		return analysis.Report{}, false, err
	}
	var envelope reportEnvelope
	if err := json.Unmarshal([]byte(payload), &envelope); err != nil {
		return analysis.Report{}, false, err
	}
	report := envelope.Report
	report.UserID = envelope.UserID
	return report, true, nil
}

func (s *ValkeyStore) ListByUser(ctx context.Context, userID string) ([]analysis.Report, error) {
	cmd := s.client.B().Lrange().Key(s.userKey(userID)).Start(0).Stop(-1).Build()
	ids, err := s.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]analysis.Report, 0, len(ids))
	for _, id := range ids {
		report, found, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		// Expired entries linger in the list; skip them.
		if !found {
			continue
		}
		out = append(out, report)
	}
	return out, nil
}

func (s *ValkeyStore) reportKey(id string) string {
	return fmt.Sprintf("%s:entry:%s", s.prefix, id)
}

func (s *ValkeyStore) userKey(userID string) string {
	return fmt.Sprintf("%s:user:%s", s.prefix, userID)
}

var _ analysis.ReportStore = (*ValkeyStore)(nil)
