package analysis

import "context"

// ReportStore persists completed analysis reports.
type ReportStore interface {
	Save(ctx context.Context, report Report) error
	Get(ctx context.Context, reportID string) (Report, bool, error)
	ListByUser(ctx context.Context, userID string) ([]Report, error)
}
