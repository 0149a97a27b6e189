package prayer

import "context"

// Repository defines persistence behaviours for prayer schedules.
type Repository interface {
	// Upsert inserts or replaces the schedule keyed on (date, location).
	Upsert(ctx context.Context, schedule *Schedule) error
	Get(ctx context.Context, date, location string) (*Schedule, error)
	// ListFrom returns up to limit schedules for a location starting at the
	// given date, ordered by date ascending.
	ListFrom(ctx context.Context, location, fromDate string, limit int) ([]*Schedule, error)
}
