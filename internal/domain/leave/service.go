package leave

import (
	"context"
	"time"
)

// CoverageResolver answers whether approved leave covers a given date, and
// which halves of it.
type CoverageResolver interface {
	// ResolveCoverage ORs the coverage of every approved leave request
	// overlapping the date.
	ResolveCoverage(ctx context.Context, employeeID string, date time.Time) (Coverage, error)
}
