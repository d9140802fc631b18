package cssreport

import (
	"errors"
	"fmt"
)

// ErrIssuesFound is the fail policy's deliberate failure: findings exist
// and the caller asked for the run to fail on them. Not a defect signal.
var ErrIssuesFound = errors.New("linting issues found")

// FailReporter fails the run when the result collection carries any finding
// at all. Warnings and errors both count.
type FailReporter struct{}

// Report returns an ErrIssuesFound-wrapped error naming the finding count,
// or nil when the collection is clean.
func (FailReporter) Report(reports []FileReport) error {
	total := Count(reports)
	if total == 0 {
		return nil
	}
	if total == 1 {
		return fmt.Errorf("%w: 1 linting issue has been found.", ErrIssuesFound)
	}
	return fmt.Errorf("%w: %d linting issues have been found.", ErrIssuesFound, total)
}
