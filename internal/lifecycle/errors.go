package lifecycle

import (
	"errors"
	"fmt"

	"content_orchestrator/internal/domain"
)

// ErrConflict means a compare-and-set transition was rejected because the
// item's status changed between read and write. For engine-driven
// transitions this is a no-op, not an error; human-driven operations
// surface it to the caller.
var ErrConflict = errors.New("content item changed concurrently")

// ErrScheduleInPast rejects scheduling with a non-future time.
var ErrScheduleInPast = errors.New("scheduled time must be in the future")

// ErrPublishedImmutable guards the audit requirement: published content
// is never deleted.
var ErrPublishedImmutable = errors.New("published content cannot be deleted")

// InvalidTransitionError is returned when an operation is attempted from
// a status it is not defined for. State is left untouched.
type InvalidTransitionError struct {
	Op   string
	From domain.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition from status %q", e.Op, e.From)
}

func invalidFrom(op string, from domain.Status) error {
	return &InvalidTransitionError{Op: op, From: from}
}
