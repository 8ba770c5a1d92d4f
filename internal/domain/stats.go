package domain

import (
	"fmt"
	"time"
)

// SweepStats holds counters for one sweep execution. Its String form is
// stored as the scheduled task result summary.
type SweepStats struct {
	Selected  int
	Published int
	Failed    int
	Retried   int
	Created   int
	Notified  int
	Skipped   int
	Errors    int
	Duration  time.Duration
}

func (s *SweepStats) String() string {
	return fmt.Sprintf(
		"selected=%d published=%d failed=%d retried=%d created=%d notified=%d skipped=%d errors=%d duration=%s",
		s.Selected, s.Published, s.Failed, s.Retried, s.Created, s.Notified, s.Skipped, s.Errors, s.Duration,
	)
}
