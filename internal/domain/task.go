package domain

import "time"

type TaskStatus string

const (
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// ScheduledTask is one row of scheduler bookkeeping: one sweep execution,
// opened at sweep start and closed at sweep end. It exists so stuck or
// overlapping sweeps are observable from the store.
type ScheduledTask struct {
	ID            int64      `db:"id"`
	TaskType      string     `db:"task_type"`
	Status        TaskStatus `db:"status"`
	StartedAt     time.Time  `db:"started_at"`
	CompletedAt   *time.Time `db:"completed_at"`
	ResultSummary *string    `db:"result_summary"`
	ErrorMessage  *string    `db:"error_message"`
}
