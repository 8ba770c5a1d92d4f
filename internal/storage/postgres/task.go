package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"content_orchestrator/internal/domain"
)

type TaskStore struct {
	db *sqlx.DB
}

func NewTaskStore(db *sqlx.DB) *TaskStore {
	return &TaskStore{db: db}
}

// Start opens a bookkeeping row for a trigger run.
func (s *TaskStore) Start(ctx context.Context, taskType string, startedAt time.Time) (int64, error) {
	query := `
		INSERT INTO scheduled_tasks (task_type, status, started_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err := s.db.GetContext(ctx, &id, query, taskType, domain.TaskRunning, startedAt)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Finish closes a run. Empty summary or error message is stored as NULL.
func (s *TaskStore) Finish(ctx context.Context, id int64, status domain.TaskStatus, resultSummary, errorMessage string) error {
	query := `
		UPDATE scheduled_tasks
		SET status = $2,
		    completed_at = now(),
		    result_summary = NULLIF($3, ''),
		    error_message = NULLIF($4, '')
		WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id, status, resultSummary, errorMessage)
	return err
}

func (s *TaskStore) ListRecent(ctx context.Context, limit int) ([]domain.ScheduledTask, error) {
	query := `
		SELECT id, task_type, status, started_at, completed_at, result_summary, error_message
		FROM scheduled_tasks
		ORDER BY started_at DESC
		LIMIT $1`

	var tasks []domain.ScheduledTask
	err := s.db.SelectContext(ctx, &tasks, query, limit)
	return tasks, err
}
