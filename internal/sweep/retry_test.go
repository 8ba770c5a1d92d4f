package sweep

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_orchestrator/internal/domain"
	"content_orchestrator/internal/engine"
	"content_orchestrator/internal/lifecycle"
	"content_orchestrator/internal/sweep/mocks"
)

type RetrySweepTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	contents *mocks.MockContentLister
	engine   *mocks.MockPublishEngine
	sweep    *RetrySweep
}

func (s *RetrySweepTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.contents = mocks.NewMockContentLister(s.ctrl)
	s.engine = mocks.NewMockPublishEngine(s.ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.sweep = NewRetrySweep(s.contents, s.engine, 24*time.Hour, 3, 2, logger)
	s.sweep.now = func() time.Time { return fixedNow }
}

func (s *RetrySweepTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRetrySweepTestSuite(t *testing.T) {
	suite.Run(t, new(RetrySweepTestSuite))
}

func (s *RetrySweepTestSuite) TestRun_RetriesRecentFailures() {
	items := []domain.ContentItem{
		{ID: 1, Status: domain.StatusFailed, RetryCount: 1},
		{ID: 2, Status: domain.StatusFailed, RetryCount: 0},
	}

	s.contents.EXPECT().
		ListFailedRetryable(gomock.Any(), fixedNow.Add(-24*time.Hour), 3).
		Return(items, nil)

	s.engine.EXPECT().
		Attempt(gomock.Any(), gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, item *domain.ContentItem) (*engine.Outcome, error) {
			if item.ID == 1 {
				return &engine.Outcome{Success: true, Event: lifecycle.EventPublished}, nil
			}
			return &engine.Outcome{Event: lifecycle.EventRetryPending, Err: errors.New("rejected")}, nil
		})

	summary, err := s.sweep.Run(context.Background())
	s.NoError(err)
	s.Contains(summary, "selected=2")
	s.Contains(summary, "published=1")
	s.Contains(summary, "retried=1")
}

func (s *RetrySweepTestSuite) TestRun_ListError() {
	s.contents.EXPECT().
		ListFailedRetryable(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	_, err := s.sweep.Run(context.Background())
	s.Error(err)
	s.Contains(err.Error(), "list retryable items")
}
