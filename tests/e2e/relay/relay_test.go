//go:build e2e

package relay_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"shareit/internal/handler/dto/response"
	"shareit/internal/infra/outbox"
	"shareit/internal/infra/repository"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/tests/common/dbtest"
	"shareit/tests/common/httptest"
	"shareit/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	fail   error
}

func (p *recordingPublisher) Publish(_ context.Context, topic, _ string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.topics = append(p.topics, topic)
	return nil
}

type RelaySuite struct {
	e2e.SharedSuite
}

func TestRelaySuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RelaySuite))
}

func (s *RelaySuite) relayWith(pub outbox.Publisher) *outbox.Relay {
	cfg := config.RelayConfig{Interval: time.Second, BatchSize: 10, MaxAttempts: 3, RetryDelay: time.Minute}
	return outbox.NewRelay(s.DB, repository.NewNotificationRepository(sqlc.New()), pub, clock.NewRealClock(), cfg)
}

func (s *RelaySuite) bookAndApprove() {
	t := s.T()
	owner := dbtest.CreateTestUser(t, s.DB, "Owner", "owner@example.com")
	booker := dbtest.CreateTestUser(t, s.DB, "Booker", "booker@example.com")
	item := dbtest.CreateTestItem(t, s.DB, owner, "Drill", "Cordless drill", true)

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	rec := httptest.PerformRequest(t, s.Router, http.MethodPost, "/bookings", map[string]any{
		"itemId": item,
		"start":  start.Format("2006-01-02T15:04:05"),
		"end":    start.Add(time.Hour).Format("2006-01-02T15:04:05"),
	}, booker)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var b response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, rec.Body, &b))

	rec = httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf("/bookings/%d?approved=true", b.ID), nil, owner)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func (s *RelaySuite) jobStatuses() map[string]int {
	t := s.T()
	rows, err := s.DB.Query(context.Background(), "SELECT status FROM notification_jobs")
	require.NoError(t, err)
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		require.NoError(t, rows.Scan(&status))
		out[status]++
	}
	require.NoError(t, rows.Err())
	return out
}

func (s *RelaySuite) TestDrain() {
	s.Run("publishes queued events and marks them sent", func() {
		t := s.T()
		s.bookAndApprove()

		pub := &recordingPublisher{}
		n, err := s.relayWith(pub).DrainOnce(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, n)
		require.ElementsMatch(t, []string{"booking.created", "booking.approved"}, pub.topics)
		require.Equal(t, map[string]int{"sent": 2}, s.jobStatuses())

		n, err = s.relayWith(pub).DrainOnce(context.Background())
		require.NoError(t, err)
		require.Zero(t, n)
	})

	s.Run("failed publish is rescheduled", func() {
		t := s.T()
		s.bookAndApprove()

		pub := &recordingPublisher{fail: errors.New("broker down")}
		n, err := s.relayWith(pub).DrainOnce(context.Background())
		require.NoError(t, err)
		require.Zero(t, n)
		require.Equal(t, map[string]int{"queued": 2}, s.jobStatuses())

		var attempts int
		var lastError string
		var runAt time.Time
		err = s.DB.QueryRow(context.Background(),
			"SELECT attempts, last_error, run_at FROM notification_jobs LIMIT 1").Scan(&attempts, &lastError, &runAt)
		require.NoError(t, err)
		require.Equal(t, 1, attempts)
		require.Equal(t, "broker down", lastError)
		require.True(t, runAt.After(time.Now()))
	})
}
