//go:build unit

package uow

import (
	"testing"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, true},
		{"wrapped deadlock", errs.Wrap(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}, "commit"), true},
		{"exclusion violation", &pgconn.PgError{Code: pgerrcode.ExclusionViolation}, false},
		{"plain error", assert.AnError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.err))
		})
	}
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := retryPolicy{maxRetries: 3, base: 100 * time.Millisecond}

	for attempt, want := range []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond} {
		got := p.backoff(attempt)
		assert.GreaterOrEqual(t, got, want)
		assert.LessOrEqual(t, got, want+want/5+1)
	}
	assert.Zero(t, retryPolicy{}.backoff(2))
}
