package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loginflow/internal/platform/retry"
)

var fastPolicy = retry.Policy{
	MaxAttempts:    3,
	InitialBackoff: time.Millisecond,
}

func alwaysRetry(error) retry.Action { return retry.Retry }
func neverRetry(error) retry.Action  { return retry.Stop }

var errTransient = errors.New("transient")

func TestDo_SuccessAfterRetries(t *testing.T) {
	calls := 0
	val, err := retry.Do(context.Background(), fastPolicy, alwaysRetry, func(context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errTransient
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, 3, calls)
}

func TestDo_StopIsPermanent(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), fastPolicy, neverRetry, func(context.Context) (int, error) {
		calls++
		return 0, errTransient
	})
	var perm *retry.PermanentError
	require.ErrorAs(t, err, &perm)
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 1, calls)
}

func TestDo_ExhaustsAttemptsAndKeepsCause(t *testing.T) {
	calls := 0
	var retried []int
	p := fastPolicy
	p.OnRetry = func(attempt int, _ error, _ time.Duration) { retried = append(retried, attempt) }

	_, err := retry.Do(context.Background(), p, alwaysRetry, func(context.Context) (int, error) {
		calls++
		return 0, errTransient
	})
	assert.ErrorIs(t, err, errTransient)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, retried)
}

func TestDo_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	_, _ = retry.Do(context.Background(), retry.Policy{}, alwaysRetry, func(context.Context) (int, error) {
		calls++
		return 0, errTransient
	})
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := retry.Policy{MaxAttempts: 3, InitialBackoff: time.Hour}
	_, err := retry.Do(ctx, p, alwaysRetry, func(context.Context) (int, error) {
		cancel()
		return 0, errTransient
	})
	assert.ErrorIs(t, err, errTransient)
}
