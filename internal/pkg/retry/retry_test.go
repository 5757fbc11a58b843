package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	errTransient = errors.New("transient")
	errPermanent = errors.New("permanent")
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts: attempts,
		Backoff:     ConstantBackoff(time.Millisecond),
		ShouldRetry: func(err error) bool { return errors.Is(err, errTransient) },
	}
}

func TestDoWithResult(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		got, err := DoWithResult(context.Background(), fastConfig(3), func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errTransient
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		_, err := DoWithResult(context.Background(), fastConfig(3), func(context.Context) (int, error) {
			calls++
			return 0, errTransient
		})

		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns non-retryable errors immediately", func(t *testing.T) {
		calls := 0
		_, err := DoWithResult(context.Background(), fastConfig(3), func(context.Context) (int, error) {
			calls++
			return 0, errPermanent
		})

		assert.ErrorIs(t, err, errPermanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), Config{}, func(context.Context) error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestDo_ContextCancellation(t *testing.T) {
	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		calls := 0
		err := Do(ctx, fastConfig(3), func(context.Context) error {
			calls++
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, calls)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := Config{
			MaxAttempts: 5,
			Backoff:     ConstantBackoff(time.Hour),
		}

		err := Do(ctx, cfg, func(context.Context) error {
			cancel()
			return errTransient
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, errTransient)
	})
}

func TestExponentialBackoff(t *testing.T) {
	b := ExponentialBackoff(time.Second)

	assert.Equal(t, time.Second, b(1))
	assert.Equal(t, 2*time.Second, b(2))
	assert.Equal(t, 4*time.Second, b(3))
	assert.Equal(t, time.Second, b(0))
}
