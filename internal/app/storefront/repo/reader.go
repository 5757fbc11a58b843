package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pawfect-catalog/internal/pkg/retry"
)

// Default transport retry policy: three attempts with 1s, 2s backoff.
const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = time.Second
)

// Reader runs single-use read-only queries and retries transient failures.
// It owns no connection; the client handle is created and closed by the caller.
type Reader struct {
	client *spanner.Client
	retry  retry.Config
}

// NewReader creates a Reader retrying up to attempts times with exponential
// backoff starting at delay.
func NewReader(client *spanner.Client, attempts int, delay time.Duration) *Reader {
	return &Reader{
		client: client,
		retry: retry.Config{
			MaxAttempts: attempts,
			Backoff:     retry.ExponentialBackoff(delay),
			ShouldRetry: IsTransient,
		},
	}
}

// IsTransient reports whether a Spanner error is worth retrying.
func IsTransient(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	switch spanner.ErrCode(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}

// queryAll runs stmt and decodes every row. A retry restarts the whole
// query, so a partially read result is never returned.
func queryAll[T any](ctx context.Context, r *Reader, stmt spanner.Statement, decode func(*spanner.Row) (T, error)) ([]T, error) {
	return retry.DoWithResult(ctx, r.retry, func(ctx context.Context) ([]T, error) {
		iter := r.client.Single().Query(ctx, stmt)
		defer iter.Stop()

		out := make([]T, 0)
		for {
			row, err := iter.Next()
			if err == iterator.Done {
				return out, nil
			}
			if err != nil {
				return nil, err
			}
			v, err := decode(row)
			if err != nil {
				return nil, fmt.Errorf("failed to decode row: %w", err)
			}
			out = append(out, v)
		}
	})
}

// readRow reads one row by key. found is false when the row does not exist.
func (r *Reader) readRow(ctx context.Context, table string, key spanner.Key, columns []string, dst interface{}) (found bool, err error) {
	err = retry.Do(ctx, r.retry, func(ctx context.Context) error {
		row, err := r.client.Single().ReadRow(ctx, table, key, columns)
		if err != nil {
			if spanner.ErrCode(err) == codes.NotFound {
				found = false
				return nil
			}
			return err
		}
		found = true
		return row.ToStruct(dst)
	})
	return found, err
}

// existsInTxn reports whether key exists in table within txn.
func existsInTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, table string, key spanner.Key, column string) (bool, error) {
	_, err := txn.ReadRow(ctx, table, key, []string{column})
	if err == nil {
		return true, nil
	}
	if spanner.ErrCode(err) == codes.NotFound {
		return false, nil
	}
	return false, err
}
