package storage

import (
	"context"
	"errors"
	"time"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/mattn/go-sqlite3"
)

// readRetry bounds retries of reads that collide with a concurrent writer,
// such as a seed running against the same file.
var readRetry = common.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: 50 * time.Millisecond,
	MaxDelay:     500 * time.Millisecond,
	Multiplier:   2,
}

// Sources exposes the stored dataset as store sources. Reads blocked by a
// locked database are retried; any other failure is returned as is.
func (s *SQLiteStorage) Sources() store.Sources {
	return store.Sources{
		Profile:      retrying(s.LoadProfile),
		Transactions: retrying(s.LoadTransactions),
		Savings:      retrying(s.LoadSavings),
		Investments:  retrying(s.LoadInvestments),
	}
}

func retrying[T any](load func(context.Context) (T, error)) source.Func[T] {
	return func(ctx context.Context) (T, error) {
		var out T
		err := common.WithRetry(ctx, func() error {
			v, err := load(ctx)
			if err != nil {
				return &common.RetryableError{Err: err, Retryable: isLocked(err)}
			}
			out = v
			return nil
		}, readRetry)
		return out, err
	}
}

func isLocked(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
}
