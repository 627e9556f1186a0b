package storage

import (
	"context"
	"fmt"
	"log"
	"time"
)

// CopyFn is a backend's bulk insert primitive. It inserts rows aligned to
// columns and returns the number of rows written.
type CopyFn func(ctx context.Context, columns []string, rows [][]any) (int64, error)

// LoadStats summarizes a LoadBatches run.
type LoadStats struct {
	Rows    int64
	Batches int64
}

// LoadBatches drains rows from in, groups them into batches of batchSize,
// and calls copyFn once per non-empty batch. It stops at the first copy
// error or when ctx is canceled; the returned stats cover every batch that
// succeeded before that.
func LoadBatches(
	ctx context.Context,
	columns []string,
	in <-chan []any,
	batchSize int,
	copyFn CopyFn,
) (LoadStats, error) {
	var st LoadStats
	if batchSize <= 0 {
		return st, fmt.Errorf("batchSize must be > 0")
	}
	if copyFn == nil {
		return st, fmt.Errorf("copyFn must not be nil")
	}

	var (
		batch = make([][]any, 0, batchSize)
		start = time.Now()
	)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := copyFn(ctx, columns, batch)
		batch = batch[:0]
		if err != nil {
			log.Printf("storage: batch #%d failed after=%d total=%d err=%v", st.Batches+1, n, st.Rows, err)
			return err
		}
		st.Rows += n
		st.Batches++
		log.Printf("storage: batch #%d inserted=%d total=%d elapsed=%s",
			st.Batches, n, st.Rows, time.Since(start).Truncate(time.Millisecond))
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return st, ctx.Err()

		case row, ok := <-in:
			if !ok {
				return st, flush()
			}
			batch = append(batch, row)
			if len(batch) >= batchSize {
				if err := flush(); err != nil {
					return st, err
				}
			}
		}
	}
}
