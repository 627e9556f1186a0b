// Package datasource defines the input abstraction used by the parsers.
package datasource

import (
	"context"
	"io"
)

// Source opens a readable input. Callers close the returned reader.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}
