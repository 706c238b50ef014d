// Package sink delivers encoded datasets somewhere: a directory, a stream, a download.
package sink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Sink accepts an encoded dataset and a suggested filename and stores or
// delivers it. The returned location is sink-specific (a path, "-" for streams).
type Sink interface {
	Save(ctx context.Context, data []byte, filename string) (string, error)
}

// Writer streams datasets to an io.Writer such as stdout. The filename is ignored.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Save writes data as-is. A reader that hangs up early (e.g. `| head`)
// is not treated as a failure.
func (s *Writer) Save(ctx context.Context, data []byte, filename string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := s.w.Write(data); err != nil {
		if IsBrokenPipe(err) {
			return "-", nil
		}
		return "", fmt.Errorf("Writer.Save(): %w", err)
	}
	return "-", nil
}

// IsBrokenPipe reports whether err is a broken or closed pipe.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
