// Package safe wraps IO calls whose errors can only be logged, such as
// closing the log file at exit or writing a rendered page to a client that
// already went away.
package safe

import (
	"context"
	"io"

	"github.com/secmon-lab/riskmatrix/pkg/utils/logging"
)

// Close closes closer and logs a failure. A nil closer is ignored.
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Warn("close failed", "error", err)
	}
}

// Write writes data to w and logs a failure. A nil writer is ignored.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	if n, err := w.Write(data); err != nil {
		logging.From(ctx).Warn("write failed", "error", err, "written", n, "size", len(data))
	}
}
