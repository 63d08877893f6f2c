// Package besteffort runs side effects whose failure must not fail the
// surrounding request.
package besteffort

import (
	"context"
	"log/slog"

	"youthcup_backend/internal/platform/metrics"
)

// Do runs fn and swallows its error after logging and counting it.
func Do(ctx context.Context, operation string, fn func(ctx context.Context) error) {
	if err := fn(ctx); err != nil {
		slog.WarnContext(ctx, "best-effort operation failed", "operation", operation, "error", err)
		metrics.RecordBestEffortFailure(operation)
	}
}
