package cssreport

import "context"

// Engine is the lint collaborator invoked once per buffered input. Engines
// arrive fully configured; the stream only runs them. Implementations must
// be safe for concurrent use: one Lint call per in-flight input.
type Engine interface {
	// Name returns the tag the engine stamps on its diagnostics. Only
	// diagnostics carrying this tag end up in the report.
	Name() string

	// Lint analyzes one input and returns every diagnostic found for it.
	// A returned error aborts the whole batch.
	Lint(ctx context.Context, path string, src []byte) (Result, error)
}
