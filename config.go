package cssreport

import (
	"io"
	"os"
)

// DefaultOutput is the report filename used when Config.Output is empty.
const DefaultOutput = "checkstyle.xml"

// Config captures everything a stream needs, once per pipeline run.
type Config struct {
	// Engine runs the actual linting. Required.
	Engine Engine

	// Output is the report path, resolved against WorkDir when relative.
	// Defaults to DefaultOutput.
	Output string

	// WorkDir anchors relative output paths. Required: callers pass their
	// own working directory, the library never reads process state.
	WorkDir string

	// ReportToConsole echoes findings to ConsoleOut.
	ReportToConsole bool

	// FailAfterAllErrors turns a non-zero finding count into a stream
	// error once all results are in.
	FailAfterAllErrors bool

	// ConsoleOut is where the console reporter writes. Defaults to stdout.
	ConsoleOut io.Writer

	// SeverityFormat selects how severities are rendered in the report.
	SeverityFormat SeverityFormat

	// ErrorSink receives at most one error per run. A nil sink drops the
	// error: that is the contract for embedding hosts without an error
	// channel, not an accident.
	ErrorSink func(error)
}

func (c Config) withDefaults() Config {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.ConsoleOut == nil {
		c.ConsoleOut = os.Stdout
	}
	return c
}
