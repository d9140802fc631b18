// Package cssparse is a minimal syntax-checking lint engine: it runs the
// CSS through the tdewolff parser and reports grammar errors. It is the
// CLI's default collaborator; real rule engines plug into the pipeline
// through the same cssreport.Engine interface.
package cssparse

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/olegskl/cssreport"
)

// Name is the source tag stamped on every diagnostic this engine emits.
const Name = "cssparse"

// Options configure the engine.
type Options struct {
	// AllowEmpty suppresses the warning for empty stylesheets.
	AllowEmpty bool
}

// Engine implements cssreport.Engine.
type Engine struct {
	opts Options
}

// New creates an engine with the given options.
func New(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Name implements cssreport.Engine.
func (e *Engine) Name() string { return Name }

// Lint parses src as a stylesheet and reports the first grammar error as
// an error-severity diagnostic. Empty input yields a warning unless
// Options.AllowEmpty is set. The returned error is reserved for engine
// malfunction; malformed CSS is a diagnostic, not an error.
func (e *Engine) Lint(ctx context.Context, path string, src []byte) (cssreport.Result, error) {
	res := cssreport.Result{Origin: path}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	if len(bytes.TrimSpace(src)) == 0 {
		if !e.opts.AllowEmpty {
			res.Diagnostics = append(res.Diagnostics, cssreport.Diagnostic{
				Line:     1,
				Column:   1,
				Severity: cssreport.SeverityWarning,
				Text:     "unexpected empty source",
				Source:   Name,
			})
		}
		return res, nil
	}

	input := parse.NewInputBytes(src)
	parser := css.NewParser(input, false)
	for {
		gt, _, _ := parser.Next()
		if gt != css.ErrorGrammar {
			continue
		}
		err := parser.Err()
		if err == nil || errors.Is(err, io.EOF) {
			break
		}
		line, col := position(src, input.Offset())
		res.Diagnostics = append(res.Diagnostics, cssreport.Diagnostic{
			Line:     line,
			Column:   col,
			Severity: cssreport.SeverityError,
			Text:     err.Error(),
			Source:   Name,
		})
		break
	}
	return res, nil
}

// position converts a byte offset into 1-based line and column numbers.
func position(src []byte, offset int) (line, col int) {
	if offset > len(src) {
		offset = len(src)
	}
	line, col = 1, 1
	for _, b := range src[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
