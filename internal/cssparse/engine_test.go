package cssparse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/olegskl/cssreport"
)

func TestLintValidStylesheet(t *testing.T) {
	engine := New(Options{})

	res, err := engine.Lint(context.Background(), "a.css", []byte(".btn { color: red; }\n"))
	require.NoError(t, err)
	require.Equal(t, "a.css", res.Origin)
	require.Empty(t, res.Diagnostics)
}

func TestLintEmptySource(t *testing.T) {
	engine := New(Options{})

	res, err := engine.Lint(context.Background(), "empty.css", []byte("  \n\t"))
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	require.Equal(t, cssreport.SeverityWarning, d.Severity)
	require.Equal(t, Name, d.Source)
	require.Equal(t, 1, d.Line)
	require.Equal(t, 1, d.Column)
}

func TestLintEmptySourceAllowed(t *testing.T) {
	engine := New(Options{AllowEmpty: true})

	res, err := engine.Lint(context.Background(), "empty.css", nil)
	require.NoError(t, err)
	require.Empty(t, res.Diagnostics)
}

func TestLintMalformedStylesheet(t *testing.T) {
	engine := New(Options{})

	res, err := engine.Lint(context.Background(), "bad.css", []byte(".btn { color red }\n"))
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	require.Equal(t, cssreport.SeverityError, d.Severity)
	require.Equal(t, Name, d.Source)
	require.NotEmpty(t, d.Text)
	require.GreaterOrEqual(t, d.Line, 1)
}

func TestLintCancelledContext(t *testing.T) {
	engine := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Lint(ctx, "a.css", []byte("a{}"))
	require.Error(t, err)
}

func TestPosition(t *testing.T) {
	src := []byte("line one\nline two\nx")

	tests := []struct {
		name     string
		offset   int
		wantLine int
		wantCol  int
	}{
		{name: "start", offset: 0, wantLine: 1, wantCol: 1},
		{name: "mid first line", offset: 5, wantLine: 1, wantCol: 6},
		{name: "start of second line", offset: 9, wantLine: 2, wantCol: 1},
		{name: "third line", offset: 18, wantLine: 3, wantCol: 1},
		{name: "offset past end clamps", offset: 100, wantLine: 3, wantCol: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, col := position(src, tt.offset)
			require.Equal(t, tt.wantLine, line)
			require.Equal(t, tt.wantCol, col)
		})
	}
}
