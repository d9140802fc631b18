package cssreport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleReporter(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	var buf bytes.Buffer
	reporter := NewConsoleReporter(&buf)

	err := reporter.Report([]FileReport{
		{Filename: "styles/a.css", Messages: []Message{
			{Line: 1, Column: 2, Severity: "warning", Text: "avoid !important"},
			{Line: 3, Column: 4, Severity: "error", Text: "unknown property"},
		}},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "styles/a.css", lines[0])
	require.Equal(t, "1:2 warning avoid !important", lines[1])
	require.Equal(t, "3:4 error unknown property", lines[2])
}

func TestConsoleReporterSkipsEmptyReports(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporter(&buf)

	require.NoError(t, reporter.Report([]FileReport{
		{Filename: "clean.css"},
	}))
	require.Empty(t, buf.String())
}

func TestConsoleReporterNoOpOnEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporter(&buf)

	require.NoError(t, reporter.Report(nil))
	require.Empty(t, buf.String())
}

func TestConsoleReporterNoColorsForBuffer(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	var buf bytes.Buffer
	reporter := NewConsoleReporter(&buf)
	require.False(t, reporter.useColors)
}
