package cssreport

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Terminal styles for the console reporter. Lipgloss automatically degrades
// colors based on terminal capabilities.
var (
	// styleHeader is used for per-file header lines.
	styleHeader = lipgloss.NewStyle().Bold(true).Underline(true)
)

var (
	warningLabel = color.New(color.FgYellow)
	errorLabel   = color.New(color.FgRed, color.Bold)
)

// renderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// ConsoleReporter echoes findings to a terminal: an underlined header per
// file followed by one "line:column severity message" row per finding.
// It never fails and is a no-op on an empty collection.
type ConsoleReporter struct {
	w         io.Writer
	useColors bool
}

// NewConsoleReporter creates a console reporter writing to w. A nil writer
// defaults to stdout.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleReporter{w: w, useColors: shouldUseColors(w)}
}

// shouldUseColors determines if colors should be enabled for w.
func shouldUseColors(w io.Writer) bool {
	// FORCE_COLOR environment variable wins (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Report prints every file that carries at least one message. Always nil:
// the console echo is transparent in the reporter fan-out.
func (r *ConsoleReporter) Report(reports []FileReport) error {
	for _, rep := range reports {
		if len(rep.Messages) == 0 {
			continue
		}
		fmt.Fprintln(r.w, renderStyle(styleHeader, rep.Filename, r.useColors))
		for _, m := range rep.Messages {
			fmt.Fprintf(r.w, "%d:%d %s %s\n", m.Line, m.Column, r.severityLabel(m.Severity), m.Text)
		}
		fmt.Fprintln(r.w)
	}
	return nil
}

func (r *ConsoleReporter) severityLabel(severity string) string {
	if !r.useColors {
		return severity
	}
	switch severity {
	case SeverityError:
		return errorLabel.Sprint(severity)
	case SeverityWarning:
		return warningLabel.Sprint(severity)
	}
	return severity
}
