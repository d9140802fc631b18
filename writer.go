package cssreport

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteReporter serializes the normalized result collection to Checkstyle
// XML and persists it at the resolved output path, replacing any existing
// file there.
type WriteReporter struct {
	path   string
	source string
}

// NewWriteReporter resolves output against workDir when relative. The
// working directory is supplied explicitly so the reporter never consults
// ambient process state. An empty output falls back to DefaultOutput.
func NewWriteReporter(workDir, output, source string) *WriteReporter {
	if output == "" {
		output = DefaultOutput
	}
	if !filepath.IsAbs(output) {
		output = filepath.Join(workDir, output)
	}
	return &WriteReporter{path: output, source: source}
}

// Path returns the absolute path the report will be written to.
func (r *WriteReporter) Path() string { return r.path }

// Report serializes and writes the report, creating intermediate
// directories as needed. I/O failures propagate to the stream.
func (r *WriteReporter) Report(reports []FileReport) error {
	doc, err := MarshalCheckstyle(r.source, reports)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}
	if err := os.WriteFile(r.path, doc, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
