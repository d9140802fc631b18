package cssreport

// SeverityFormat selects how diagnostic severities appear in the normalized
// report model. Two historical shapes of this adapter exist: one passed the
// engine's severity tag straight through, the other copied it through a
// label table. Both collapse into this one strategy parameter.
type SeverityFormat int

const (
	// SeverityRaw passes the engine's severity tag through unchanged.
	SeverityRaw SeverityFormat = iota
	// SeverityLabel maps the tag through the label table. Unknown tags
	// fall back to pass-through.
	SeverityLabel
)

var severityLabels = map[string]string{
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (f SeverityFormat) render(severity string) string {
	if f == SeverityLabel {
		if label, ok := severityLabels[severity]; ok {
			return label
		}
	}
	return severity
}

// adaptDiagnostics keeps only diagnostics tagged with source and projects
// each into a Message, preserving order. Diagnostics injected by other
// engines sharing the record shape are excluded here.
func adaptDiagnostics(source string, format SeverityFormat, diags []Diagnostic) []Message {
	msgs := make([]Message, 0, len(diags))
	for _, d := range diags {
		if d.Source != source {
			continue
		}
		msgs = append(msgs, Message{
			Line:     d.Line,
			Column:   d.Column,
			Severity: format.render(d.Severity),
			Text:     d.Text,
		})
	}
	return msgs
}

func adaptResult(source string, format SeverityFormat, r Result) FileReport {
	return FileReport{
		Filename: r.Origin,
		Messages: adaptDiagnostics(source, format, r.Diagnostics),
	}
}

// AdaptResults projects raw per-input results into the normalized report
// model, dropping inputs that produced no diagnostics at all.
//
// The empty check runs on the RAW diagnostics list: a result whose
// diagnostics all carry a foreign source tag still yields a FileReport with
// zero messages. Known quirk, kept for compatibility with existing report
// consumers.
func AdaptResults(source string, format SeverityFormat, results []Result) []FileReport {
	reports := make([]FileReport, 0, len(results))
	for _, r := range results {
		if len(r.Diagnostics) == 0 {
			continue
		}
		reports = append(reports, adaptResult(source, format, r))
	}
	return reports
}
