package cssreport

// Severity constants used by lint engines
const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Diagnostic is a single finding emitted by a lint engine.
type Diagnostic struct {
	Line     int    `json:"line"`     // 1-based line of the finding
	Column   int    `json:"column"`   // 1-based column of the finding
	Severity string `json:"severity"` // "warning" or "error"
	Text     string `json:"text"`     // human-readable description
	Source   string `json:"source"`   // tag of the engine that produced it
}

// Result holds every diagnostic produced for one input file. Results from
// other engines sharing the pipeline carry foreign Source tags on their
// diagnostics; those are filtered out during adaptation.
type Result struct {
	Origin      string       `json:"origin"` // path of the linted input
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// MessageCount reports the number of raw diagnostics.
func (r Result) MessageCount() int { return len(r.Diagnostics) }

// Message is the report-ready projection of a Diagnostic: the engine tag is
// dropped and the severity is rendered by the configured SeverityFormat.
type Message struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Text     string `json:"message"`
}

// FileReport groups the normalized messages for one input file.
type FileReport struct {
	Filename string    `json:"filename"`
	Messages []Message `json:"messages"`
}

// MessageCount reports the number of normalized messages.
func (r FileReport) MessageCount() int { return len(r.Messages) }
