package cssreport

import (
	"encoding/xml"
	"fmt"
)

// checkstyleVersion is the schema version stamped on every document. 4.3 is
// what the Jenkins Checkstyle plugin family expects.
const checkstyleVersion = "4.3"

type checkstyleDoc struct {
	XMLName xml.Name         `xml:"checkstyle"`
	Version string           `xml:"version,attr"`
	Files   []checkstyleFile `xml:"file"`
}

type checkstyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkstyleError `xml:"error"`
}

type checkstyleError struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// MarshalCheckstyle renders the normalized report model as a Checkstyle XML
// document. One <file> element per report, in input order; the source
// attribute on each <error> carries the engine tag.
func MarshalCheckstyle(source string, reports []FileReport) ([]byte, error) {
	doc := checkstyleDoc{
		Version: checkstyleVersion,
		Files:   make([]checkstyleFile, 0, len(reports)),
	}
	for _, rep := range reports {
		file := checkstyleFile{
			Name:   rep.Filename,
			Errors: make([]checkstyleError, 0, len(rep.Messages)),
		}
		for _, m := range rep.Messages {
			file.Errors = append(file.Errors, checkstyleError{
				Line:     m.Line,
				Column:   m.Column,
				Severity: m.Severity,
				Message:  m.Text,
				Source:   source,
			})
		}
		doc.Files = append(doc.Files, file)
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding checkstyle document: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
