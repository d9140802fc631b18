// Package cssreport adapts CSS lint diagnostics into Checkstyle XML reports
// for CI tooling such as Jenkins.
//
// cssreport is a pass-through stage in a file-processing pipeline: records
// flow in, are linted in the background, and pass downstream unmodified.
// When the input is exhausted the collected results are adapted into a
// normalized report model and fanned out to the configured reporters.
//
// # Pipeline
//
// Create a stream per pipeline run and feed it records:
//
//	stream, err := cssreport.New(cssreport.Config{
//		Engine:  engine,
//		WorkDir: wd,
//		Output:  "reports/checkstyle.xml",
//	})
//	go func() {
//		for f := range files {
//			stream.Write(f)
//		}
//		stream.Close()
//	}()
//	for f := range stream.Out() {
//		// forward downstream
//	}
//
// Reporters are independent consumers of the same result collection: the
// report writer always runs, the console echo and the fail policy are
// opt-in via Config. Any failure during linting or reporting surfaces as a
// single error through Config.ErrorSink; the stream itself always completes.
//
// # Engines
//
// The actual linting is delegated to an Engine. Package internal/cssparse
// ships a minimal syntax-checking engine used by the CLI; real rule engines
// plug in through the same interface.
//
// # CLI Tool
//
// cssreport also ships a CLI:
//
//	go install github.com/olegskl/cssreport/cmd/cssreport@latest
package cssreport
