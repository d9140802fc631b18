package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olegskl/cssreport"
	"github.com/olegskl/cssreport/internal/cssparse"
)

var rootCmd = &cobra.Command{
	Use:   "cssreport [patterns...]",
	Short: "Adapt CSS lint diagnostics into Checkstyle XML reports",
	Long: `Lint CSS files and write the findings as a Checkstyle XML report
for CI tooling such as Jenkins. Files matching the given glob patterns
pass through the pipeline; the report is written when all of them have
been processed.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runReport(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress console output (exit code only)")
	rootCmd.PersistentFlags().String("config", ".cssreport.yaml", "Config file path")

	f := rootCmd.Flags()
	f.StringP("output", "o", "", "Report output path (default \"checkstyle.xml\")")
	f.Bool("console", false, "Echo findings to the terminal as well")
	f.Bool("fail-on-issues", false, "Fail the run when any finding exists")
	f.String("severity-format", "raw", "Severity rendering in the report: raw|label")
	f.Bool("allow-empty", false, "Do not warn about empty stylesheets")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// defaultPatterns is used when no patterns are given on the command line
// or in the config file.
var defaultPatterns = []string{"**/*.css"}

func runReport(patterns []string) error {
	if len(patterns) == 0 {
		if configured := k.Strings("report.patterns"); len(configured) > 0 {
			patterns = configured
		} else {
			patterns = defaultPatterns
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	files, err := scanFiles(wd, patterns)
	if err != nil {
		return err
	}

	quiet := k.Bool("quiet")
	severityFormat, err := parseSeverityFormat(k.String("report.severity-format"))
	if err != nil {
		return err
	}

	var streamErr error
	stream, err := cssreport.New(cssreport.Config{
		Engine: cssparse.New(cssparse.Options{
			AllowEmpty: k.Bool("engine.allow-empty"),
		}),
		Output:             k.String("report.output"),
		WorkDir:            wd,
		ReportToConsole:    !quiet && k.Bool("report.console"),
		FailAfterAllErrors: k.Bool("report.fail-on-issues"),
		SeverityFormat:     severityFormat,
		ErrorSink:          func(err error) { streamErr = err },
	})
	if err != nil {
		return err
	}

	// No downstream stage here: drain the pass-through side.
	done := make(chan struct{})
	go func() {
		for range stream.Out() {
		}
		close(done)
	}()

	for _, f := range files {
		stream.Write(f)
	}
	stream.Close()
	<-done

	if streamErr != nil {
		return streamErr
	}
	if !quiet {
		fmt.Printf("✓ Report written to %s (%d files linted)\n", stream.ReportPath(), len(files))
	}
	return nil
}

func parseSeverityFormat(name string) (cssreport.SeverityFormat, error) {
	switch name {
	case "", "raw":
		return cssreport.SeverityRaw, nil
	case "label":
		return cssreport.SeverityLabel, nil
	}
	return cssreport.SeverityRaw, fmt.Errorf("unknown severity format %q (expected raw or label)", name)
}
