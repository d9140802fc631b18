package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssreport.yaml config file",
	Long:  `Create a .cssreport.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssreport.yaml"); err == nil && !force {
			return fmt.Errorf(".cssreport.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssreport.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssreport.yaml")
		return nil
	},
}

const defaultConfig = `# cssreport configuration
# Docs: https://github.com/olegskl/cssreport

# Shared settings
quiet: false

# Report settings
report:
  output: checkstyle.xml
  console: false           # echo findings to the terminal
  fail-on-issues: false    # fail the run when any finding exists
  severity-format: raw     # raw | label
  patterns:
    - "**/*.css"

# Engine settings
engine:
  allow-empty: false       # warn about empty stylesheets
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
