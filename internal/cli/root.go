// Package cli implements the dqfile command-line interface.
//
// Commands generate the driver application, validate answer files against
// the field registry, inspect, fill and flatten generated PDFs, render
// answers onto a pre-printed template and serve the same operations over
// MCP. All commands support --verbose (-v) for debug logging; the logger
// travels in the command context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, set with SetVersion
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version. main
// calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// Execute runs the dqfile CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Logs go to stderr; command
// output goes to the command's output stream.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "dqfile",
		Short:         "dqfile builds DOT driver employment applications",
		Long:          `dqfile generates the 25-page DOT/FMCSR driver employment application as a fillable PDF, validates applicant answers and overlays them onto pre-printed templates.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dqfile %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newFieldsCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newFillCmd())
	root.AddCommand(newFlattenCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newMergeCmd())
	root.AddCommand(newSignaturesCmd())
	root.AddCommand(newOverlayCmd())
	root.AddCommand(newMirrorCmd())
	root.AddCommand(newGuideCmd())
	root.AddCommand(newMCPCmd())

	return root
}
