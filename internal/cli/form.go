package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvillar/dqfile"
	"github.com/lvillar/dqfile/form"
	"github.com/lvillar/dqfile/overlay"
)

func newFillCmd() *cobra.Command {
	var answersPath, output string

	cmd := &cobra.Command{
		Use:   "fill [file.pdf]",
		Short: "Set form field values in an application PDF",
		Long:  `Fill writes the answers into the matching form fields of an existing PDF. Check boxes accept true/false, yes/no or Yes/Off.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			in, err := loadAnswers(answersPath)
			if err != nil {
				return err
			}
			values := in.Strings()
			if err := form.FillFile(args[0], output, values); err != nil {
				return err
			}
			prog.done("Filled form", "path", output, "values", len(values))
			return nil
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "answers file (YAML or JSON)")
	cmd.Flags().StringVarP(&output, "out", "o", "filled.pdf", "output PDF path")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func newFlattenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "flatten [file.pdf]",
		Short: "Draw field values into the pages and remove the form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			if err := form.FlattenFile(args[0], output); err != nil {
				return err
			}
			prog.done("Flattened form", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "flat.pdf", "output PDF path")
	return cmd
}

func newExtractCmd() *cobra.Command {
	var name, output string

	cmd := &cobra.Command{
		Use:   "extract [application.pdf]",
		Short: "Copy one section of an application into its own PDF",
		Long:  `Extract copies the pages of a section, such as authorizations or inquiries, out of a generated application. Run "dqfile extract --list" for the section names.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || len(args) == 0 {
				w := cmd.OutOrStdout()
				for _, p := range dqfile.Layout() {
					fmt.Fprintf(w, "%-15s pages %2d-%-2d  %s\n", p.Section, p.First, p.Last, p.Title)
				}
				return nil
			}
			place, ok := findPlacement(name)
			if !ok {
				return fmt.Errorf("unknown section %q", name)
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			pdf, err := overlay.Extract(data, place.First, place.Last)
			if err != nil {
				return err
			}
			if output == "" {
				output = place.Section + ".pdf"
			}
			if err := os.WriteFile(output, pdf, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			prog.done("Extracted section", "section", place.Section, "pages", place.Last-place.First+1, "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "section", "s", "", "section name; omit to list the sections")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output PDF path (default: <section>.pdf)")
	return cmd
}

func findPlacement(name string) (dqfile.Placement, bool) {
	for _, p := range dqfile.Layout() {
		if p.Section == name {
			return p, true
		}
	}
	return dqfile.Placement{}, false
}
