package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvillar/dqfile/overlay"
)

func newOverlayCmd() *cobra.Command {
	var answersPath, output, watermark string
	var outlines bool

	cmd := &cobra.Command{
		Use:   "overlay [template.pdf]",
		Short: "Draw answers onto a pre-printed application template",
		Long:  `Overlay places each answer at its registry position on a copy of the template. The template pages must match the application's page order.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			tpl, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			in, err := loadAnswers(answersPath)
			if err != nil {
				return err
			}
			var opts []overlay.Option
			if watermark != "" {
				opts = append(opts, overlay.WithWatermark(overlay.Watermark{Text: watermark}))
			}
			if outlines {
				opts = append(opts, overlay.WithOutlines())
			}
			pdf, err := overlay.Render(tpl, in, opts...)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, pdf, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			prog.done("Rendered overlay", "path", output, "bytes", len(pdf))
			return nil
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "answers file (YAML or JSON)")
	cmd.Flags().StringVarP(&output, "out", "o", "overlay.pdf", "output PDF path")
	cmd.Flags().StringVar(&watermark, "watermark", "", "stamp this text diagonally on every page")
	cmd.Flags().BoolVar(&outlines, "outlines", false, "outline every field position")
	return cmd
}

func newMirrorCmd() *cobra.Command {
	var answersPath, output string
	var page int

	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Render one template page with answers as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadAnswers(answersPath)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, func(w io.Writer) error {
				return overlay.Mirror(w, page, in)
			})
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "answers file (YAML or JSON)")
	cmd.Flags().IntVarP(&page, "page", "p", 2, "page number")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output HTML path (default: stdout)")
	return cmd
}

func newGuideCmd() *cobra.Command {
	var output string
	var page int
	var scale float64

	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Draw the registry field boxes of one page as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = fmt.Sprintf("page-%02d.png", page)
			}
			return writeOutput(cmd, output, func(w io.Writer) error {
				return overlay.Guide(w, page, scale)
			})
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 2, "page number")
	cmd.Flags().Float64Var(&scale, "scale", 1.5, "pixels per point")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output PNG path (default: page-NN.png)")
	return cmd
}

// writeOutput runs write against the file at path, or the command's
// output when path is empty or "-".
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Info("Wrote file", "path", path)
	return nil
}

func newMergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge [application.pdf] [attachment.pdf...]",
		Short: "Assemble a qualification file from several PDFs",
		Long:  `Merge concatenates the application and its attachments, such as the motor vehicle record and medical card, into one flat PDF.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(loggerFromContext(cmd.Context()))
			if err := overlay.MergeFiles(output, args...); err != nil {
				return err
			}
			prog.done("Merged documents", "inputs", len(args), "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "dq-file.pdf", "output PDF path")
	return cmd
}
