package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lvillar/dqfile"
	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/registry"
)

// ErrInvalid is returned by validate when the answers fail a check.
var ErrInvalid = errors.New("answers are not valid")

// loadAnswers reads an answers file, or returns empty answers for "".
func loadAnswers(path string) (answers.Answers, error) {
	if path == "" {
		return answers.Answers{}, nil
	}
	return answers.Load(path)
}

// generateOptions builds Generate options from a config file and flags.
func generateOptions(configPath, control string, logger *log.Logger) ([]dqfile.Option, error) {
	opts := []dqfile.Option{dqfile.WithLogger(logger)}
	if configPath != "" {
		cfg, err := dqfile.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		fromConfig, err := cfg.Options()
		if err != nil {
			return nil, err
		}
		opts = append(opts, fromConfig...)
		logger.Debug("loaded config", "path", configPath, "company", cfg.Company.Name)
	}
	if control != "" {
		opts = append(opts, dqfile.WithControlNumber(control))
	}
	return opts, nil
}

func newGenerateCmd() *cobra.Command {
	var answersPath, configPath, output, control string
	var strict bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the driver application PDF",
		Long:  `Generate the 25-page driver employment application as a fillable PDF, prefilled with the answers file if one is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			in, err := loadAnswers(answersPath)
			if err != nil {
				return err
			}
			if strict {
				if err := checkAnswers(cmd, in); err != nil {
					return err
				}
			}
			opts, err := generateOptions(configPath, control, logger)
			if err != nil {
				return err
			}
			pdf, err := dqfile.Generate(ctx, in, opts...)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, pdf, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			prog.done("Wrote application", "path", output, "bytes", len(pdf))
			return nil
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "answers file (YAML or JSON)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "carrier config file (TOML)")
	cmd.Flags().StringVarP(&output, "out", "o", "application.pdf", "output PDF path")
	cmd.Flags().StringVar(&control, "control", "", "document control number (default: random UUID)")
	cmd.Flags().BoolVar(&strict, "strict", false, "refuse to generate when answers fail validation")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var answersPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check an answers file for missing and malformed values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadAnswers(answersPath)
			if err != nil {
				return err
			}
			if err := checkAnswers(cmd, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "answers are valid")
			return nil
		},
	}

	cmd.Flags().StringVarP(&answersPath, "answers", "a", "", "answers file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

// checkAnswers prints every missing required field and format error and
// returns ErrInvalid when there are any.
func checkAnswers(cmd *cobra.Command, in answers.Answers) error {
	w := cmd.OutOrStdout()
	r := registry.ValidateFields(in)
	formats := registry.CheckFormats(in)
	for _, m := range r.Missing {
		fmt.Fprintf(w, "missing: %s\n", m)
	}
	for _, fe := range formats {
		fmt.Fprintf(w, "invalid: %s\n", fe.Error())
	}
	if !r.Valid || len(formats) > 0 {
		return fmt.Errorf("%w: %d missing, %d malformed", ErrInvalid, len(r.Missing), len(formats))
	}
	return nil
}
