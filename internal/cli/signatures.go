package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lvillar/dqfile/form"
)

func newSignaturesCmd() *cobra.Command {
	var asJSON, unsigned bool

	cmd := &cobra.Command{
		Use:   "signatures [file.pdf]",
		Short: "Report which signature fields of an application are signed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sigs, err := form.Signatures(data)
			if err != nil {
				return err
			}
			if unsigned {
				var only []form.Signature
				for _, s := range sigs {
					if !s.Signed {
						only = append(only, s)
					}
				}
				sigs = only
			}
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(sigs)
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PAGE\tFIELD\tSIGNED\tSIGNER")
			for _, s := range sigs {
				state := "no"
				switch {
				case s.Digital && len(s.Errors) > 0:
					state = "digital, " + s.Errors[0]
				case s.Digital:
					state = "digital"
				case s.Signed:
					state = "typed"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Page, s.Name, state, s.Signer)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON")
	cmd.Flags().BoolVar(&unsigned, "unsigned", false, "only list fields that are not signed")
	return cmd
}
