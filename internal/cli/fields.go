package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lvillar/dqfile"
	"github.com/lvillar/dqfile/reader"
	"github.com/lvillar/dqfile/registry"
)

func newFieldsCmd() *cobra.Command {
	var page int
	var asJSON, required bool

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the field registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if asJSON {
				return registry.ExportPage(w, page)
			}
			defs := registry.Fields()
			if page > 0 {
				defs = registry.FieldsForPage(page)
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PAGE\tID\tTYPE\tREQ\tFORMAT\tLABEL")
			for _, d := range defs {
				if required && !d.Required {
					continue
				}
				req := ""
				if d.Required {
					req = "yes"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", d.Page, d.ID, d.Type, req, d.Format, d.Label)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 0, "only list fields on this page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON in percent coordinates")
	cmd.Flags().BoolVar(&required, "required", false, "only list required fields")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var values bool

	cmd := &cobra.Command{
		Use:   "inspect [file.pdf]",
		Short: "Show the pages and form fields of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			doc, err := reader.Open(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			meta := doc.Metadata()
			fmt.Fprintf(w, "PDF %s, %d pages\n", doc.Version, doc.NumPages())
			for _, k := range []string{"Title", "Author", "Keywords"} {
				if v := meta[k]; v != "" {
					fmt.Fprintf(w, "%s: %s\n", k, v)
				}
			}

			tree, err := doc.FormFields()
			if err != nil {
				return err
			}
			leaves := reader.Leaves(tree)
			byPage := make(map[int]int)
			for _, f := range leaves {
				byPage[f.Page]++
			}
			fmt.Fprintf(w, "%d form fields\n", len(leaves))
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PAGE\tSECTION\tFIELDS")
			for n := 1; n <= doc.NumPages(); n++ {
				name := ""
				if doc.NumPages() == dqfile.TotalPages() {
					if p, ok := dqfile.SectionForPage(n); ok {
						name = p.Section
					}
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\n", n, name, byPage[n])
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if values {
				for _, f := range leaves {
					if f.Value != "" && f.Value != "Off" {
						fmt.Fprintf(w, "%s = %s\n", f.FullName, f.Value)
					}
				}
			}
			logger.Debug("inspected", "path", args[0], "fields", len(leaves))
			return nil
		},
	}

	cmd.Flags().BoolVar(&values, "values", false, "print the fields that have a value")
	return cmd
}
