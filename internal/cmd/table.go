package cmd

import (
	"fmt"
	"io"

	"github.com/rmera/stoich"
	"github.com/spf13/cobra"
)

func newTableCmd(opts *options) *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List the elements in the periodic table",
		Long: `List the elements of the periodic table in use: the built-in one, or
the one given with --reference or in the configuration file.

With --export, the table is also written to a file, compressed according to
its extension (.gz or .zst), so it can be edited and given back with --reference.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}
			writeTable(cmd.OutOrStdout(), e.ref)
			if export != "" {
				if err := stoich.TableFileWrite(export, e.ref); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "also write the table to this file")
	return cmd
}

func writeTable(out io.Writer, T *stoich.Table) {
	const format = "%-10v %-10v %-20v %20v %10v %10v\n"
	fmt.Fprintf(out, "\n%s\n\n", banner())
	fmt.Fprintf(out, format, "Atomic #", "Symbol", "Name", "Mass", "Period", "Group")
	fmt.Fprintf(out, format, "--------", "------", "----", "----", "------", "-----")
	for _, v := range T.Elements() {
		fmt.Fprintf(out, format, v.Number, v.Symbol, v.Name, v.Mass, v.Period, v.Group)
	}
}
