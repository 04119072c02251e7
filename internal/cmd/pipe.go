package cmd

import (
	"bufio"
	"fmt"

	"github.com/rmera/stoich"
	"github.com/rmera/stoich/chemjson"
	"github.com/spf13/cobra"
)

func newPipeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pipe",
		Short: "Analyze formulas requested as JSON on stdin",
		Long: `Read one JSON request from stdin, in one line:

  {"formulas": ["H2O", "Mg(OH)2"], "workers": 2}

and write one JSON report per formula to stdout, in the same order.
If the request can't be read, a JSON error is written instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			req, jerr := chemjson.DecodeRequest(bufio.NewReader(cmd.InOrStdin()))
			if jerr != nil {
				fmt.Fprintln(out, string(jerr.Marshal()))
				return jerr
			}
			workers := req.Workers
			if workers == 0 {
				workers = e.cfg.Workers
			}
			results := stoich.AnalyzeBatch(e.ref, req.Formulas, workers)
			if jerr := chemjson.SendResults(results, out); jerr != nil {
				return jerr
			}
			return nil
		},
	}
}
