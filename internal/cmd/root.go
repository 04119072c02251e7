// Package cmd implements the stoich command line interface.
package cmd

import (
	"fmt"
	"log"

	"github.com/rmera/stoich"
	"github.com/rmera/stoich/internal/config"
	"github.com/spf13/cobra"
)

// options holds the flag values of one command tree.
type options struct {
	reference string
	config    string
	workers   int
	verbose   bool
	file      string
	json      bool
	plotDir   string
}

// NewRootCmd builds the stoich command tree.
func NewRootCmd() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:   "stoich [formulas...]",
		Short: "Compute the molecular mass of chemical formulas",
		Long: `stoich computes the molecular mass of one or more formulas and lists
their element composition.

Groups can be written with (), [] or {}, nested, and followed by a multiplier.

Examples:
  stoich H2O 'Mg(OH)2' '(NH4)2SO4'   # masses and compositions
  stoich -f formulas.txt             # one formula per line
  stoich --json 'K4[ON(SO3)2]2'      # JSON reports
  stoich --plot plots C6H12O6        # also draw the mass fractions
  stoich table                       # list the periodic table`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMass(cmd, opts, args)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.reference, "reference", "", "periodic table file (.json, .json.gz or .json.zst)")
	pf.StringVar(&opts.config, "config", "", "TOML configuration file")
	pf.IntVar(&opts.workers, "workers", 0, "goroutines used to analyze the formulas")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log why each invalid formula is not valid")

	f := root.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "text file with one formula per line")
	f.BoolVar(&opts.json, "json", false, "write one JSON report per formula")
	f.StringVar(&opts.plotDir, "plot", "", "directory where mass-fraction plots are written")

	root.AddCommand(newTableCmd(opts), newPipeCmd(opts), newVersionCmd())
	return root
}

// Execute runs the stoich command and returns the exit code.
func Execute() int {
	log.SetFlags(0)
	log.SetPrefix("stoich: ")
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

// env is what every command needs to run: the merged configuration and the periodic table.
type env struct {
	cfg *config.Config
	ref *stoich.Table
}

// loadEnv reads the configuration, applies the flags that were set, and loads the
// periodic table. Failing to load the table is fatal for the whole run.
func loadEnv(cmd *cobra.Command, opts *options) (*env, error) {
	log.SetOutput(cmd.ErrOrStderr())
	cfg, err := config.Load(opts.config)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("reference") {
		cfg.Reference = opts.reference
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("json") && opts.json {
		cfg.Output = config.OutputJSON
	}
	if flags.Changed("plot") {
		cfg.PlotDir = opts.plotDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ref := stoich.DefaultTable()
	if cfg.Reference != "" {
		ref, err = stoich.TableFileRead(cfg.Reference)
		if err != nil {
			return nil, fmt.Errorf("periodic table unavailable: %w", err)
		}
	}
	return &env{cfg: cfg, ref: ref}, nil
}
