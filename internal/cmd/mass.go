package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/stoich"
	"github.com/rmera/stoich/chemjson"
	"github.com/rmera/stoich/chemplot"
	"github.com/rmera/stoich/internal/config"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

func runMass(cmd *cobra.Command, opts *options, args []string) error {
	if len(args) == 0 && opts.file == "" {
		return cmd.Help()
	}
	e, err := loadEnv(cmd, opts)
	if err != nil {
		return err
	}
	formulas := append([]string(nil), args...)
	if opts.file != "" {
		lines, err := readFormulaFile(opts.file)
		if err != nil {
			return err
		}
		formulas = append(formulas, lines...)
	}
	results := stoich.AnalyzeBatch(e.ref, formulas, e.cfg.Workers)
	if opts.verbose {
		for _, r := range results {
			if !r.Valid() {
				log.Print(r.Err)
			}
		}
	}
	out := cmd.OutOrStdout()
	if e.cfg.Output == config.OutputJSON {
		if jerr := chemjson.SendResults(results, out); jerr != nil {
			return jerr
		}
	} else {
		writeMasses(out, results)
	}
	if e.cfg.PlotDir != "" {
		plotResults(results, e.cfg)
	}
	return nil
}

// readFormulaFile returns the formulas in a text file, one per line.
// Empty lines are skipped.
func readFormulaFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading formulas: %w", err)
	}
	defer f.Close()
	var formulas []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		formulas = append(formulas, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading formulas from %s: %w", path, err)
	}
	return formulas, nil
}

func writeMasses(out io.Writer, results []stoich.Result) {
	fmt.Fprintf(out, "\n%s\n", banner())
	for _, r := range results {
		if !r.Valid() {
			fmt.Fprintf(out, "\n%s is NOT valid\n", r.Formula)
			continue
		}
		fmt.Fprintf(out, "\n%s has a mass of %v\n\n", r.Formula, r.Mass)
		for _, v := range r.Composition {
			fmt.Fprintf(out, "%10s %-40s %v x %d = %v\n", v.Symbol, v.Name, v.Mass, v.Count, v.Subtotal())
		}
	}
}

var fileNameReplacer = strings.NewReplacer("(", "_", ")", "_", "[", "_", "]", "_", "{", "_", "}", "_", "/", "_")

// plotResults draws the mass fractions of every valid formula. Plots are a side
// output: failures are logged and don't stop the run.
func plotResults(results []stoich.Result, cfg *config.Config) {
	if err := os.MkdirAll(cfg.PlotDir, 0o755); err != nil {
		log.Printf("can't create plot directory: %v", err)
		return
	}
	width := vg.Length(cfg.PlotWidthCm) * vg.Centimeter
	height := vg.Length(cfg.PlotHeightCm) * vg.Centimeter
	for i, r := range results {
		if !r.Valid() {
			continue
		}
		name := filepath.Join(cfg.PlotDir, fmt.Sprintf("%03d_%s", i, fileNameReplacer.Replace(r.Formula)))
		if err := chemplot.CompositionPlot(r.Composition, r.Formula, name, width, height); err != nil {
			log.Printf("plot for %s: %v", r.Formula, err)
		}
	}
}
