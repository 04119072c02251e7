/*
 * batch.go, part of stoich.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package stoich

import "sync"

// Result is the analysis of one formula.
type Result struct {
	Formula     string
	Composition Composition //nil if the formula is not valid
	Mass        float64     //0 if the formula is not valid
	Err         error       //nil if the formula is valid, a *FormulaError otherwise
}

// Valid returns true if the analyzed formula was valid.
func (R Result) Valid() bool {
	return R.Err == nil
}

// Analyze validates and decomposes one formula.
func Analyze(ref Referencer, formula string) Result {
	c, err := decompose(ref, formula)
	if err != nil {
		return Result{Formula: formula, Err: errDecorate(err, "Analyze")}
	}
	return Result{Formula: formula, Composition: c, Mass: c.Mass()}
}

// AnalyzeBatch analyzes all the formulas using up to workers goroutines. The results
// are returned in the same order as the formulas. An invalid formula doesn't
// affect the others. workers < 1 is taken as 1.
func AnalyzeBatch(ref Referencer, formulas []string, workers int) []Result {
	results := make([]Result, len(formulas))
	if workers < 1 {
		workers = 1
	}
	if workers > len(formulas) {
		workers = len(formulas)
	}
	jobs := make(chan int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = Analyze(ref, formulas[i]) //each index is written by only one goroutine
			}
		}()
	}
	for i := range formulas {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
