/*
 * composition.go, part of stoich
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

//Package chemplot draws the mass composition of formulas, using gonum/plot.
package chemplot

import (
	"fmt"

	"github.com/rmera/stoich"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// DefaultWidth and DefaultHeight are the plot sizes used when zero sizes are given.
const (
	DefaultWidth  = 12 * vg.Centimeter
	DefaultHeight = 9 * vg.Centimeter
)

func basicCompositionPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Element"
	p.Y.Label.Text = "Mass fraction"
	//Constant axis
	p.Y.Min = 0
	p.Y.Max = 1
	p.Add(plotter.NewGrid())
	return p
}

// CompositionBars builds a bar plot with the fraction of the mass of comp
// contributed by each element. Each element gets its own color.
func CompositionBars(comp stoich.Composition, title string) (*plot.Plot, error) {
	if len(comp) == 0 {
		return nil, fmt.Errorf("chemplot: given empty composition")
	}
	p := basicCompositionPlot(title)
	fractions := comp.Fractions()
	names := make([]string, len(comp))
	width := vg.Points(20)
	for i, v := range comp {
		bar, err := plotter.NewBarChart(plotter.Values{fractions[i]}, width)
		if err != nil {
			return nil, fmt.Errorf("chemplot: bar for %s: %w", v.Symbol, err)
		}
		bar.XMin = float64(i)
		bar.Color = colors(i, len(comp))
		bar.LineStyle.Width = vg.Length(0)
		p.Add(bar)
		names[i] = fmt.Sprintf("%s%d", v.Symbol, v.Count)
	}
	p.NominalX(names...)
	return p, nil
}

// CompositionPlot draws the mass fractions of comp and saves them to plotname.png.
// Zero sizes are replaced by DefaultWidth and DefaultHeight.
func CompositionPlot(comp stoich.Composition, title, plotname string, width, height vg.Length) error {
	p, err := CompositionBars(comp, title)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	// Save the plot to a PNG file.
	filename := plotname + ".png"
	if err := p.Save(width, height, filename); err != nil {
		return fmt.Errorf("chemplot: saving %s: %w", filename, err)
	}
	return nil
}
