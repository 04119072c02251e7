/*
 * decompose.go, part of stoich.
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

import "math"

//mulCount and addCount fail instead of wrapping around.
func mulCount(a, b uint32) (uint32, bool) {
	r := uint64(a) * uint64(b)
	return uint32(r), r <= math.MaxUint32
}

func addCount(a, b uint32) (uint32, bool) {
	r := uint64(a) + uint64(b)
	return uint32(r), r <= math.MaxUint32
}

//composer accumulates the atoms of one formula. Each decomposition
//uses its own composer.
type composer struct {
	t     *tree
	ref   Referencer
	comp  Composition
	index map[string]int
}

// flatten walks the tree, multiplying the counts of each atom by the
// multipliers of all the groups that contain it.
func (t *tree) flatten(ref Referencer) (Composition, error) {
	c := &composer{t: t, ref: ref, index: make(map[string]int)}
	if err := c.walk(t.root, 1); err != nil {
		return nil, err
	}
	return c.comp, nil
}

func (c *composer) walk(items []int, multiplier uint32) error {
	for _, i := range items {
		n := &c.t.nodes[i]
		total, ok := mulCount(n.count, multiplier)
		if !ok {
			return newFormulaError(c.t.text, n.start, ReasonOverflow)
		}
		if n.kind == groupNode {
			if err := c.walk(n.children, total); err != nil {
				return err
			}
			continue
		}
		symbol := c.t.symbol(n)
		if k, ok := c.index[symbol]; ok {
			sum, ok := addCount(c.comp[k].Count, total)
			if !ok {
				return newFormulaError(c.t.text, n.start, ReasonOverflow)
			}
			c.comp[k].Count = sum
			continue
		}
		e, ok := c.ref.Element(symbol)
		if !ok {
			err := newFormulaError(c.t.text, n.start, ReasonUnknownSymbol)
			err.Symbol = symbol
			return err
		}
		c.index[symbol] = len(c.comp)
		c.comp = append(c.comp, Entry{Element: e, Count: total})
	}
	return nil
}

//decompose is Check and Decompose in one go.
func decompose(ref Referencer, formula string) (Composition, error) {
	if err := precheck(formula); err != nil {
		return nil, err
	}
	t, err := parse(formula)
	if err != nil {
		return nil, err
	}
	return t.flatten(ref)
}

// Decompose returns the composition of formula, using ref to find the elements.
// Nested groups are expanded, so every atom is counted with the product of the
// multipliers of all the groups around it. The composition is empty (nil) if the
// formula is not valid.
func Decompose(ref Referencer, formula string) Composition {
	c, err := decompose(ref, formula)
	if err != nil {
		return nil
	}
	return c
}

// Mass returns the molecular mass of formula, or 0 if the formula is not valid.
func Mass(ref Referencer, formula string) float64 {
	return Decompose(ref, formula).Mass()
}
