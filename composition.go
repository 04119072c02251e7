/*
 * composition.go, part of stoich.
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

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Entry is one element of a composition, with the total number of
// atoms of that element in the formula.
type Entry struct {
	*Element
	Count uint32
}

// Subtotal returns the mass contributed by the entry, i.e. Count times the atomic mass.
func (E Entry) Subtotal() float64 {
	return float64(E.Count) * E.Mass
}

// Composition is the flat list of elements in a formula. Each element
// appears once, in the order of its first appearance in the formula.
type Composition []Entry

// Len returns the number of different elements in the composition
func (C Composition) Len() int {
	return len(C)
}

// Count returns the number of atoms with the given symbol, 0 if there are none.
func (C Composition) Count(symbol string) uint32 {
	for _, v := range C {
		if v.Symbol == symbol {
			return v.Count
		}
	}
	return 0
}

// Atoms returns the total number of atoms.
func (C Composition) Atoms() uint64 {
	var n uint64
	for _, v := range C {
		n += uint64(v.Count)
	}
	return n
}

//counts and masses as float slices, for gonum.
func (C Composition) vectors() (counts, masses []float64) {
	counts = make([]float64, len(C))
	masses = make([]float64, len(C))
	for i, v := range C {
		counts[i] = float64(v.Count)
		masses[i] = v.Mass
	}
	return counts, masses
}

// Mass returns the molecular mass: the sum over the entries of count times atomic mass.
// The mass of an empty composition is 0.
func (C Composition) Mass() float64 {
	if len(C) == 0 {
		return 0
	}
	return floats.Dot(C.vectors())
}

// Fractions returns, for each entry, the fraction of the total mass
// contributed by that entry. The fractions add up to 1. It returns nil
// for an empty composition.
func (C Composition) Fractions() []float64 {
	if len(C) == 0 {
		return nil
	}
	counts, masses := C.vectors()
	floats.Mul(masses, counts)
	floats.Scale(1/floats.Sum(masses), masses)
	return masses
}

// String returns the composition as a condensed formula, e.g. CH4O for CH3OH,
// with the elements in composition order.
func (C Composition) String() string {
	var b strings.Builder
	for _, v := range C {
		b.WriteString(v.Symbol)
		if v.Count != 1 {
			b.WriteString(strconv.FormatUint(uint64(v.Count), 10))
		}
	}
	return b.String()
}

// Equal returns true if C and D have the same elements with the same counts,
// regardless of the order.
func (C Composition) Equal(D Composition) bool {
	if len(C) != len(D) {
		return false
	}
	for _, v := range C {
		if D.Count(v.Symbol) != v.Count {
			return false
		}
	}
	return true
}
