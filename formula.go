/*
 * formula.go, part of stoich.
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

// Formula is a molecular formula bound to a periodic table. Validity,
// composition and mass are computed from the current text each time they
// are requested; nothing is cached.
type Formula struct {
	text string
	ref  Referencer
}

// NewFormula returns a formula with the given text. If ref is nil, the
// embedded periodic table is used.
func NewFormula(ref Referencer, text string) *Formula {
	if ref == nil {
		ref = DefaultTable()
	}
	return &Formula{text: text, ref: ref}
}

// Text returns the formula as given.
func (F *Formula) Text() string {
	return F.text
}

// SetText replaces the text of the formula.
func (F *Formula) SetText(text string) {
	F.text = text
}

func (F *Formula) String() string {
	return F.text
}

// Valid returns true if the formula is valid.
func (F *Formula) Valid() bool {
	return Validate(F.ref, F.text)
}

// Check returns nil if the formula is valid, or a *FormulaError otherwise.
func (F *Formula) Check() error {
	return errDecorate(Check(F.ref, F.text), "Formula.Check")
}

// Composition returns the elements of the formula and their counts, or nil if the
// formula is not valid.
func (F *Formula) Composition() Composition {
	return Decompose(F.ref, F.text)
}

// Mass returns the molecular mass, or 0 if the formula is not valid.
func (F *Formula) Mass() float64 {
	return Mass(F.ref, F.text)
}
