/*
 * validate.go, part of stoich.
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
	"unicode"
	"unicode/utf8"
)

//precheck applies the rules that don't need parsing: the formula can't be
//empty or contain white space, and its first letter or digit must be an
//uppercase letter.
func precheck(formula string) error {
	if formula == "" {
		return newFormulaError(formula, 0, ReasonEmpty)
	}
	for i, r := range formula {
		if unicode.IsSpace(r) {
			return newFormulaError(formula, i, ReasonWhitespace)
		}
	}
	for i := 0; i < len(formula); {
		r, size := utf8.DecodeRuneInString(formula[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if r > unicode.MaxASCII || !isUpper(byte(r)) {
				return newFormulaError(formula, i, ReasonLeadingCharacter)
			}
			break
		}
		i += size
	}
	return nil
}

// Check returns nil if formula is valid, and a *FormulaError telling why
// it is not, otherwise. A formula is valid exactly when Decompose can
// build its composition.
func Check(ref Referencer, formula string) error {
	_, err := decompose(ref, formula)
	if err != nil {
		return errDecorate(err, "Check")
	}
	return nil
}

// Validate returns true if formula is a valid formula, with all its symbols in ref.
func Validate(ref Referencer, formula string) bool {
	_, err := decompose(ref, formula)
	return err == nil
}
