/*
 * errors.go, part of stoich.
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

import "fmt"

// Reason tells why a formula is not valid.
type Reason int

const (
	ReasonEmpty            Reason = iota + 1 //the formula is an empty string
	ReasonWhitespace                         //the formula contains white space
	ReasonLeadingCharacter                   //the first letter or digit is not an uppercase letter
	ReasonUnexpected                         //a character that can't appear at that position
	ReasonUnbalanced                         //unclosed, unopened or mismatched brackets
	ReasonEmptyGroup                         //a group with nothing inside, like "()"
	ReasonUnknownSymbol                      //a symbol not present in the periodic table
	ReasonZeroCount                          //a count or multiplier of 0
	ReasonOverflow                           //a count that doesn't fit in 32 bits
)

var reasonText = map[Reason]string{
	ReasonEmpty:            "empty formula",
	ReasonWhitespace:       "formula contains white space",
	ReasonLeadingCharacter: "formula must start with an uppercase letter",
	ReasonUnexpected:       "unexpected character",
	ReasonUnbalanced:       "unbalanced brackets",
	ReasonEmptyGroup:       "empty group",
	ReasonUnknownSymbol:    "unknown element symbol",
	ReasonZeroCount:        "count of zero",
	ReasonOverflow:         "atom count overflow",
}

func (R Reason) String() string {
	if s, ok := reasonText[R]; ok {
		return s
	}
	return fmt.Sprintf("reason(%d)", int(R))
}

// FormulaError is returned when a formula is not valid. Invalid formulas are an
// expected outcome, so FormulaError is never critical.
type FormulaError struct {
	Formula string
	Pos     int //byte offset in Formula where the problem was found
	Reason  Reason
	Symbol  string //the offending symbol, for ReasonUnknownSymbol
	deco    []string
}

func (err *FormulaError) Error() string {
	if err.Reason == ReasonUnknownSymbol {
		return fmt.Sprintf("formula %q: %s %q at position %d", err.Formula, err.Reason, err.Symbol, err.Pos)
	}
	return fmt.Sprintf("formula %q: %s at position %d", err.Formula, err.Reason, err.Pos)
}

// Decorate adds new information to the error
func (err *FormulaError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical always returns false.
func (err *FormulaError) Critical() bool { return false }

func newFormulaError(formula string, pos int, reason Reason) *FormulaError {
	return &FormulaError{Formula: formula, Pos: pos, Reason: reason}
}

// ReferenceError is the error returned when a periodic table can't be loaded.
// Nothing can be computed without a table, so it is always critical.
type ReferenceError struct {
	message  string
	filename string //the source that has problems, or empty string if none.
	deco     []string
	err      error
}

func (err *ReferenceError) Error() string {
	msg := err.message
	if err.err != nil {
		msg = msg + ": " + err.err.Error()
	}
	if err.filename == "" {
		return fmt.Sprintf("periodic table error: %s", msg)
	}
	return fmt.Sprintf("periodic table %s error: %s", err.filename, msg)
}

// Unwrap returns the underlying error, if any.
func (err *ReferenceError) Unwrap() error { return err.err }

// Decorate adds new information to the error
func (err *ReferenceError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file from which the table was being read, if any.
func (err *ReferenceError) FileName() string { return err.filename }

// Critical returns true.
func (err *ReferenceError) Critical() bool { return true }

func newReferenceError(message, filename string, err error, caller string) *ReferenceError {
	return &ReferenceError{message: message, filename: filename, err: err, deco: []string{caller}}
}

const (
	UnableToOpen      = "Unable to open file"
	UnableToCreate    = "Unable to create file"
	CorruptData       = "Can't read the periodic table data"
	MissingElements   = "No \"elements\" list in the periodic table data"
	NoElements        = "The periodic table has no elements"
	DuplicateSymbol   = "Duplicated element symbol"
	MalformedSymbol   = "Malformed element symbol"
	MalformedElement  = "Element with non-positive atomic number or mass"
	UnableToEncode    = "Can't write the periodic table data"
	UnsupportedFormat = "Unsupported compression format"
)
