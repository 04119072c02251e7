/*
 * table.go, part of stoich.
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
	"encoding/json"
	"fmt"
	"io"
)

// Element contains the data of one entry of the periodic table.
type Element struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Number int     `json:"number"`      //atomic number
	Mass   float64 `json:"atomic_mass"` //standard atomic weight, in g/mol
	Period int     `json:"period"`
	Group  int     `json:"group"`
}

// Table is an immutable periodic table. It implements Referencer, and it is safe
// to use from several goroutines.
type Table struct {
	elements []*Element
	bySymbol map[string]*Element
}

// NewTable builds a table from the given elements, which must have
// unique, well-formed symbols and positive atomic numbers and masses.
// The table keeps its own copies of the elements.
func NewTable(elements []*Element) (*Table, error) {
	if len(elements) == 0 {
		return nil, newReferenceError(NoElements, "", nil, "NewTable")
	}
	T := &Table{
		elements: make([]*Element, 0, len(elements)),
		bySymbol: make(map[string]*Element, len(elements)),
	}
	for i, v := range elements {
		if v == nil {
			return nil, newReferenceError(CorruptData, "", fmt.Errorf("null element at index %d", i), "NewTable")
		}
		if !wellFormedSymbol(v.Symbol) {
			return nil, newReferenceError(MalformedSymbol, "", fmt.Errorf("%q at index %d", v.Symbol, i), "NewTable")
		}
		if v.Number <= 0 || v.Mass <= 0 {
			return nil, newReferenceError(MalformedElement, "", fmt.Errorf("%s", v.Symbol), "NewTable")
		}
		if _, ok := T.bySymbol[v.Symbol]; ok {
			return nil, newReferenceError(DuplicateSymbol, "", fmt.Errorf("%s", v.Symbol), "NewTable")
		}
		e := *v
		T.elements = append(T.elements, &e)
		T.bySymbol[e.Symbol] = &e
	}
	return T, nil
}

// A symbol has the same shape the formula parser reads: one uppercase
// letter and then only lowercase letters.
func wellFormedSymbol(s string) bool {
	if s == "" || !isUpper(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isLower(s[i]) {
			return false
		}
	}
	return true
}

// Element returns the element with the given symbol. The match is case-sensitive.
func (T *Table) Element(symbol string) (*Element, bool) {
	e, ok := T.bySymbol[symbol]
	return e, ok
}

// Elements returns the elements of the table in the order they were loaded.
// The elements must not be modified.
func (T *Table) Elements() []*Element {
	ret := make([]*Element, len(T.elements))
	copy(ret, T.elements)
	return ret
}

// Len returns the number of elements in the table.
func (T *Table) Len() int {
	return len(T.elements)
}

type jsonTable struct {
	Elements []*Element `json:"elements"`
}

// ReadTable reads a periodic table in JSON format from r. The data must be an object
// with an "elements" key holding a list of elements.
func ReadTable(r io.Reader) (*Table, error) {
	raw := new(jsonTable)
	if err := json.NewDecoder(r).Decode(raw); err != nil {
		return nil, newReferenceError(CorruptData, "", err, "ReadTable")
	}
	if raw.Elements == nil {
		return nil, newReferenceError(MissingElements, "", nil, "ReadTable")
	}
	T, err := NewTable(raw.Elements)
	if err != nil {
		return nil, errDecorate(err, "ReadTable")
	}
	return T, nil
}

// WriteTable writes T to w in the same JSON format ReadTable reads.
func (T *Table) WriteTable(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonTable{Elements: T.elements}); err != nil {
		return newReferenceError(UnableToEncode, "", err, "WriteTable")
	}
	return nil
}
