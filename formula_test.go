/*
 * formula_test.go, part of stoich.
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
 */

package stoich

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

//fakeRef is a tiny periodic table, so the tests don't depend on the embedded one.
type fakeRef map[string]*Element

func (f fakeRef) Element(symbol string) (*Element, bool) {
	e, ok := f[symbol]
	return e, ok
}

func newFakeRef() fakeRef {
	f := fakeRef{}
	for i, v := range []struct {
		s string
		m float64
	}{{"H", 1.008}, {"C", 12.011}, {"N", 14.007}, {"O", 15.999}, {"S", 32.06}, {"K", 39.098}, {"Mg", 24.305}, {"Co", 58.933}} {
		f[v.s] = &Element{Symbol: v.s, Name: "el" + v.s, Number: i + 1, Mass: v.m, Period: 1, Group: 1}
	}
	return f
}

type count struct {
	s string
	n uint32
}

func sameOrder(Te *testing.T, formula string, comp Composition, expected []count) {
	Te.Helper()
	if len(comp) != len(expected) {
		Te.Errorf("%s: got %d elements (%s), expected %d", formula, len(comp), comp, len(expected))
		return
	}
	for i, v := range expected {
		if comp[i].Symbol != v.s || comp[i].Count != v.n {
			Te.Errorf("%s: entry %d is %s%d, expected %s%d", formula, i, comp[i].Symbol, comp[i].Count, v.s, v.n)
		}
	}
}

func TestDecompose(Te *testing.T) {
	ref := newFakeRef()
	cases := []struct {
		formula  string
		expected []count
	}{
		{"H2O", []count{{"H", 2}, {"O", 1}}},
		{"Mg(OH)2", []count{{"Mg", 1}, {"O", 2}, {"H", 2}}},
		{"C6H12O6", []count{{"C", 6}, {"H", 12}, {"O", 6}}},
		{"(NH4)2SO4", []count{{"N", 2}, {"H", 8}, {"S", 1}, {"O", 4}}},
		{"K4[ON(SO3)2]2", []count{{"K", 4}, {"O", 14}, {"N", 2}, {"S", 4}}},
		{"(CH3)2(OH)2", []count{{"C", 2}, {"H", 8}, {"O", 2}}},
		{"(CH3)(CH2)3(OH)", []count{{"C", 4}, {"H", 10}, {"O", 1}}},
		{"((H))", []count{{"H", 1}}},
		{"{[(H2)3]2}2O", []count{{"H", 24}, {"O", 1}}},
		{"CH3CH2OH", []count{{"C", 2}, {"H", 6}, {"O", 1}}},
		{"H02", []count{{"H", 2}}},
		{"CO", []count{{"C", 1}, {"O", 1}}},
		{"Co", []count{{"Co", 1}}},
		{"CoCO", []count{{"Co", 1}, {"C", 1}, {"O", 1}}},
	}
	for _, c := range cases {
		comp := Decompose(ref, c.formula)
		sameOrder(Te, c.formula, comp, c.expected)
	}
}

func TestInvalid(Te *testing.T) {
	ref := newFakeRef()
	cases := []struct {
		formula string
		reason  Reason
		pos     int
	}{
		{"", ReasonEmpty, 0},
		{"H2 O", ReasonWhitespace, 2},
		{"H2O\n", ReasonWhitespace, 3},
		{"2H", ReasonLeadingCharacter, 0},
		{"h2o", ReasonLeadingCharacter, 0},
		{"(2H)", ReasonLeadingCharacter, 1},
		{"H2o", ReasonUnexpected, 2},
		{"H2O!", ReasonUnexpected, 3},
		{"H2(3O)", ReasonUnexpected, 3},
		{"(H2O", ReasonUnbalanced, 0},
		{"H2O)", ReasonUnbalanced, 3},
		{"(H2O]", ReasonUnbalanced, 4},
		{"Mg(OH))2", ReasonUnbalanced, 6},
		{"()", ReasonEmptyGroup, 0},
		{"H()", ReasonEmptyGroup, 1},
		{"H0", ReasonZeroCount, 1},
		{"(OH)0", ReasonZeroCount, 4},
		{"Xx2", ReasonUnknownSymbol, 0},
		{"Cox", ReasonUnknownSymbol, 0},
		{"HCl", ReasonUnknownSymbol, 1},
		{"H4294967296", ReasonOverflow, 1},
		{"H4294967295H", ReasonOverflow, 11},
		{"(H65536)65536", ReasonOverflow, 1},
	}
	for _, c := range cases {
		if Validate(ref, c.formula) {
			Te.Errorf("%q should not be valid", c.formula)
			continue
		}
		if comp := Decompose(ref, c.formula); len(comp) != 0 {
			Te.Errorf("%q: invalid formula gave a composition: %s", c.formula, comp)
		}
		if m := Mass(ref, c.formula); m != 0 {
			Te.Errorf("%q: invalid formula has mass %v", c.formula, m)
		}
		err := Check(ref, c.formula)
		var ferr *FormulaError
		if !errors.As(err, &ferr) {
			Te.Errorf("%q: expected a *FormulaError, got %v", c.formula, err)
			continue
		}
		if ferr.Reason != c.reason || ferr.Pos != c.pos {
			Te.Errorf("%q: got %s at %d, expected %s at %d", c.formula, ferr.Reason, ferr.Pos, c.reason, c.pos)
		}
		if ferr.Critical() {
			Te.Errorf("%q: a formula error must not be critical", c.formula)
		}
	}
}

func TestUnknownSymbolMessage(Te *testing.T) {
	err := Check(newFakeRef(), "Xx2")
	if err == nil || !strings.Contains(err.Error(), `"Xx"`) {
		Te.Errorf("The error should name the symbol, got: %v", err)
	}
	ferr := err.(*FormulaError)
	deco := ferr.Decorate("")
	if len(deco) == 0 || deco[0] != "Check" {
		Te.Errorf("Unexpected decoration: %v", deco)
	}
	fmt.Println(err, deco)
}

// Any formula with unequal numbers of opening and closing brackets is invalid.
func TestBracketBalance(Te *testing.T) {
	ref := newFakeRef()
	valid := []string{"Mg(OH)2", "(NH4)2SO4", "K4[ON(SO3)2]2", "(CH3)2(OH)2", "{[(H2)3]2}2O"}
	for _, f := range valid {
		if !Validate(ref, f) {
			Te.Fatalf("%q should be valid", f)
		}
		for i := 0; i < len(f); i++ {
			if strings.IndexByte("()[]{}", f[i]) < 0 {
				continue
			}
			removed := f[:i] + f[i+1:]
			if Validate(ref, removed) {
				Te.Errorf("%q (from %q) has unbalanced brackets but was accepted", removed, f)
			}
			added := f[:i] + f[i:i+1] + f[i:]
			if Validate(ref, added) {
				Te.Errorf("%q (from %q) has unbalanced brackets but was accepted", added, f)
			}
		}
	}
}

func relEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func TestMass(Te *testing.T) {
	ref := newFakeRef()
	h, o, mg := ref["H"].Mass, ref["O"].Mass, ref["Mg"].Mass
	if m := Mass(ref, "H2O"); !relEqual(m, 2*h+o) {
		Te.Errorf("H2O: got %v, expected %v", m, 2*h+o)
	}
	if m := Mass(ref, "(H2O)3"); !relEqual(m, 3*Mass(ref, "H2O")) {
		Te.Errorf("(H2O)3: got %v, expected %v", m, 3*Mass(ref, "H2O"))
	}
	exp := Mass(ref, "Mg") + 2*Mass(ref, "O") + 2*Mass(ref, "H")
	if m := Mass(ref, "Mg(OH)2"); !relEqual(m, exp) || !relEqual(m, mg+2*o+2*h) {
		Te.Errorf("Mg(OH)2: got %v, expected %v", m, exp)
	}
	for _, f := range []string{"H2O", "(NH4)2SO4", "K4[ON(SO3)2]2", "C6H12O6", "CoCO"} {
		comp := Decompose(ref, f)
		var sum float64
		for _, v := range comp {
			sum += float64(v.Count) * v.Element.Mass
		}
		if m := Mass(ref, f); !relEqual(m, sum) {
			Te.Errorf("%s: mass %v is not the sum over the composition, %v", f, m, sum)
		}
	}
}

// The scenarios with the real periodic table.
func TestDefaultTableScenarios(Te *testing.T) {
	ref := DefaultTable()
	m := Mass(ref, "H2O")
	if math.Abs(m-18.015) > 1e-9 {
		Te.Errorf("H2O should weigh 18.015, got %v", m)
	}
	fmt.Println("H2O", m)
	for _, f := range []string{"H2O", "Mg(OH)2", "C6H12O6", "(NH4)2SO4", "K4[ON(SO3)2]2", "Ca3(PO4)2", "Fe2(SO4)3"} {
		if !Validate(ref, f) {
			Te.Errorf("%s should be valid", f)
		}
	}
	for _, f := range []string{"Xx2", "H2 O", "Ab", "HCL"} {
		if Validate(ref, f) {
			Te.Errorf("%s should not be valid", f)
		}
	}
	comp := Decompose(ref, "(NH4)2SO4")
	if comp.Count("N") != 2 || comp.Count("H") != 8 || comp.Count("S") != 1 || comp.Count("O") != 4 {
		Te.Errorf("Wrong composition for (NH4)2SO4: %s", comp)
	}
	//With the whole table, HCl is hydrogen and chlorine.
	sameOrder(Te, "HCl", Decompose(ref, "HCl"), []count{{"H", 1}, {"Cl", 1}})
}

func TestIdempotence(Te *testing.T) {
	ref := newFakeRef()
	for _, f := range []string{"K4[ON(SO3)2]2", "(CH3)2(OH)2", "C6H12O6"} {
		a := Decompose(ref, f)
		b := Decompose(ref, f)
		if !a.Equal(b) || a.String() != b.String() {
			Te.Errorf("%s: decompositions differ: %s %s", f, a, b)
		}
		//a result must not share state with the next one.
		a[0].Count += 100
		c := Decompose(ref, f)
		if !c.Equal(b) {
			Te.Errorf("%s: a previous composition leaked into a new one: %s %s", f, c, b)
		}
	}
}

func TestAllSymbolsKnown(Te *testing.T) {
	ref := DefaultTable()
	for _, f := range []string{"Mg(OH)2", "K4[ON(SO3)2]2", "Ca3(PO4)2", "CuSO4(H2O)5", "Og"} {
		comp := Decompose(ref, f)
		if len(comp) == 0 {
			Te.Errorf("%s gave an empty composition", f)
		}
		for _, v := range comp {
			if _, ok := ref.Element(v.Symbol); !ok || v.Count < 1 {
				Te.Errorf("%s: bad entry %s %d", f, v.Symbol, v.Count)
			}
		}
	}
}

func TestFormula(Te *testing.T) {
	F := NewFormula(nil, "H2O")
	if !F.Valid() || F.Check() != nil {
		Te.Fatalf("H2O should be valid")
	}
	before := F.Mass()
	F.SetText("(H2O)2")
	if F.Text() != "(H2O)2" || F.String() != "(H2O)2" {
		Te.Errorf("SetText didn't change the text: %s", F.Text())
	}
	if !relEqual(F.Mass(), 2*before) {
		Te.Errorf("Mass wasn't recomputed: %v %v", F.Mass(), before)
	}
	if F.Composition().Count("H") != 4 {
		Te.Errorf("Composition wasn't recomputed: %s", F.Composition())
	}
	F.SetText("H2 O")
	if F.Valid() || F.Mass() != 0 || F.Composition() != nil {
		Te.Errorf("H2 O should not be valid")
	}
	if _, ok := F.Check().(*FormulaError); !ok {
		Te.Errorf("expected a *FormulaError, got %v", F.Check())
	}
}

func TestComposition(Te *testing.T) {
	ref := newFakeRef()
	comp := Decompose(ref, "CH3CH2OH")
	if comp.String() != "C2H6O" {
		Te.Errorf("got %s", comp.String())
	}
	if comp.Atoms() != 9 || comp.Len() != 3 || comp.Count("N") != 0 {
		Te.Errorf("wrong counts in %s", comp)
	}
	fr := comp.Fractions()
	var total float64
	for i, v := range fr {
		total += v
		if !relEqual(v, comp[i].Subtotal()/comp.Mass()) {
			Te.Errorf("wrong fraction for %s: %v", comp[i].Symbol, v)
		}
	}
	if !relEqual(total, 1) {
		Te.Errorf("fractions add up to %v", total)
	}
	var empty Composition
	if empty.Mass() != 0 || empty.Fractions() != nil || empty.String() != "" {
		Te.Errorf("an empty composition should have no mass or fractions")
	}
}

func TestAnalyzeBatch(Te *testing.T) {
	ref := newFakeRef()
	formulas := []string{"H2O", "Xx2", "Mg(OH)2", "H2 O", "(NH4)2SO4", "", "K4[ON(SO3)2]2"}
	for _, workers := range []int{0, 1, 3, 100} {
		results := AnalyzeBatch(ref, formulas, workers)
		if len(results) != len(formulas) {
			Te.Fatalf("got %d results for %d formulas", len(results), len(formulas))
		}
		for i, r := range results {
			if r.Formula != formulas[i] {
				Te.Errorf("result %d is for %q, expected %q", i, r.Formula, formulas[i])
			}
			if r.Valid() != Validate(ref, formulas[i]) {
				Te.Errorf("%q: batch and Validate disagree", formulas[i])
			}
			if !r.Composition.Equal(Decompose(ref, formulas[i])) || r.Mass != Mass(ref, formulas[i]) {
				Te.Errorf("%q: batch and Decompose disagree", formulas[i])
			}
		}
	}
	if r := AnalyzeBatch(ref, nil, 4); len(r) != 0 {
		Te.Errorf("no formulas should give no results")
	}
}
