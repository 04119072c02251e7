/*
 * atomicdata.go, part of stoich.
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
	"bytes"
	_ "embed"
	"sync"
)

//The 118 elements, with IUPAC standard atomic weights. For elements
//without stable isotopes, the mass number of the longest-lived isotope.
//
//go:embed periodictable.json
var periodicTableJSON []byte

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// DefaultTable returns the periodic table embedded in the package. It is parsed
// the first time it is requested and shared afterwards.
// It panics if the embedded data is broken, which can only be a bug.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		T, err := ReadTable(bytes.NewReader(periodicTableJSON))
		if err != nil {
			panic("stoich: embedded periodic table is broken: " + err.Error())
		}
		defaultTable = T
	})
	return defaultTable
}
