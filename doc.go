/*
 * doc.go, part of stoich.
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

/*Package stoich parses molecular formulas into their element composition
and computes molecular masses from a periodic table.



	**stoich Capabilities**


    Validates formulas such as H2O, Mg(OH)2, (NH4)2SO4 or K4[ON(SO3)2]2.
	Groups may be delimited by (), [] or {} and nested to any depth, each
	followed by an optional multiplier.

    Decomposes a valid formula into a flat composition: one entry per
	element, with the total number of atoms of that element, in the order
	in which the elements first appear in the formula.

    Computes the molecular mass and the mass fraction of each element.

    Reads the periodic table from JSON files, optionally gzip or zstd
	compressed. A full table is embedded in the package and used by default.

    Analyzes batches of formulas concurrently.


Element symbols are read as one uppercase letter followed by all the lowercase
letters after it. The lowercase run is never split, so "CO" is carbon and oxygen,
"Co" is cobalt and "Cox" is an unknown symbol, not cobalt followed by something else.

Invalid formulas are not exceptional. Validate and Check report them, Decompose
returns an empty composition for them and Mass returns 0.*/
package stoich
