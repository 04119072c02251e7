/*
 * interfaces.go, part of stoich.
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

// Referencer is the read-only view of a periodic table that the
// formula parser needs.
type Referencer interface {

	//Element returns the element with the given symbol, and false
	//if there is no such element. The returned element must not be modified.
	Element(symbol string) (*Element, bool)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice resulting from the current call. An empty string just returns the current value.
}

// CriticalError is an Error that knows whether the program can go on after it.
type CriticalError interface {
	Error
	Critical() bool
}

//errDecorate adds the caller's name to err if err implements Error,
//and returns err unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
	}
	return err
}
