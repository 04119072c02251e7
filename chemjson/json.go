/*
 * json.go, part of stoich.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rmera/stoich"
)

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InRequest     bool //If error, was it in parsing the request?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - ")) //an error while serializing the error.
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "request":
		jerr.InRequest = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	jerr.Function = function
	jerr.Message = err.Error()
	jerr.deco = []string{function}
	return jerr
}

//Request is what the calling program sends.
type Request struct {
	Formulas []string `json:"formulas"`
	Workers  int      `json:"workers,omitempty"` //goroutines to use, 0 for the default
}

//DecodeRequest decodes or unmarshals one line of JSON into a Request.
func DecodeRequest(stdin *bufio.Reader) (*Request, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, NewError("request", "DecodeRequest", err)
	}
	ret := new(Request)
	err = json.Unmarshal(line, ret)
	if err != nil {
		return nil, NewError("request", "DecodeRequest", err)
	}
	if len(ret.Formulas) == 0 {
		return nil, NewError("request", "DecodeRequest", fmt.Errorf("no formulas in request"))
	}
	return ret, nil
}

//Element is one entry of the composition of a formula.
type Element struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Number   int     `json:"number"`
	Mass     float64 `json:"atomic_mass"`
	Count    uint32  `json:"count"`
	Subtotal float64 `json:"subtotal"` //Count times Mass
	Fraction float64 `json:"fraction"` //of the molecular mass
}

//Report is the information sent back for one formula.
type Report struct {
	Formula     string    `json:"formula"`
	Valid       bool      `json:"valid"`
	Mass        float64   `json:"mass"`
	Composition []Element `json:"composition,omitempty"`
	Reason      string    `json:"reason,omitempty"` //why the formula is not valid
	Position    int       `json:"position"`         //where the problem is, only meaningful if Reason is set
}

//NewReport builds the report for a result
func NewReport(R stoich.Result) *Report {
	rep := &Report{Formula: R.Formula, Valid: R.Valid(), Mass: R.Mass}
	if !rep.Valid {
		var ferr *stoich.FormulaError
		if errors.As(R.Err, &ferr) {
			rep.Reason = ferr.Reason.String()
			rep.Position = ferr.Pos
		} else {
			rep.Reason = R.Err.Error()
		}
		return rep
	}
	fractions := R.Composition.Fractions()
	rep.Composition = make([]Element, 0, len(R.Composition))
	for i, v := range R.Composition {
		rep.Composition = append(rep.Composition, Element{
			Symbol:   v.Symbol,
			Name:     v.Name,
			Number:   v.Number,
			Mass:     v.Mass,
			Count:    v.Count,
			Subtotal: v.Subtotal(),
			Fraction: fractions[i],
		})
	}
	return rep
}

//Send Marshals the report and writes it to out, as one line. Returns an error or nil
func (J *Report) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Report.Send", err)
	}
	return nil
}

//SendResults writes one report per result to out, in order.
func SendResults(results []stoich.Result, out io.Writer) *Error {
	for _, v := range results {
		if err := NewReport(v).Send(out); err != nil {
			err.Decorate("SendResults")
			return err
		}
	}
	return nil
}

//DecodeReport reads one report from stream. It returns io.EOF, unwrapped,
//when there is nothing left to read.
func DecodeReport(stream *bufio.Reader) (*Report, error) {
	line, err := stream.ReadBytes('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) == 0 {
			return nil, io.EOF
		}
		if !errors.Is(err, io.EOF) {
			return nil, NewError("postprocess", "DecodeReport", err)
		}
	}
	rep := new(Report)
	if err := json.Unmarshal(line, rep); err != nil {
		return nil, NewError("postprocess", "DecodeReport", err)
	}
	return rep, nil
}
