/*
 * parse.go, part of stoich.
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

import "math"

/*The grammar:

	formula := item+
	item    := symbol count? | open formula close count?
	symbol  := [A-Z][a-z]*
	count   := [0-9]+

where each close bracket must match its open bracket: (), [] or {}.
The parser never modifies the text. Nodes are kept in an arena and refer
to the text by offsets.*/

type nodeKind uint8

const (
	atomNode nodeKind = iota
	groupNode
)

type node struct {
	kind       nodeKind
	start, end int    //the symbol for atoms, the brackets (inclusive) for groups
	count      uint32 //count for atoms, multiplier for groups
	children   []int  //indexes in the arena, only for groups
}

type tree struct {
	text  string
	nodes []node
	root  []int
}

func (t *tree) symbol(n *node) string {
	return t.text[n.start:n.end]
}

type parser struct {
	text  string
	pos   int
	nodes []node
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func closerOf(c byte) byte {
	switch c {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	}
	return 0
}

func isCloser(c byte) bool { return c == ')' || c == ']' || c == '}' }

// parse builds the group tree for text. It only checks syntax: element
// symbols are not looked up here.
func parse(text string) (*tree, error) {
	p := &parser{text: text}
	root, err := p.sequence(0, -1)
	if err != nil {
		return nil, err
	}
	return &tree{text: text, nodes: p.nodes, root: root}, nil
}

func (p *parser) fail(pos int, reason Reason) error {
	return newFormulaError(p.text, pos, reason)
}

// sequence parses items until the closer byte is found (and consumed), or until
// the end of the text if closer is 0. open is the position of the opening
// bracket, used to report unclosed groups.
func (p *parser) sequence(closer byte, open int) ([]int, error) {
	items := make([]int, 0, 4)
	for p.pos < len(p.text) {
		c := p.text[p.pos]
		switch {
		case isUpper(c):
			start := p.pos
			p.pos++
			for p.pos < len(p.text) && isLower(p.text[p.pos]) {
				p.pos++
			}
			end := p.pos
			count, err := p.count()
			if err != nil {
				return nil, err
			}
			p.nodes = append(p.nodes, node{kind: atomNode, start: start, end: end, count: count})
			items = append(items, len(p.nodes)-1)
		case closerOf(c) != 0:
			start := p.pos
			p.pos++
			children, err := p.sequence(closerOf(c), start)
			if err != nil {
				return nil, err
			}
			if len(children) == 0 {
				return nil, p.fail(start, ReasonEmptyGroup)
			}
			end := p.pos
			count, err := p.count()
			if err != nil {
				return nil, err
			}
			p.nodes = append(p.nodes, node{kind: groupNode, start: start, end: end, count: count, children: children})
			items = append(items, len(p.nodes)-1)
		case isCloser(c):
			if c != closer {
				return nil, p.fail(p.pos, ReasonUnbalanced)
			}
			p.pos++
			return items, nil
		default:
			//lowercase letters here have no uppercase before them, and digits
			//have no symbol or group to count.
			return nil, p.fail(p.pos, ReasonUnexpected)
		}
	}
	if closer != 0 {
		return nil, p.fail(open, ReasonUnbalanced)
	}
	return items, nil
}

// count reads the digits at the current position. No digits means 1.
func (p *parser) count() (uint32, error) {
	start := p.pos
	var n uint64
	for p.pos < len(p.text) && isDigit(p.text[p.pos]) {
		n = n*10 + uint64(p.text[p.pos]-'0')
		if n > math.MaxUint32 {
			return 0, p.fail(start, ReasonOverflow)
		}
		p.pos++
	}
	if p.pos == start {
		return 1, nil
	}
	if n == 0 {
		return 0, p.fail(start, ReasonZeroCount)
	}
	return uint32(n), nil
}
