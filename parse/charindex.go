/*
Copyright 2024 by Samuel Loewen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package parse

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CharIndex maps each character in a grid to the positions holding it, in row-major order.
//
// It is a snapshot, later writes to the grid are not reflected.
type CharIndex map[rune][]Point

// NewCharIndex walks every cell of g and records its position under its character. The grid is left reset to its
// first cell.
func NewCharIndex(g *GridScanner) CharIndex {
	idx := CharIndex{}
	for r, row := range g.rows {
		for c, ch := range row {
			idx[ch] = append(idx[ch], Point{r, c})
		}
	}
	g.Reset()
	return idx
}

// Get returns the positions of ch.
func (idx CharIndex) Get(ch rune) ([]Point, bool) {
	pts, ok := idx[ch]
	return pts, ok
}

// Count returns the number of positions holding ch.
func (idx CharIndex) Count(ch rune) int {
	return len(idx[ch])
}

// Remove drops ch from the index. Usually used to get rid of background cells.
func (idx CharIndex) Remove(ch rune) {
	delete(idx, ch)
}

// Keys returns the indexed characters in ascending order.
func (idx CharIndex) Keys() []rune {
	keys := maps.Keys(idx)
	slices.Sort(keys)
	return keys
}
