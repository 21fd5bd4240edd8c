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
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Point is a (row, column) position in a grid.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.Row, p.Col)
}

// Add returns p offset by o.
func (p Point) Add(o Point) Point {
	return Point{p.Row + o.Row, p.Col + o.Col}
}

// Sub returns the offset that takes o to p.
func (p Point) Sub(o Point) Point {
	return Point{p.Row - o.Row, p.Col - o.Col}
}

// Step returns p moved k cells in direction d.
func (p Point) Step(d Direction, k int) Point {
	dr, dc := d.Delta()
	return Point{p.Row + k*dr, p.Col + k*dc}
}

// GridScanner is a 2D cursor over a grid of characters.
//
// The input is split on newlines and empty lines are dropped, so leading and trailing blank lines in puzzle
// fixtures do not matter. Rows may have different lengths. Reads outside the grid are absent, they never pad.
//
// The scanner is either positioned on a cell, or done (the row cursor is past the last row). Linear movement that
// runs off the end lands on exactly (Len(), 0). GoTo and AdvanceWithDirection do no checking at all, so callers
// that use them must check InBounds or Peek before writing.
type GridScanner struct {
	raw  string
	rows [][]rune

	line   int
	cursor int
}

// NewGridScanner returns a new GridScanner positioned on the first cell of s.
func NewGridScanner(s string) *GridScanner {
	g := &GridScanner{raw: s}
	for _, l := range strings.Split(s, "\n") {
		if l == "" {
			continue
		}
		g.rows = append(g.rows, []rune(l))
	}
	return g
}

// Clone returns a deep copy. The two scanners share nothing.
func (g *GridScanner) Clone() *GridScanner {
	ng := *g
	ng.rows = make([][]rune, len(g.rows))
	for i, row := range g.rows {
		ng.rows[i] = slices.Clone(row)
	}
	return &ng
}

// Raw returns the text the scanner was built from.
func (g *GridScanner) Raw() string {
	return g.raw
}

// Lines returns the current contents of every row.
func (g *GridScanner) Lines() []string {
	lines := make([]string, len(g.rows))
	for i, row := range g.rows {
		lines[i] = string(row)
	}
	return lines
}

// String flattens the grid in row-major order with rows separated by newlines. For an unmodified grid this is the
// input with blank lines removed.
func (g *GridScanner) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Len returns the number of rows.
func (g *GridScanner) Len() int {
	return len(g.rows)
}

// CursorLen returns the length of the current row, or 0 when not on a row.
func (g *GridScanner) CursorLen() int {
	if g.line < 0 || g.line >= len(g.rows) {
		return 0
	}
	return len(g.rows[g.line])
}

// Line returns the row cursor.
func (g *GridScanner) Line() int {
	return g.line
}

// Cursor returns the column cursor. It has no meaning once the scanner is done.
func (g *GridScanner) Cursor() int {
	return g.cursor
}

// Point returns the current position.
func (g *GridScanner) Point() Point {
	return Point{g.line, g.cursor}
}

// IsDone returns true once the row cursor has moved past the last row.
func (g *GridScanner) IsDone() bool {
	return g.line >= len(g.rows)
}

// InBounds returns true if p names an existing cell.
func (g *GridScanner) InBounds(p Point) bool {
	_, ok := g.cell(p.Row, p.Col)
	return ok
}

func (g *GridScanner) cell(line, col int) (rune, bool) {
	// Negative coordinates are how directional reads signal that they walked off the top or left edge.
	if line < 0 || col < 0 || line >= len(g.rows) || col >= len(g.rows[line]) {
		return 0, false
	}
	return g.rows[line][col], true
}

// Peek returns the current cell.
func (g *GridScanner) Peek() (rune, bool) {
	return g.cell(g.line, g.cursor)
}

// PeekAt returns the cell at the given offset from the current position.
func (g *GridScanner) PeekAt(dRow, dCol int) (rune, bool) {
	return g.cell(g.line+dRow, g.cursor+dCol)
}

// PeekNextWithDirection returns the neighbour of the current cell in direction d.
func (g *GridScanner) PeekNextWithDirection(d Direction) (rune, bool) {
	return g.PeekAt(d.Delta())
}

// PeekWithDirection reads n cells starting with the current one and stepping in direction d. If any of them is
// outside the grid the result is absent.
func (g *GridScanner) PeekWithDirection(n int, d Direction) (string, bool) {
	return g.peekFrom(g.line, g.cursor, n, d)
}

func (g *GridScanner) peekFrom(line, col, n int, d Direction) (string, bool) {
	dr, dc := d.Delta()
	buf := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		c, ok := g.cell(line+i*dr, col+i*dc)
		if !ok {
			return "", false
		}
		buf = append(buf, c)
	}
	return string(buf), true
}

// Pop returns the current cell and moves to the next one in row-major order. Nothing moves if there is no current
// cell.
func (g *GridScanner) Pop() (rune, bool) {
	c, ok := g.Peek()
	if !ok {
		return 0, false
	}
	g.cursor++
	if g.cursor >= len(g.rows[g.line]) {
		g.cursor = 0
		g.line++
	}
	return c, true
}

// Advance moves k cells forward in row-major order, wrapping into the following rows. Running off the end leaves
// the scanner done at (Len(), 0).
func (g *GridScanner) Advance(k int) {
	if k < 0 {
		panic(ErrAdvancePastEnd{Cursor: g.cursor, By: k, Len: g.CursorLen()})
	}
	if g.line < 0 || g.cursor < 0 {
		panic(ErrOutOfBounds(g.Point()))
	}
	if g.IsDone() {
		g.line, g.cursor = len(g.rows), 0
		return
	}

	// Consume k one row at a time. The cursor only ever moves within a row.
	for g.line < len(g.rows) {
		left := max(len(g.rows[g.line])-g.cursor, 0)
		if k < left {
			break
		}
		k -= left
		g.line++
		g.cursor = 0
	}
	if g.line >= len(g.rows) {
		g.line, g.cursor = len(g.rows), 0
		return
	}
	g.cursor += k
}

// AdvanceWithDirection steps k times in direction d. There is no bounds check.
func (g *GridScanner) AdvanceWithDirection(k int, d Direction) {
	dr, dc := d.Delta()
	g.line += k * dr
	g.cursor += k * dc
}

// GoTo moves to p without any checking and returns the scanner so a write can be chained.
func (g *GridScanner) GoTo(p Point) *GridScanner {
	g.line, g.cursor = p.Row, p.Col
	return g
}

// Reset moves back to the first cell.
func (g *GridScanner) Reset() {
	g.line, g.cursor = 0, 0
}

// AdvanceTo searches row-major from the current cell (inclusive) for s, which must fit inside a single row. On a
// match the cursor lands on the first character of the match. On a miss nothing moves.
func (g *GridScanner) AdvanceTo(s string) bool {
	needle := []rune(s)
	if len(needle) == 0 {
		panic(ErrEmptyNeedle(g.cursor))
	}
	if g.line < 0 {
		return false
	}

	for l := g.line; l < len(g.rows); l++ {
		start := 0
		if l == g.line && g.cursor > 0 {
			start = g.cursor
		}
		row := g.rows[l]
	outer:
		for c := start; c+len(needle) <= len(row); c++ {
			for j, r := range needle {
				if row[c+j] != r {
					continue outer
				}
			}
			g.line, g.cursor = l, c
			return true
		}
	}
	return false
}

// AdvanceToWithDirection walks in direction d one cell at a time and stops on the cell just before the first cell
// holding ch, returning true. If the walk would leave the grid first, it stops on the last cell inside the grid and
// returns false.
func (g *GridScanner) AdvanceToWithDirection(ch rune, d Direction) bool {
	if _, ok := g.Peek(); !ok {
		return false
	}

	dr, dc := d.Delta()
	for {
		next, ok := g.PeekAt(dr, dc)
		if !ok {
			return false
		}
		if next == ch {
			return true
		}
		g.line += dr
		g.cursor += dc
	}
}

// Set overwrites the current cell. Panics with ErrOutOfBounds if there is no current cell.
func (g *GridScanner) Set(ch rune) {
	if _, ok := g.Peek(); !ok {
		panic(ErrOutOfBounds(g.Point()))
	}
	g.rows[g.line][g.cursor] = ch
}

// Fill overwrites every cell in the rectangle spanned by a and b, inclusive on both ends. Every cell in the
// rectangle must exist, otherwise Fill panics with ErrOutOfBounds before writing anything.
func (g *GridScanner) Fill(ch rune, a, b Point) {
	r0, r1 := minMax(a.Row, b.Row)
	c0, c1 := minMax(a.Col, b.Col)

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if _, ok := g.cell(r, c); !ok {
				panic(ErrOutOfBounds(Point{r, c}))
			}
		}
	}
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.rows[r][c] = ch
		}
	}
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// CountChars returns how many cells hold ch.
func (g *GridScanner) CountChars(ch rune) int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			if c == ch {
				n++
			}
		}
	}
	return n
}

// WordCount returns every direction in which word can be read starting at the current cell.
func (g *GridScanner) WordCount(word string) []Direction {
	n := len([]rune(word))
	rtn := []Direction{}
	for _, d := range Values8 {
		if s, ok := g.PeekWithDirection(n, d); ok && s == word {
			rtn = append(rtn, d)
		}
	}
	return rtn
}

// DiagonalXExists checks for an X of two words crossing in the square whose top left corner is the current cell.
// The RightDown diagonal from here and the DownLeft diagonal from the top right corner must both be one of words.
// All words must have the same length.
func (g *GridScanner) DiagonalXExists(words []string) bool {
	if len(words) == 0 {
		return false
	}
	n := len([]rune(words[0]))
	for _, w := range words[1:] {
		if len([]rune(w)) != n {
			return false
		}
	}

	down, ok := g.PeekWithDirection(n, RightDown)
	if !ok || !slices.Contains(words, down) {
		return false
	}
	up, ok := g.peekFrom(g.line, g.cursor+n-1, n, DownLeft)
	return ok && slices.Contains(words, up)
}

// DiagonalXExistsInAnyOrder is DiagonalXExists with word and its reverse.
func (g *GridScanner) DiagonalXExistsInAnyOrder(word string) bool {
	r := []rune(word)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return g.DiagonalXExists([]string{word, string(r)})
}

// SplitToNumbers works like Scanner.SplitToNumbers on the text the grid was built from.
func (g *GridScanner) SplitToNumbers(sep string) [][]int64 {
	return splitToNumbers(g.raw, sep)
}
