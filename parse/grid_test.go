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

package parse_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samuellwn/aoc/parse"
)

func TestDirection(t *testing.T) {
	for _, d := range parse.Values4 {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite is not an involution for %v", d)
		}
		if d.Next4().Next4().Next4().Next4() != d {
			t.Errorf("Next4 does not cycle for %v", d)
		}
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		if dr != -or || dc != -oc {
			t.Errorf("Incorrect opposite delta for %v: (%v, %v) vs (%v, %v)", d, dr, dc, or, oc)
		}
	}
	if parse.Up.Next4() != parse.Right || parse.Right.Next4() != parse.Down {
		t.Errorf("Next4 should turn clockwise.")
	}
	if parse.LeftUp.Opposite() != parse.RightDown {
		t.Errorf("Incorrect opposite for LeftUp: %v", parse.LeftUp.Opposite())
	}
	expectPanic[parse.ErrNotCardinal](t, func() { parse.UpRight.Next4() })
}

func TestGridPeek(t *testing.T) {
	g := parse.NewGridScanner("hello\nworld")
	if c, ok := g.Peek(); !ok || c != 'h' {
		t.Errorf("Incorrect peek: %q %v", c, ok)
	}
	if c, ok := g.PeekAt(1, 1); !ok || c != 'o' {
		t.Errorf("Incorrect peek at (1, 1): %q %v", c, ok)
	}
	if _, ok := g.PeekAt(-1, 0); ok {
		t.Errorf("Negative row should be absent.")
	}
	if _, ok := g.PeekAt(0, -1); ok {
		t.Errorf("Negative column should be absent.")
	}
	if _, ok := g.PeekAt(0, 5); ok {
		t.Errorf("Column past the row should be absent.")
	}
	if g.Len() != 2 || g.CursorLen() != 5 {
		t.Errorf("Incorrect size: %v x %v", g.Len(), g.CursorLen())
	}
}

func TestGridRagged(t *testing.T) {
	g := parse.NewGridScanner("\n\nabc\nd\nefgh\n\n")
	if g.Len() != 3 {
		t.Fatalf("Incorrect number of rows: %v", g.Len())
	}
	if _, ok := g.PeekAt(1, 1); ok {
		t.Errorf("Peek past a short row should be absent.")
	}
	if s, ok := g.PeekWithDirection(3, parse.Down); !ok || s != "ade" {
		t.Errorf("Incorrect peek down the first column: %q %v", s, ok)
	}
	if s, ok := g.PeekWithDirection(3, parse.RightDown); ok {
		t.Errorf("RightDown through a short row should be absent, got %q", s)
	}
	g.GoTo(parse.Point{Row: 0, Col: 1})
	if _, ok := g.PeekWithDirection(2, parse.Down); ok {
		t.Errorf("Down through a short row should be absent.")
	}
	g.Reset()
	g.Advance(4)
	if g.Point() != (parse.Point{Row: 2, Col: 0}) {
		t.Errorf("Incorrect point after wrapping a short row: %v", g.Point())
	}
	if g.String() != "abc\nd\nefgh" {
		t.Errorf("Incorrect flattened grid: %q", g.String())
	}
}

func TestGridRoundTrip(t *testing.T) {
	for _, in := range []string{"hello\nworld", "\nab\n\ncd\n", "x", "....#\n.#..\n"} {
		g := parse.NewGridScanner(in)
		want := []string{}
		for _, l := range strings.Split(in, "\n") {
			if l != "" {
				want = append(want, l)
			}
		}
		if g.String() != strings.Join(want, "\n") {
			t.Errorf("Incorrect round trip for %q: %q", in, g.String())
		}
		if g.Raw() != in {
			t.Errorf("Incorrect raw text: %q", g.Raw())
		}
	}
}

func TestGridPop(t *testing.T) {
	g := parse.NewGridScanner("hello\nworld")
	for i, want := range "hello" {
		c, ok := g.Pop()
		if !ok || c != want {
			t.Errorf("Incorrect pop %v: %q %v", i, c, ok)
		}
	}
	if g.Point() != (parse.Point{Row: 1, Col: 0}) {
		t.Errorf("Incorrect point after the first row: %v", g.Point())
	}
	if c, ok := g.Peek(); !ok || c != 'w' {
		t.Errorf("Incorrect peek: %q %v", c, ok)
	}

	g = parse.NewGridScanner("he\nllo")
	got := []rune{}
	for {
		c, ok := g.Pop()
		if !ok {
			break
		}
		got = append(got, c)
	}
	if string(got) != "hello" {
		t.Errorf("Incorrect popped text: %q", string(got))
	}
	if !g.IsDone() {
		t.Errorf("Grid should be done.")
	}
}

func TestGridAdvance(t *testing.T) {
	g := parse.NewGridScanner("hello\nworld")
	g.Advance(5)
	if c, ok := g.Peek(); !ok || c != 'w' {
		t.Errorf("Incorrect peek after advance: %q %v", c, ok)
	}
	g.Advance(3)
	if g.Point() != (parse.Point{Row: 1, Col: 3}) {
		t.Errorf("Incorrect point: %v", g.Point())
	}

	g.Reset()
	g.Advance(15)
	if !g.IsDone() {
		t.Errorf("Grid should be done.")
	}
	if g.Point() != (parse.Point{Row: 2, Col: 0}) {
		t.Errorf("Overrun should normalize to (2, 0), got %v", g.Point())
	}
	if _, ok := g.Peek(); ok {
		t.Errorf("Peek on a done grid should be absent.")
	}
	g.Advance(1)
	if g.Point() != (parse.Point{Row: 2, Col: 0}) {
		t.Errorf("Advancing a done grid moved it: %v", g.Point())
	}

	g.GoTo(parse.Point{Row: 0, Col: 4})
	if g.IsDone() {
		t.Errorf("GoTo should bring the grid back.")
	}

	g.Reset()
	g.Advance(1)
	g.Advance(math.MaxInt)
	if !g.IsDone() || g.Point() != (parse.Point{Row: 2, Col: 0}) {
		t.Errorf("Huge advance should clamp to (2, 0), got %v", g.Point())
	}

	// Rows of different lengths wrap by their own length.
	g = parse.NewGridScanner("ab\ncdef\ng")
	g.Advance(1)
	g.Advance(4)
	if c, ok := g.Peek(); !ok || c != 'f' {
		t.Errorf("Incorrect peek after ragged advance: %q %v at %v", c, ok, g.Point())
	}
	g.Advance(1)
	if c, ok := g.Peek(); !ok || c != 'g' {
		t.Errorf("Incorrect peek after ragged wrap: %q %v at %v", c, ok, g.Point())
	}
}

func TestGridPeekWithDirection(t *testing.T) {
	g := parse.NewGridScanner("hello\nworld")
	cases := []struct {
		n    int
		d    parse.Direction
		want string
		ok   bool
	}{
		{5, parse.Right, "hello", true},
		{2, parse.Down, "hw", true},
		{2, parse.Up, "", false},
		{2, parse.RightDown, "ho", true},
		{6, parse.Right, "", false},
	}
	for _, c := range cases {
		got, ok := g.PeekWithDirection(c.n, c.d)
		if got != c.want || ok != c.ok {
			t.Errorf("Incorrect peek %v %v: %q %v", c.n, c.d, got, ok)
		}
	}

	// The first step is always the current cell.
	g.GoTo(parse.Point{Row: 1, Col: 2})
	cur, _ := g.Peek()
	for _, d := range parse.Values8 {
		if s, ok := g.PeekWithDirection(1, d); !ok || s != string(cur) {
			t.Errorf("Incorrect single step peek %v: %q %v", d, s, ok)
		}
	}
	if c, ok := g.PeekNextWithDirection(parse.UpRight); !ok || c != 'l' {
		t.Errorf("Incorrect next peek: %q %v", c, ok)
	}
}

func TestGridWordCount(t *testing.T) {
	g := parse.NewGridScanner("hello\nworld")
	if diff := cmp.Diff([]parse.Direction{parse.Right}, g.WordCount("hello")); diff != "" {
		t.Errorf("Incorrect directions (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]parse.Direction{parse.Down}, g.WordCount("hw")); diff != "" {
		t.Errorf("Incorrect directions (-want +got):\n%s", diff)
	}
}

func TestGridDiagonalX(t *testing.T) {
	g := parse.NewGridScanner("hello\nworld")
	if !g.DiagonalXExists([]string{"ho", "ew"}) {
		t.Errorf("Expected an X of ho and ew.")
	}
	if g.DiagonalXExists([]string{"ho", "wo"}) {
		t.Errorf("Found an X of ho and wo.")
	}
	if g.DiagonalXExists([]string{"ho", "ewx"}) {
		t.Errorf("Words of different lengths should never match.")
	}
	if g.Point() != (parse.Point{}) {
		t.Errorf("DiagonalXExists moved the grid: %v", g.Point())
	}

	g = parse.NewGridScanner("M.S\n.A.\nM.S")
	if !g.DiagonalXExistsInAnyOrder("MAS") {
		t.Errorf("Expected an X-MAS.")
	}
}

func TestGridAdvanceTo(t *testing.T) {
	g := parse.NewGridScanner("..#.\n.^..\n....")
	if !g.AdvanceTo("^") {
		t.Fatalf("Expected to find the guard.")
	}
	if g.Point() != (parse.Point{Row: 1, Col: 1}) {
		t.Errorf("Incorrect point: %v", g.Point())
	}
	if !g.AdvanceTo("^.") || g.Point() != (parse.Point{Row: 1, Col: 1}) {
		t.Errorf("The search should include the current cell: %v", g.Point())
	}
	if g.AdvanceTo("#") {
		t.Errorf("Found # behind the cursor.")
	}
	if g.Point() != (parse.Point{Row: 1, Col: 1}) {
		t.Errorf("A miss moved the grid: %v", g.Point())
	}
	g.Reset()
	if g.AdvanceTo(".\n.") {
		t.Errorf("Matches must not span rows.")
	}
}

func TestGridAdvanceToWithDirection(t *testing.T) {
	g := parse.NewGridScanner("..#.\n....\n.^..\n....")
	g.AdvanceTo("^")

	// Column 1 has no obstacle, so this runs off the top.
	if g.AdvanceToWithDirection('#', parse.Up) {
		t.Errorf("Expected to run off the grid.")
	}
	if g.Point() != (parse.Point{Row: 0, Col: 1}) {
		t.Errorf("Should stop on the last cell inside the grid: %v", g.Point())
	}

	if !g.AdvanceToWithDirection('#', parse.Right) {
		t.Errorf("Expected to hit the obstacle.")
	}
	if g.Point() != (parse.Point{Row: 0, Col: 1}) {
		t.Errorf("Should stop just before the obstacle: %v", g.Point())
	}

	g.AdvanceWithDirection(3, parse.Down)
	if g.AdvanceToWithDirection('#', parse.Right) {
		t.Errorf("No obstacle on the last row.")
	}
	if g.Point() != (parse.Point{Row: 3, Col: 3}) {
		t.Errorf("Incorrect point: %v", g.Point())
	}
}

func TestGridMutation(t *testing.T) {
	g := parse.NewGridScanner("....\n....\n....")
	g.Fill('x', parse.Point{Row: 2, Col: 3}, parse.Point{Row: 1, Col: 1})
	if g.String() != "....\n.xxx\n.xxx" {
		t.Errorf("Incorrect fill:\n%v", g)
	}
	if g.CountChars('x') != 6 {
		t.Errorf("Incorrect count: %v", g.CountChars('x'))
	}

	g.GoTo(parse.Point{Row: 0, Col: 0}).Set('#')
	if c, _ := g.Peek(); c != '#' {
		t.Errorf("Set did not write: %q", c)
	}

	err := expectPanic[parse.ErrOutOfBounds](t, func() { g.GoTo(parse.Point{Row: 3, Col: 0}).Set('#') })
	if parse.Point(err) != (parse.Point{Row: 3, Col: 0}) {
		t.Errorf("Incorrect panic value: %v", err)
	}
	expectPanic[parse.ErrOutOfBounds](t, func() { g.GoTo(parse.Point{Row: 0, Col: -1}).Set('#') })
	expectPanic[parse.ErrOutOfBounds](t, func() {
		g.Fill('y', parse.Point{Row: 0, Col: 0}, parse.Point{Row: 0, Col: 4})
	})
	if g.CountChars('y') != 0 {
		t.Errorf("A failed fill should not write anything.")
	}
}

func TestGridClone(t *testing.T) {
	g := parse.NewGridScanner("ab\ncd")
	g.GoTo(parse.Point{Row: 1, Col: 1})
	c := g.Clone()
	if c.Point() != g.Point() {
		t.Errorf("Clone should keep the position: %v", c.Point())
	}
	c.Set('z')
	c.GoTo(parse.Point{})
	if g.String() != "ab\ncd" {
		t.Errorf("Clone shares storage with the original: %q", g.String())
	}
	if g.Point() != (parse.Point{Row: 1, Col: 1}) {
		t.Errorf("Clone shares the cursor with the original: %v", g.Point())
	}
}

func TestGridSplitToNumbers(t *testing.T) {
	g := parse.NewGridScanner("47|53\n97|13\n")
	want := [][]int64{{47, 53}, {97, 13}}
	if diff := cmp.Diff(want, g.SplitToNumbers("|")); diff != "" {
		t.Errorf("Incorrect numbers (-want +got):\n%s", diff)
	}
}

func TestCharIndex(t *testing.T) {
	in := "a.b\n.a.\nb.a"
	g := parse.NewGridScanner(in)
	g.Advance(4)
	idx := parse.NewCharIndex(g)

	if g.Point() != (parse.Point{}) {
		t.Errorf("Building the index should reset the grid: %v", g.Point())
	}

	as, ok := idx.Get('a')
	want := []parse.Point{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}}
	if !ok {
		t.Fatalf("Missing key a.")
	}
	if diff := cmp.Diff(want, as); diff != "" {
		t.Errorf("Incorrect positions (-want +got):\n%s", diff)
	}

	for _, ch := range "ab.#" {
		if idx.Count(ch) != g.CountChars(ch) {
			t.Errorf("Index count for %q disagrees with the grid: %v vs %v", ch, idx.Count(ch), g.CountChars(ch))
		}
	}

	if diff := cmp.Diff([]rune{'.', 'a', 'b'}, idx.Keys()); diff != "" {
		t.Errorf("Incorrect keys (-want +got):\n%s", diff)
	}
	idx.Remove('.')
	if _, ok := idx.Get('.'); ok {
		t.Errorf("Remove did not drop the key.")
	}

	g.GoTo(parse.Point{Row: 0, Col: 1}).Set('a')
	if idx.Count('a') != 3 {
		t.Errorf("The index should be a snapshot, count: %v", idx.Count('a'))
	}
}
