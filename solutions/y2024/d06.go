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

package y2024

import "github.com/samuellwn/aoc/parse"

// D6Part1 counts the distinct cells the guard visits before walking off the map.
func D6Part1(input string) string {
	g, _ := d6Walk(input)
	return itoa(g.CountChars('X'))
}

// D6Part2 counts the cells where one new obstruction would trap the guard in a loop.
func D6Part2(input string) string {
	g, start := d6Walk(input)

	// Only cells on the original path can change anything.
	path, _ := parse.NewCharIndex(g).Get('X')

	n := 0
	for _, p := range path {
		if p == start {
			continue
		}
		c := g.Clone()
		c.GoTo(p).Set('#')
		if d6Loops(c.GoTo(start)) {
			n++
		}
	}
	return itoa(n)
}

// d6Walk marks every cell of the guard's path with an X and returns the marked grid along with the start point.
func d6Walk(input string) (*parse.GridScanner, parse.Point) {
	g := parse.NewGridScanner(input)
	if !g.AdvanceTo("^") {
		return g, g.Point()
	}
	start := g.Point()

	dir := parse.Up
	from := start
	for g.AdvanceToWithDirection('#', dir) {
		g.Fill('X', from, g.Point())
		from = g.Point()
		dir = dir.Next4()
	}
	g.Fill('X', from, g.Point())
	return g, start
}

type d6State struct {
	at  parse.Point
	dir parse.Direction
}

// d6Loops walks the guard from the current cell, facing up. The guard is in a loop once it turns at the same spot,
// in the same direction, twice.
func d6Loops(g *parse.GridScanner) bool {
	seen := map[d6State]bool{}

	dir := parse.Up
	for g.AdvanceToWithDirection('#', dir) {
		st := d6State{g.Point(), dir}
		if seen[st] {
			return true
		}
		seen[st] = true
		dir = dir.Next4()
	}
	return false
}
