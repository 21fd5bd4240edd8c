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

// D10Part1 sums the trailhead scores, the number of distinct 9s reachable from each 0.
func D10Part1(input string) string {
	g := parse.NewGridScanner(input)
	heads, _ := parse.NewCharIndex(g).Get('0')

	n := 0
	for _, p := range heads {
		ends := map[parse.Point]bool{}
		for _, e := range d10Trails(g.GoTo(p)) {
			ends[e] = true
		}
		n += len(ends)
	}
	return itoa(n)
}

// D10Part2 sums the trailhead ratings, the number of distinct trails from each 0.
func D10Part2(input string) string {
	g := parse.NewGridScanner(input)
	heads, _ := parse.NewCharIndex(g).Get('0')

	n := 0
	for _, p := range heads {
		n += len(d10Trails(g.GoTo(p)))
	}
	return itoa(n)
}

// d10Trails returns the end of every trail from the current cell, one entry per trail. Each step goes up exactly
// one in height. The cursor is back where it started on return.
func d10Trails(g *parse.GridScanner) []parse.Point {
	cur, _ := g.Peek()
	if cur == '9' {
		return []parse.Point{g.Point()}
	}

	rtn := []parse.Point{}
	for _, d := range parse.Values4 {
		next, ok := g.PeekNextWithDirection(d)
		if !ok || next != cur+1 {
			continue
		}
		g.AdvanceWithDirection(1, d)
		rtn = append(rtn, d10Trails(g)...)
		g.AdvanceWithDirection(1, d.Opposite())
	}
	return rtn
}
