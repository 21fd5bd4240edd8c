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

// D8Part1 counts the antinodes: for each pair of same-frequency antennas, the two points one spacing beyond
// either antenna.
func D8Part1(input string) string {
	return itoa(d8Count(input, false))
}

// D8Part2 counts antinodes with resonant harmonics, every in-line point at a multiple of the spacing.
func D8Part2(input string) string {
	return itoa(d8Count(input, true))
}

func d8Count(input string, harmonics bool) int {
	g := parse.NewGridScanner(input)
	antennas := parse.NewCharIndex(g)
	antennas.Remove('.')

	marks := g.Clone()
	mark := func(p parse.Point) bool {
		if !marks.InBounds(p) {
			return false
		}
		marks.GoTo(p).Set('#')
		return true
	}

	for _, freq := range antennas.Keys() {
		pts := antennas[freq]
		for i := range pts {
			for j := i + 1; j < len(pts); j++ {
				a, b := pts[i], pts[j]
				step := b.Sub(a)
				if !harmonics {
					mark(a.Sub(step))
					mark(b.Add(step))
					continue
				}
				for p := a; mark(p); p = p.Sub(step) {
				}
				for p := b; mark(p); p = p.Add(step) {
				}
			}
		}
	}
	return marks.CountChars('#')
}
