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

package y2023

import "github.com/samuellwn/aoc/parse"

// D3Part1 sums every part number, any number touching a symbol (diagonals included).
func D3Part1(input string) string {
	var sum int64
	for _, n := range d3Numbers(input) {
		if len(n.symbols) > 0 {
			sum += n.value
		}
	}
	return itoa(sum)
}

// D3Part2 sums the gear ratios. A gear is a * touching exactly two part numbers.
func D3Part2(input string) string {
	gears := map[parse.Point][]int64{}
	for _, n := range d3Numbers(input) {
		for _, p := range n.gears {
			gears[p] = append(gears[p], n.value)
		}
	}

	var sum int64
	for _, parts := range gears {
		if len(parts) == 2 {
			sum += parts[0] * parts[1]
		}
	}
	return itoa(sum)
}

type d3Number struct {
	value   int64
	symbols []parse.Point
	gears   []parse.Point
}

// d3Numbers finds every number on the schematic along with the symbols around it.
func d3Numbers(input string) []d3Number {
	g := parse.NewGridScanner(input)

	rtn := []d3Number{}
	for !g.IsDone() {
		c, _ := g.Peek()
		if !isDigit(c) {
			g.Pop()
			continue
		}

		n := d3Number{}
		length := 0
		for {
			c, ok := g.PeekAt(0, length)
			if !ok || !isDigit(c) {
				break
			}
			n.value = n.value*10 + int64(c-'0')
			length++
		}

		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= length; dc++ {
				c, ok := g.PeekAt(dr, dc)
				if !ok || c == '.' || isDigit(c) {
					continue
				}
				p := g.Point().Add(parse.Point{Row: dr, Col: dc})
				n.symbols = append(n.symbols, p)
				if c == '*' {
					n.gears = append(n.gears, p)
				}
			}
		}

		rtn = append(rtn, n)
		g.Advance(length)
	}
	return rtn
}
