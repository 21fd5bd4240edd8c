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

// D3Part1 adds up the results of every well formed mul(a,b) in the corrupted memory.
func D3Part1(input string) string {
	return itoa(d3Sum(input))
}

// D3Part2 is D3Part1, but everything between a don't() and the next do() is ignored.
func D3Part2(input string) string {
	return itoa(d3Sum(parse.NewScanner(input).DeleteBetween("don't()", "do()")))
}

func d3Sum(input string) int64 {
	s := parse.NewScanner(input)

	var sum int64
	for s.AdvanceTo("mul(") {
		a, ok := s.MatchNumberUpTo(',')
		if !ok {
			continue
		}
		b, ok := s.MatchNumberUpTo(')')
		if !ok {
			continue
		}
		sum += a * b
	}
	return sum
}
