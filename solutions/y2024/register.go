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

/*
Package y2024 has my solutions for Advent of Code 2024.

Every solver takes the raw puzzle input and returns the answer as a string, ready to submit.
*/
package y2024

import (
	"strconv"

	"github.com/samuellwn/aoc"
	"golang.org/x/exp/constraints"
)

// Register adds every 2024 solver to r.
func Register(r *aoc.Registry) {
	r.Register(2024, 1, D1Part1, D1Part2)
	r.Register(2024, 2, D2Part1, D2Part2)
	r.Register(2024, 3, D3Part1, D3Part2)
	r.Register(2024, 4, D4Part1, D4Part2)
	r.Register(2024, 5, D5Part1, D5Part2)
	r.Register(2024, 6, D6Part1, D6Part2)
	r.Register(2024, 7, D7Part1, D7Part2)
	r.Register(2024, 8, D8Part1, D8Part2)
	r.Register(2024, 9, D9Part1, D9Part2)
	r.Register(2024, 10, D10Part1, D10Part2)
	r.Register(2024, 11, D11Part1, D11Part2)
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func itoa[T constraints.Integer](v T) string {
	return strconv.FormatInt(int64(v), 10)
}
