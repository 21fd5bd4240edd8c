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

// Package y2023 has my solutions for the start of Advent of Code 2023.
package y2023

import (
	"strconv"

	"github.com/samuellwn/aoc"
)

// Register adds every 2023 solver to r.
func Register(r *aoc.Registry) {
	r.Register(2023, 1, D1Part1, D1Part2)
	r.Register(2023, 2, D2Part1, D2Part2)
	r.Register(2023, 3, D3Part1, D3Part2)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
