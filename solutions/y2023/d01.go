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

import (
	"strings"

	"github.com/samuellwn/aoc/parse"
)

var digitWords = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// D1Part1 sums the calibration values, the first and last digit of every line.
func D1Part1(input string) string {
	return itoa(d1Sum(input, false))
}

// D1Part2 is D1Part1, but spelled out digits count too.
func D1Part2(input string) string {
	return itoa(d1Sum(input, true))
}

func d1Sum(input string, words bool) int64 {
	var sum int64
	for _, line := range strings.Split(input, "\n") {
		first, last := -1, -1
		s := parse.NewScanner(line)
		for !s.IsDone() {
			if d, ok := d1Digit(s, words); ok {
				if first < 0 {
					first = d
				}
				last = d
			}
			s.Pop()
		}
		if first >= 0 {
			sum += int64(first*10 + last)
		}
	}
	return sum
}

// d1Digit reads the digit at the cursor without moving. Spelled out words may overlap ("oneight"), so only a
// single character is ever consumed by the caller.
func d1Digit(s *parse.Scanner, words bool) (int, bool) {
	c, ok := s.Peek()
	if !ok {
		return 0, false
	}
	if isDigit(c) {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	rest := s.Rest()
	for d, w := range digitWords {
		if strings.HasPrefix(rest, w) {
			return d, true
		}
	}
	return 0, false
}
