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

import (
	"strings"

	"github.com/samuellwn/aoc/parse"
	"golang.org/x/exp/slices"
)

// D1Part1 sums the distances between the two location lists once both are sorted.
func D1Part1(input string) string {
	left, right := d1Lists(input)
	slices.Sort(left)
	slices.Sort(right)

	var sum int64
	for i := range left {
		sum += abs(left[i] - right[i])
	}
	return itoa(sum)
}

// D1Part2 computes the similarity score: each left number times how often it shows up on the right.
func D1Part2(input string) string {
	left, right := d1Lists(input)

	counts := map[int64]int64{}
	for _, n := range right {
		counts[n]++
	}

	var sum int64
	for _, n := range left {
		sum += n * counts[n]
	}
	return itoa(sum)
}

func d1Lists(input string) (left, right []int64) {
	for _, line := range strings.Split(input, "\n") {
		s := parse.NewScanner(line)
		s.Eat(" \t")
		a, ok := s.MatchNumber()
		if !ok {
			continue
		}
		s.Eat(" \t")
		b, ok := s.MatchNumber()
		if !ok {
			continue
		}
		left = append(left, a)
		right = append(right, b)
	}
	return left, right
}
