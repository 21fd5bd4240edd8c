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
	"github.com/samuellwn/aoc/parse"
	"golang.org/x/exp/slices"
)

// D2Part1 counts the safe reports.
func D2Part1(input string) string {
	n := 0
	for _, report := range parse.NewGridScanner(input).SplitToNumbers(" ") {
		if d2Safe(report) {
			n++
		}
	}
	return itoa(n)
}

// D2Part2 counts the reports that are safe with at most one level removed.
func D2Part2(input string) string {
	n := 0
	for _, report := range parse.NewGridScanner(input).SplitToNumbers(" ") {
		if d2Dampened(report) {
			n++
		}
	}
	return itoa(n)
}

// d2Safe reports whether the levels all increase or all decrease, by 1 to 3 each step.
func d2Safe(levels []int64) bool {
	if len(levels) < 2 {
		return true
	}
	up := levels[1] > levels[0]
	for i := 1; i < len(levels); i++ {
		diff := levels[i] - levels[i-1]
		if !up {
			diff = -diff
		}
		if diff < 1 || diff > 3 {
			return false
		}
	}
	return true
}

func d2Dampened(levels []int64) bool {
	if d2Safe(levels) {
		return true
	}
	for i := range levels {
		if d2Safe(slices.Delete(slices.Clone(levels), i, i+1)) {
			return true
		}
	}
	return false
}
