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

// D5Part1 sums the middle page of every update that is already in order.
func D5Part1(input string) string {
	rules, updates := d5Input(input)

	var sum int64
	for _, u := range updates {
		if d5Ordered(u, rules) {
			sum += u[len(u)/2]
		}
	}
	return itoa(sum)
}

// D5Part2 puts the out of order updates in order and sums their middle pages.
func D5Part2(input string) string {
	rules, updates := d5Input(input)

	var sum int64
	for _, u := range updates {
		if d5Ordered(u, rules) {
			continue
		}
		slices.SortFunc(u, func(a, b int64) bool {
			return rules[[2]int64{a, b}]
		})
		sum += u[len(u)/2]
	}
	return itoa(sum)
}

// d5Input splits the input into the set of "a before b" rules and the list of updates.
func d5Input(input string) (map[[2]int64]bool, [][]int64) {
	input = strings.ReplaceAll(input, "\r", "")
	first, second, _ := strings.Cut(strings.TrimLeft(input, "\n"), "\n\n")

	rules := map[[2]int64]bool{}
	for _, r := range parse.NewGridScanner(first).SplitToNumbers("|") {
		rules[[2]int64{r[0], r[1]}] = true
	}
	return rules, parse.NewGridScanner(second).SplitToNumbers(",")
}

func d5Ordered(update []int64, rules map[[2]int64]bool) bool {
	for i := range update {
		for j := i + 1; j < len(update); j++ {
			if rules[[2]int64{update[j], update[i]}] {
				return false
			}
		}
	}
	return true
}
