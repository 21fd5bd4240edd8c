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
)

// D7Part1 sums the test values of every equation that can be made true with + and *.
func D7Part1(input string) string {
	return itoa(d7Sum(input, false))
}

// D7Part2 is D7Part1 with the concatenation operator allowed as well.
func D7Part2(input string) string {
	return itoa(d7Sum(input, true))
}

func d7Sum(input string, concat bool) int64 {
	var sum int64
	for _, line := range strings.Split(input, "\n") {
		s := parse.NewScanner(line)
		target, ok := s.MatchNumberUpTo(':')
		if !ok {
			continue
		}
		rest := strings.TrimSpace(s.Rest())
		if rest == "" {
			continue
		}
		nums := parse.NewScanner(rest).SplitToNumbers(" ")[0]
		if d7Solve(target, nums[0], nums[1:], concat) {
			sum += target
		}
	}
	return sum
}

// d7Solve reports whether some choice of operators, applied left to right, takes acc to target. Every operator
// only grows the value, so a branch is dropped as soon as it passes the target.
func d7Solve(target, acc int64, nums []int64, concat bool) bool {
	if len(nums) == 0 {
		return acc == target
	}
	if acc > target {
		return false
	}

	n, rest := nums[0], nums[1:]
	if d7Solve(target, acc+n, rest, concat) || d7Solve(target, acc*n, rest, concat) {
		return true
	}
	return concat && d7Solve(target, d7Concat(acc, n), rest, concat)
}

func d7Concat(a, b int64) int64 {
	shift := int64(10)
	for shift <= b {
		shift *= 10
	}
	return a*shift + b
}
