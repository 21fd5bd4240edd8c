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
)

// D11Part1 counts the stones after 25 blinks.
func D11Part1(input string) string {
	return itoa(d11Count(input, 25))
}

// D11Part2 counts the stones after 75 blinks.
func D11Part2(input string) string {
	return itoa(d11Count(input, 75))
}

func d11Count(input string, blinks int) int64 {
	memo := map[d11Key]int64{}

	var n int64
	for _, line := range parse.NewScanner(input).SplitToNumbers(" ") {
		for _, stone := range line {
			n += d11Stones(stone, blinks, memo)
		}
	}
	return n
}

type d11Key struct {
	stone  int64
	blinks int
}

// d11Stones returns how many stones a single stone turns into after the given number of blinks.
func d11Stones(stone int64, blinks int, memo map[d11Key]int64) int64 {
	if blinks == 0 {
		return 1
	}
	k := d11Key{stone, blinks}
	if n, ok := memo[k]; ok {
		return n
	}

	var n int64
	for _, s := range d11Blink(stone) {
		n += d11Stones(s, blinks-1, memo)
	}
	memo[k] = n
	return n
}

// d11Blink applies the first matching rule to a stone.
func d11Blink(stone int64) []int64 {
	if stone == 0 {
		return []int64{1}
	}

	digits, half := 0, int64(1)
	for v := stone; v > 0; v /= 10 {
		digits++
		if digits%2 == 0 {
			half *= 10
		}
	}
	if digits%2 == 0 {
		return []int64{stone / half, stone % half}
	}
	return []int64{stone * 2024}
}
