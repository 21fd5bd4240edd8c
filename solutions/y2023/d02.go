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

type d2Game struct {
	id  int64
	max map[string]int64
}

// D2Part1 sums the IDs of the games possible with 12 red, 13 green and 14 blue cubes.
func D2Part1(input string) string {
	var sum int64
	for _, g := range d2Games(input) {
		if g.max["red"] <= 12 && g.max["green"] <= 13 && g.max["blue"] <= 14 {
			sum += g.id
		}
	}
	return itoa(sum)
}

// D2Part2 sums the power of the smallest cube set that makes each game possible.
func D2Part2(input string) string {
	var sum int64
	for _, g := range d2Games(input) {
		sum += g.max["red"] * g.max["green"] * g.max["blue"]
	}
	return itoa(sum)
}

// d2Games parses lines like "Game 1: 3 blue, 4 red; 1 red, 2 green" keeping the largest count seen per color.
func d2Games(input string) []d2Game {
	games := []d2Game{}
	for _, line := range strings.Split(input, "\n") {
		s := parse.NewScanner(line)
		if !s.AdvanceTo("Game ") {
			continue
		}
		id, ok := s.MatchNumberUpTo(':')
		if !ok {
			continue
		}

		g := d2Game{id: id, max: map[string]int64{}}
		for !s.IsDone() {
			s.Eat(" ,;")
			n, ok := s.MatchNumber()
			if !ok {
				break
			}
			s.Eat(" ")
			color := s.ReadMatch("abcdefghijklmnopqrstuvwxyz")
			if n > g.max[color] {
				g.max[color] = n
			}
		}
		games = append(games, g)
	}
	return games
}
