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

// D4Part1 counts every XMAS in the word search, in all eight directions.
func D4Part1(input string) string {
	g := parse.NewGridScanner(input)
	n := 0
	for !g.IsDone() {
		n += len(g.WordCount("XMAS"))
		g.Pop()
	}
	return itoa(n)
}

// D4Part2 counts the MAS crosses.
func D4Part2(input string) string {
	g := parse.NewGridScanner(input)
	n := 0
	for !g.IsDone() {
		if g.DiagonalXExistsInAnyOrder("MAS") {
			n++
		}
		g.Pop()
	}
	return itoa(n)
}
