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

package solutions

import (
	"testing"

	"github.com/samuellwn/aoc"
)

func TestDefault(t *testing.T) {
	r := Default()

	days := r.Days()
	if len(days) != 2*(3+11) {
		t.Errorf("Incorrect number of registered solvers: %v", len(days))
	}

	for _, d := range []aoc.Day{{Year: 2023, Day: 1, Part: 1}, {Year: 2023, Day: 3, Part: 2}, {Year: 2024, Day: 6, Part: 2}, {Year: 2024, Day: 11, Part: 1}} {
		if _, err := r.Lookup(d); err != nil {
			t.Errorf("Missing solver for %v: %v", d, err)
		}
	}

	if _, err := r.Lookup(aoc.Day{Year: 2024, Day: 25, Part: 1}); err == nil {
		t.Errorf("Lookup of an unsolved day succeeded.")
	}
}
