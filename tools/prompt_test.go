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

package tools

import (
	"strings"
	"testing"
	"time"

	"github.com/samuellwn/aoc"
)

var december6 = time.Date(2024, time.December, 6, 5, 0, 0, 0, time.UTC)

func TestResolveDayFromArgs(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader(""), &out)

	d := ResolveDay([]string{"2023", "3", "2"}, december6, p)
	if d != (aoc.Day{Year: 2023, Day: 3, Part: 2}) {
		t.Errorf("Incorrect day: %v", d)
	}
	if out.Len() != 0 {
		t.Errorf("Prompted with a full command line: %q", out.String())
	}
}

func TestResolveDayPrompts(t *testing.T) {
	var out strings.Builder
	p := NewPrompter(strings.NewReader("\nbogus\n9\n"), &out)

	// Year given, day is not a number so it is asked for, part is missing.
	d := ResolveDay([]string{"2022", "x"}, december6, p)
	if d != (aoc.Day{Year: 2022, Day: 6, Part: 9}) {
		t.Errorf("Incorrect day: %v", d)
	}

	want := "Day [6]: Part [1]: \"bogus\" is not a number.\nPart [1]: "
	if out.String() != want {
		t.Errorf("Incorrect prompts: %q", out.String())
	}
}

func TestResolveDayEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &strings.Builder{})

	d := ResolveDay(nil, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), p)
	if d != (aoc.Day{Year: 2024, Day: 1, Part: 1}) {
		t.Errorf("Incorrect default day: %v", d)
	}
}

func TestLine(t *testing.T) {
	p := NewPrompter(strings.NewReader("  yes \nlast"), &strings.Builder{})

	for _, want := range []string{"yes", "last", ""} {
		got, err := p.Line("? ")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Incorrect line: %q, expected %q", got, want)
		}
	}
}
