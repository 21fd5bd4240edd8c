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

/*
Package aoc ties together my Advent of Code workspace.

The interesting parts live in the sub packages: parse has the text scanners every solver is built on, client
talks to adventofcode.com (with a local input cache so the site only gets hit once per puzzle), and solutions
holds the solvers themselves. This package only has the small types they all share.
*/
package aoc

import (
	"fmt"
	"time"
)

// FirstYear is the first year Advent of Code ran.
const FirstYear = 2015

// Day identifies a single puzzle part.
type Day struct {
	Year int
	Day  int
	Part int
}

func (d Day) String() string {
	return fmt.Sprintf("%v day %v part %v", d.Year, d.Day, d.Part)
}

// ErrBadDay is returned by Day.Validate for a puzzle that cannot exist.
type ErrBadDay Day

func (err ErrBadDay) Error() string {
	return fmt.Sprintf("No such puzzle: %v", Day(err))
}

// Validate checks the day is in range. The year is only checked against the first event, since I have no way of
// knowing what year it is for you.
func (d Day) Validate() error {
	if d.Year < FirstYear || d.Day < 1 || d.Day > 25 || d.Part < 1 || d.Part > 2 {
		return ErrBadDay(d)
	}
	return nil
}

// DefaultDay returns the puzzle to default to at the given time: the current UTC year, the current UTC day of the
// month during December (day 1 otherwise), and part 1.
func DefaultDay(now time.Time) Day {
	now = now.UTC()
	d := Day{Year: now.Year(), Day: 1, Part: 1}
	if now.Month() == time.December {
		d.Day = now.Day()
	}
	return d
}
