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

package aoc

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Solver computes the answer for one puzzle part from the raw puzzle input.
type Solver func(input string) string

// ErrNoSolver is returned by Registry.Lookup when nothing is registered for a day.
type ErrNoSolver Day

func (err ErrNoSolver) Error() string {
	return fmt.Sprintf("No solver registered for %v", Day(err))
}

// Registry maps puzzle parts to their solvers.
type Registry struct {
	solvers map[Day]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: map[Day]Solver{}}
}

// Add registers a solver for a single part, replacing any existing one.
func (r *Registry) Add(d Day, s Solver) {
	r.solvers[d] = s
}

// Register adds both parts of a day at once. A nil solver is skipped, for days I never finished.
func (r *Registry) Register(year, day int, part1, part2 Solver) {
	for i, s := range []Solver{part1, part2} {
		if s != nil {
			r.Add(Day{Year: year, Day: day, Part: i + 1}, s)
		}
	}
}

// Lookup returns the solver for d.
func (r *Registry) Lookup(d Day) (Solver, error) {
	s, ok := r.solvers[d]
	if !ok {
		return nil, ErrNoSolver(d)
	}
	return s, nil
}

// Days returns every registered part in chronological order.
func (r *Registry) Days() []Day {
	days := maps.Keys(r.solvers)
	slices.SortFunc(days, func(a, b Day) bool {
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Part < b.Part
	})
	return days
}
