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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samuellwn/aoc/solutions"
	"github.com/samuellwn/aoc/tools"
)

func main() {
	fs := tools.CommonFlagSet(tools.FlagRoot|tools.FlagSession|tools.FlagBaseURL, usage)
	list := false
	fs.Flags.BoolVar(&list, "list", list, "Print every solved puzzle part and exit.")
	fs.Parse()

	registry := solutions.Default()
	if list {
		for _, d := range registry.Days() {
			fmt.Println(d)
		}
		return
	}

	p := tools.NewPrompter(os.Stdin, os.Stdout)
	d := tools.ResolveDay(fs.Args(), time.Now(), p)
	tools.HandleErr(d.Validate())

	solver := tools.HandleErrV(registry.Lookup(d))
	c := tools.HandleErrV(fs.Client())
	input := tools.HandleErrV(c.Input(d))
	tools.HandleErrS(strings.TrimSpace(input) == "", "Puzzle input for "+d.String()+" is empty.")

	fmt.Printf("Running %v...\n", d)
	answer, elapsed, err := tools.Solve(solver, input)
	tools.HandleErr(err)
	fmt.Printf("Finished in %v\n", elapsed)
	fmt.Printf("Result: %v\n", answer)

	// Anything but an empty line submits.
	if tools.HandleErrV(p.Line("Submit? ")) == "" {
		return
	}
	fmt.Println(tools.HandleErrV(c.Submit(d, answer)))
}

var usage = `Usage: aoc [flags] [year] [day] [part]

This program runs one of my Advent of Code solvers against my puzzle input and
offers to submit the answer.

Inputs are downloaded once and cached under <root>/.data. The session token is
read from <root>/aoc-client/.session unless -session names another file. Copy
it from the "session" cookie of a logged in browser.

Any of year, day or part left off the command line is asked for. Just pressing
enter picks the default: the current puzzle in December, day 1 otherwise.

After the result is printed, enter anything to submit it or nothing to quit.
`
