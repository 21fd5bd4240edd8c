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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samuellwn/aoc"
)

// Prompter asks questions on out and reads the answers from in, one line each.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line writes question and returns the next line of input with surrounding space trimmed. Running out of input
// counts as an empty answer.
func (p *Prompter) Line(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int asks for a number until it gets one. An empty answer (or no more input) picks def.
func (p *Prompter) Int(name string, def int) int {
	for {
		s, err := p.Line(fmt.Sprintf("%v [%v]: ", name, def))
		if err != nil || s == "" {
			return def
		}
		n, err := strconv.Atoi(s)
		if err == nil {
			return n
		}
		fmt.Fprintf(p.out, "%q is not a number.\n", s)
	}
}

// ResolveDay fills in a day from the positional arguments year, day and part, in that order. Anything missing or
// unparsable is asked for, defaulting to aoc.DefaultDay(now). The result is not validated.
func ResolveDay(args []string, now time.Time, p *Prompter) aoc.Day {
	d := aoc.DefaultDay(now)

	fields := []struct {
		name string
		v    *int
	}{
		{"Year", &d.Year},
		{"Day", &d.Day},
		{"Part", &d.Part},
	}
	for i, f := range fields {
		if i < len(args) {
			if n, err := strconv.Atoi(args[i]); err == nil {
				*f.v = n
				continue
			}
		}
		*f.v = p.Int(f.name, *f.v)
	}
	return d
}
