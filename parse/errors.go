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

package parse

import "fmt"

// The scanners never return errors. Reading past the end gives an absent value, but breaking one of the
// preconditions below is a bug in the caller, so the scanner panics with one of these values instead.

// ErrAdvancePastEnd is the panic value when Scanner.Advance would move the cursor past the end of input.
type ErrAdvancePastEnd struct {
	Cursor int // Cursor before the advance.
	By     int // Requested distance.
	Len    int // Length of the input.
}

func (err ErrAdvancePastEnd) Error() string {
	return fmt.Sprintf("Cannot advance %v from %v past the end of the input (length %v)", err.By, err.Cursor, err.Len)
}

// ErrOutOfBounds is the panic value when a grid write targets a cell that does not exist.
type ErrOutOfBounds Point

func (err ErrOutOfBounds) Error() string {
	return fmt.Sprintf("Grid position out of bounds: %v", Point(err))
}

// ErrBadNumber is the panic value when a numeric field cannot be parsed as a signed 64 bit integer.
type ErrBadNumber struct {
	Line  int // 1 based, 0 when the number did not come from a line split.
	Field string
}

func (err ErrBadNumber) Error() string {
	if err.Line == 0 {
		return fmt.Sprintf("Malformed number: %q", err.Field)
	}
	return fmt.Sprintf("Malformed number %q on line: %v", err.Field, err.Line)
}

// ErrEmptyNeedle is the panic value when a search is asked to find the empty string.
type ErrEmptyNeedle int

func (err ErrEmptyNeedle) Error() string {
	return fmt.Sprintf("Empty search needle at cursor: %v", int(err))
}

// ErrSameDelimiters is the panic value when Scanner.DeleteBetween is given identical open and close strings.
type ErrSameDelimiters string

func (err ErrSameDelimiters) Error() string {
	return fmt.Sprintf("Open and close delimiters must differ, both are %q", string(err))
}

// ErrNotCardinal is the panic value when a four way operation is used with a diagonal direction.
type ErrNotCardinal Direction

func (err ErrNotCardinal) Error() string {
	return fmt.Sprintf("Direction is not cardinal: %v", Direction(err))
}
