/*
Copyright 2022 by Milo Christiansen
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
	"fmt"
	"os"
)

// HandleErrV unwraps a value+err pair, so calls like HandleErrV(c.Input(d)) read as one step. A non-nil error
// ends the program through Fatalf.
func HandleErrV[T any](t T, err error) T {
	HandleErr(err)
	return t
}

// HandleErrS ends the program with message err if cond holds.
func HandleErrS(cond bool, err string) {
	if cond {
		Fatalf("%v", err)
	}
}

// HandleErr ends the program through Fatalf if err is not nil.
func HandleErr(err error) {
	if err != nil {
		Fatalf("%v", err)
	}
}

// Fatalf writes a formatted message to standard error and calls os.Exit(1). Every failure in the aoc tool ends
// up here.
func Fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
