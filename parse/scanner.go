/*
Copyright 2021 by Milo Christiansen
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
Package parse contains the text scanning toolkit used by the puzzle solvers.

There are two scanners. Scanner is a single cursor over a string, with helpers for pulling numbers out of noisy
text, searching, and cutting out delimited regions. GridScanner treats the input as a 2D grid of characters and
walks it in any of eight directions, with helpers for searching, painting, and counting cells.

Neither scanner returns errors. Reads that fall outside the input report absence through a second boolean
result, and precondition violations (advancing past the end, writing outside the grid, unparsable numbers) panic
with one of the Err types from this package.
*/
package parse

import (
	"strconv"
	"strings"
)

// Scanner is a simple way to read from a string character by character, with lookahead.
//
// The cursor is always in the range [0, Len()]. When it equals Len() the scanner is done and every read is absent.
type Scanner struct {
	raw    string
	chars  []rune
	cursor int
}

// NewScanner returns a new Scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{
		raw:   s,
		chars: []rune(s),
	}
}

// Cursor returns the current index, counted in runes.
func (s *Scanner) Cursor() int {
	return s.cursor
}

// Len returns the length of the input in runes.
func (s *Scanner) Len() int {
	return len(s.chars)
}

// IsDone returns true when the cursor is at the end of input.
func (s *Scanner) IsDone() bool {
	return s.cursor == len(s.chars)
}

// Peek returns the character at the cursor.
func (s *Scanner) Peek() (rune, bool) {
	return s.PeekAt(0)
}

// PeekAt returns the character k positions past the cursor.
func (s *Scanner) PeekAt(k int) (rune, bool) {
	if k < 0 || k >= len(s.chars)-s.cursor {
		return 0, false
	}
	return s.chars[s.cursor+k], true
}

// Pop returns the character at the cursor and moves past it. At the end of input nothing moves.
func (s *Scanner) Pop() (rune, bool) {
	c, ok := s.Peek()
	if ok {
		s.cursor++
	}
	return c, ok
}

// Advance moves the cursor k characters forward. Moving past the end is a bug in the caller and panics with
// ErrAdvancePastEnd.
func (s *Scanner) Advance(k int) {
	if k < 0 || k > len(s.chars)-s.cursor {
		panic(ErrAdvancePastEnd{Cursor: s.cursor, By: k, Len: len(s.chars)})
	}
	s.cursor += k
}

// Reset moves the cursor back to the start of input.
func (s *Scanner) Reset() {
	s.cursor = 0
}

// Rest returns the unread part of the input without moving the cursor.
func (s *Scanner) Rest() string {
	return string(s.chars[s.cursor:])
}

// Match returns true if the character at the cursor is one of the chars in the string.
func (s *Scanner) Match(chars string) bool {
	c, ok := s.Peek()
	return ok && strings.ContainsRune(chars, c)
}

// Eat the given characters until something else is found or EOF.
func (s *Scanner) Eat(chars string) {
	for s.Match(chars) {
		s.cursor++
	}
}

// EatUntil eats all characters until one of the given chars is found or EOF.
func (s *Scanner) EatUntil(chars string) {
	for !s.IsDone() && !s.Match(chars) {
		s.cursor++
	}
}

// ReadMatch reads all matching characters until a nonmatching character is found or EOF.
func (s *Scanner) ReadMatch(chars string) string {
	start := s.cursor
	s.Eat(chars)
	return string(s.chars[start:s.cursor])
}

// index returns the absolute position of the first match of needle at or after the cursor, or -1.
func (s *Scanner) index(needle []rune) int {
	if len(needle) == 0 {
		panic(ErrEmptyNeedle(s.cursor))
	}
outer:
	for i := s.cursor; i+len(needle) <= len(s.chars); i++ {
		for j, c := range needle {
			if s.chars[i+j] != c {
				continue outer
			}
		}
		return i
	}
	return -1
}

// AdvanceTo searches forward for needle. If found the cursor lands just past the end of the match and true is
// returned. Otherwise the rest of the input is consumed and false is returned.
func (s *Scanner) AdvanceTo(needle string) bool {
	n := []rune(needle)
	i := s.index(n)
	if i < 0 {
		s.cursor = len(s.chars)
		return false
	}
	s.cursor = i + len(n)
	return true
}

// MatchNumber consumes the longest run of ASCII digits at the cursor and returns its value. If there is no digit
// at the cursor nothing is consumed and the result is absent. Signs are not handled.
func (s *Scanner) MatchNumber() (int64, bool) {
	digits := s.ReadMatch("0123456789")
	if digits == "" {
		return 0, false
	}
	return mustParseInt(digits, 0), true
}

// MatchNumberUpTo is like MatchNumber, but the number only counts if it is immediately followed by delim, in which
// case the delimiter is consumed too. If the delimiter does not follow, the digits stay consumed and the result is
// absent.
func (s *Scanner) MatchNumberUpTo(delim rune) (int64, bool) {
	n, ok := s.MatchNumber()
	if !ok {
		return 0, false
	}
	if c, ok := s.Peek(); !ok || c != delim {
		return 0, false
	}
	s.cursor++
	return n, true
}

// DeleteBetween returns the text from the cursor to the end of input with every open...close region cut out,
// delimiters included. An open with no matching close drops everything after it. The cursor ends at the end of
// input.
func (s *Scanner) DeleteBetween(open, close string) string {
	if open == close {
		panic(ErrSameDelimiters(open))
	}
	o := []rune(open)

	var out strings.Builder
	for !s.IsDone() {
		i := s.index(o)
		if i < 0 {
			out.WriteString(string(s.chars[s.cursor:]))
			s.cursor = len(s.chars)
			break
		}
		out.WriteString(string(s.chars[s.cursor:i]))
		s.cursor = i + len(o)
		s.AdvanceTo(close)
	}
	return out.String()
}

// SplitToNumbers splits the original input into non-empty lines, splits each line by sep, and parses every field.
// The cursor is not used or moved.
func (s *Scanner) SplitToNumbers(sep string) [][]int64 {
	return splitToNumbers(s.raw, sep)
}

func splitToNumbers(raw, sep string) [][]int64 {
	rtn := [][]int64{}
	line := 0
	for _, l := range strings.Split(raw, "\n") {
		line++
		if l == "" {
			continue
		}
		nums := []int64{}
		for _, field := range strings.Split(l, sep) {
			nums = append(nums, mustParseInt(field, line))
		}
		rtn = append(rtn, nums)
	}
	return rtn
}

func mustParseInt(field string, line int) int64 {
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		panic(ErrBadNumber{Line: line, Field: field})
	}
	return n
}
