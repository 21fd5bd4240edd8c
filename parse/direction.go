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

// Direction is one of the eight compass directions on a grid, in clockwise order starting at Right.
type Direction int

// Direction constants. Rows grow downward, columns grow to the right.
const (
	Right Direction = iota
	RightDown
	Down
	DownLeft
	Left
	LeftUp
	Up
	UpRight
)

// Values8 holds every direction in clockwise order.
var Values8 = []Direction{Right, RightDown, Down, DownLeft, Left, LeftUp, Up, UpRight}

// Values4 holds the cardinal directions in clockwise order.
var Values4 = []Direction{Right, Down, Left, Up}

var deltas = [...][2]int{
	Right:     {0, 1},
	RightDown: {1, 1},
	Down:      {1, 0},
	DownLeft:  {1, -1},
	Left:      {0, -1},
	LeftUp:    {-1, -1},
	Up:        {-1, 0},
	UpRight:   {-1, 1},
}

var names = [...]string{
	Right:     "Right",
	RightDown: "RightDown",
	Down:      "Down",
	DownLeft:  "DownLeft",
	Left:      "Left",
	LeftUp:    "LeftUp",
	Up:        "Up",
	UpRight:   "UpRight",
}

// Delta returns the row and column step for d.
func (d Direction) Delta() (int, int) {
	v := deltas[d]
	return v[0], v[1]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// IsCardinal returns true for Right, Down, Left, and Up.
func (d Direction) IsCardinal() bool {
	return d%2 == 0
}

// Next4 returns the next cardinal direction clockwise. Diagonals panic with ErrNotCardinal.
func (d Direction) Next4() Direction {
	if !d.IsCardinal() {
		panic(ErrNotCardinal(d))
	}
	return (d + 2) % 8
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(names) {
		return "Direction(?)"
	}
	return names[d]
}
