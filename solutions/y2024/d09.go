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

package y2024

import "github.com/samuellwn/aoc/parse"

// D9Part1 compacts the disk one block at a time and returns the filesystem checksum.
func D9Part1(input string) string {
	disk := d9Blocks(input)

	l, r := 0, len(disk)-1
	for {
		for l < len(disk) && disk[l] >= 0 {
			l++
		}
		for r >= 0 && disk[r] < 0 {
			r--
		}
		if l >= r {
			break
		}
		disk[l], disk[r] = disk[r], -1
	}
	return itoa(d9Checksum(disk))
}

// D9Part2 moves whole files instead, highest ID first, each to the leftmost gap that fits it.
func D9Part2(input string) string {
	files, gaps := d9Spans(input)

	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for i := range gaps {
			g := &gaps[i]
			if g.pos >= f.pos {
				break
			}
			if g.size < f.size {
				continue
			}
			f.pos = g.pos
			g.pos += f.size
			g.size -= f.size
			break
		}
	}

	var sum int64
	for id, f := range files {
		for i := 0; i < f.size; i++ {
			sum += int64(id * (f.pos + i))
		}
	}
	return itoa(sum)
}

type d9Span struct {
	pos, size int
}

// d9Digits reads the dense disk map, skipping anything that is not a digit.
func d9Digits(input string) []int {
	s := parse.NewScanner(input)
	rtn := []int{}
	for !s.IsDone() {
		c, _ := s.Pop()
		if c >= '0' && c <= '9' {
			rtn = append(rtn, int(c-'0'))
		}
	}
	return rtn
}

// d9Blocks expands the disk map into one entry per block: the file ID, or -1 for free space.
func d9Blocks(input string) []int {
	disk := []int{}
	for i, n := range d9Digits(input) {
		id := -1
		if i%2 == 0 {
			id = i / 2
		}
		for ; n > 0; n-- {
			disk = append(disk, id)
		}
	}
	return disk
}

// d9Spans returns the files, indexed by ID, and the free gaps in disk order.
func d9Spans(input string) (files, gaps []d9Span) {
	pos := 0
	for i, n := range d9Digits(input) {
		if i%2 == 0 {
			files = append(files, d9Span{pos, n})
		} else if n > 0 {
			gaps = append(gaps, d9Span{pos, n})
		}
		pos += n
	}
	return files, gaps
}

func d9Checksum(disk []int) int64 {
	var sum int64
	for i, id := range disk {
		if id > 0 {
			sum += int64(i * id)
		}
	}
	return sum
}
