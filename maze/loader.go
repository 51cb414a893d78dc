package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// Load reads a maze description from the file at path. See Parse for the format.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse builds a maze from its text description:
//
//	5 5        rows cols
//	4 1        start row, col
//	3 4        exit row, col
//	*****      rows lines, '*' is a wall, anything else is open
//	* * *
//	...
//
// Numbers are separated by spaces, tabs or commas. A signed coordinate is
// read with its sign, so negative positions fail with ErrIndexOutOfBounds.
// Missing grid lines are treated as open rows; extra lines are ignored.
func Parse(r io.Reader) (*Maze, error) {
	scanner := bufio.NewScanner(r)

	var header [3][2]int
	for i := range header {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: missing header line %d", ErrMalformedLayout, i+1)
		}
		pair, err := parsePair(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: header line %d: %v", ErrMalformedLayout, i+1, err)
		}
		header[i] = pair
	}

	m, err := New(header[0][0], header[0][1])
	if err != nil {
		return nil, err
	}
	if err := m.SetStart(header[1][0], header[1][1]); err != nil {
		return nil, err
	}
	if err := m.SetExit(header[2][0], header[2][1]); err != nil {
		return nil, err
	}

	for row := 0; row < m.Rows() && scanner.Scan(); row++ {
		line := scanner.Text()
		for col := 0; col < len(line) && col < m.Cols(); col++ {
			if line[col] == WallGlyph {
				if err := m.SetWall(row, col); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// parsePair extracts exactly two integers from line.
func parsePair(line string) ([2]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	if len(fields) != 2 {
		return [2]int{}, fmt.Errorf("want 2 numbers, got %q", line)
	}
	var pair [2]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return [2]int{}, err
		}
		pair[i] = n
	}
	return pair, nil
}
