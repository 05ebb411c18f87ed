package model

import (
	"bufio"
	"fmt"
	"io"
)

// ParseLevel reads a digit-grid level: one row per line, '0' open,
// '1' wall, '3' goal. Blank lines are skipped.
func ParseLevel(reader io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	cells := make([][]int, 0)

	row := 0
	for scanner.Scan() {
		s := scanner.Text()
		if len(s) == 0 {
			continue
		}
		line := make([]int, 0, len(s))
		for col, char := range s {
			switch char {
			case '0':
				line = append(line, CellOpen)
			case '1':
				line = append(line, CellWall)
			case '3':
				line = append(line, CellGoal)
			default:
				return nil, fmt.Errorf("model: bad cell %q at row %d col %d", char, row, col)
			}
		}
		cells = append(cells, line)
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewGrid(cells)
}
