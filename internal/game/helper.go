package game

// lines holds the eight winning triples: rows, columns, then the two diagonals.
var lines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Rows converts the board to a slice of slices, the shape clients render and serialize.
func (b Board) Rows() [][]Mark {
	rows := make([][]Mark, Size)
	for i := range [Size]int{} {
		rows[i] = make([]Mark, Size)
		for j := range [Size]int{} {
			rows[i][j] = b[i][j]
		}
	}
	return rows
}

// String renders the board as three lines, with '.' for empty cells.
func (b Board) String() string {
	out := make([]byte, 0, Size*(Size+1))
	for r := range [Size]int{} {
		for c := range [Size]int{} {
			switch b[r][c] {
			case Empty:
				out = append(out, '.')
			default:
				out = append(out, b[r][c][0])
			}
		}
		if r < BorderMax {
			out = append(out, '\n')
		}
	}
	return string(out)
}
