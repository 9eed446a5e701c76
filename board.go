package randomart

import "fmt"

// Board dimensions, fixed by the OpenSSH algorithm being replicated.
const (
	// Width is the number of columns on the board.
	Width = 17
	// Height is the number of rows on the board.
	Height = 9
	// Cells is the total number of board cells.
	Cells = Width * Height
	// StartIndex is the center cell where every walk begins.
	StartIndex = Cells / 2
)

// maxCount is the highest visit tally a cell can accumulate. The glyph
// table has one more entry (index 14) that the cap keeps unreachable,
// matching the OpenSSH reference table.
const maxCount = 13

// zone is the topological region a cell occupies. The board boundary bends
// the bishop's diagonal moves, so each zone has its own direction table.
type zone int

const (
	zoneTopLeft zone = iota
	zoneTopRight
	zoneBottomLeft
	zoneBottomRight
	zoneTop
	zoneBottom
	zoneLeft
	zoneRight
	zoneInterior
)

// stepTable maps each zone to its four direction-code offsets. Codes are
// NW, NE, SW, SE on the interior; moves that would leave the board are
// redirected to stay in place or slide along the boundary, which keeps
// NextStep total.
var stepTable = [9][4]int{
	zoneTopLeft:     {0, 1, Width, Width + 1},
	zoneTopRight:    {-1, 0, Width - 1, Width},
	zoneBottomLeft:  {-Width, -Width + 1, 0, 1},
	zoneBottomRight: {-Width - 1, -Width, -1, 0},
	zoneTop:         {-1, 1, Width - 1, Width + 1},
	zoneBottom:      {-Width - 1, -Width + 1, -1, 1},
	zoneLeft:        {-Width, -Width + 1, Width, Width + 1},
	zoneRight:       {-Width - 1, -Width, Width - 1, Width},
	zoneInterior:    {-Width - 1, -Width + 1, Width - 1, Width + 1},
}

// classify returns the zone of the cell at idx. Corners are checked before
// edges since a corner satisfies both a row and a column edge predicate.
func classify(idx int) zone {
	x, y := CellXY(idx)
	top, bottom := y == 0, y == Height-1
	left, right := x == 0, x == Width-1
	switch {
	case top && left:
		return zoneTopLeft
	case top && right:
		return zoneTopRight
	case bottom && left:
		return zoneBottomLeft
	case bottom && right:
		return zoneBottomRight
	case top:
		return zoneTop
	case bottom:
		return zoneBottom
	case left:
		return zoneLeft
	case right:
		return zoneRight
	}
	return zoneInterior
}

// CellXY returns the column and row of the cell at linear index idx.
func CellXY(idx int) (x, y int) {
	return idx % Width, idx / Width
}

// CellIndex returns the linear index of the cell at column x, row y.
// It fails for coordinates outside the board.
func CellIndex(x, y int) (int, error) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, fmt.Errorf("randomart: cell (%d,%d) outside %dx%d board", x, y, Width, Height)
	}
	return x + Width*y, nil
}

// NextStep returns the cell reached from idx by a 2-bit direction code.
// Only the low 2 bits of code are used. The result is a valid board index
// for any valid idx, so the walk can never leave the board.
func NextStep(idx int, code byte) int {
	return idx + stepTable[classify(idx)][code&3]
}
