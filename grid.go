package randomart

// Cell is the state of a single board cell: a capped visit count (0-14) or
// one of the start/end markers.
type Cell uint8

const (
	// CellStart marks the cell where the walk began.
	CellStart Cell = 15
	// CellEnd marks the cell where the walk ended.
	CellEnd Cell = 16
)

// glyphs maps visit counts to characters of increasing density, per the
// OpenSSH table. Index 14 exists but the tally cap keeps it unreachable.
var glyphs = []rune(" .o+=*BOX@%&#/^")

// Rune returns the character the cell renders as.
func (c Cell) Rune() rune {
	switch c {
	case CellStart:
		return 'S'
	case CellEnd:
		return 'E'
	}
	return glyphs[c]
}

// Grid is the visit-count state of the full board, indexed like the board
// itself (idx = x + Width*y).
type Grid [Cells]Cell

// Accumulate tallies a walk sequence into a grid. The sequence's first
// element marks the start cell and its last the end cell; markers are
// written before tallying and counts never overwrite them. When start and
// end coincide the end marker wins. Every position between the two is a
// visit, and per-cell tallies cap at 13.
func Accumulate(walk []int) Grid {
	var g Grid
	if len(walk) == 0 {
		return g
	}
	g[walk[0]] = CellStart
	g[walk[len(walk)-1]] = CellEnd
	if len(walk) < 2 {
		return g
	}
	for _, idx := range walk[1 : len(walk)-1] {
		if g[idx] >= CellStart {
			continue
		}
		if g[idx] < maxCount {
			g[idx]++
		}
	}
	return g
}
