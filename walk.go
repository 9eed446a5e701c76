package randomart

// Walk computes the bishop's path across the board for the given input.
// The returned sequence starts at StartIndex and holds four more positions
// per input byte, one for each 2-bit direction code. Codes are consumed
// from the low-order bit pair of each byte upward.
//
// Walk is a pure function of its input: equal inputs always produce equal
// paths.
func Walk(data []byte) []int {
	seq := make([]int, 0, 1+4*len(data))
	pos := StartIndex
	seq = append(seq, pos)
	for _, b := range data {
		for shift := 0; shift < 8; shift += 2 {
			pos = NextStep(pos, b>>shift)
			seq = append(seq, pos)
		}
	}
	return seq
}
