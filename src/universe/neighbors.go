package universe

//NeighborIndex maps every site index to the indices of its in-bounds neighbours
//the universe has hard edges: corners have 3 neighbours, edges 5, interior cells 8
type NeighborIndex [Size][]int

//NewNeighborIndex builds the index once for the fixed universe dimensions
//all lists share a single backing array, each list is capped so it can't grow into the next one
func NewNeighborIndex() *NeighborIndex {
	var n NeighborIndex
	b := make([]int, 0, 8*Size)
	for row := 0; row < Height; row++ {
		for col := 0; col < Width; col++ {
			start := len(b)
			for dr := -1; dr < 2; dr++ {
				for dc := -1; dc < 2; dc++ {
					//skip my position
					if dr == 0 && dc == 0 {
						continue
					}
					nr := row + dr
					nc := col + dc
					//skip coordinates outside the area
					if nr < 0 || nc < 0 || nr >= Height || nc >= Width {
						continue
					}
					b = append(b, nr*Width+nc)
				}
			}
			end := len(b)
			n[row*Width+col] = b[start:end:end]
		}
	}
	return &n
}

//Of returns the neighbour list of the site i, the caller must not modify it
func (n *NeighborIndex) Of(i int) []int {
	return n[i]
}

//expectedNeighbors returns how many neighbours the site at row, col must have
func expectedNeighbors(row int, col int) int {
	edgeRow := row == 0 || row == Height-1
	edgeCol := col == 0 || col == Width-1
	switch {
	case edgeRow && edgeCol:
		return 3
	case edgeRow || edgeCol:
		return 5
	}
	return 8
}
