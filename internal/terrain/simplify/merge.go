package simplify

// Group is a Size x Size block of quads whose top-left quad is (Row, Col).
type Group struct {
	Row  int
	Col  int
	Size int
}

// FindGroups partitions the grid into disjoint square groups. Scanning in
// row-major order, each unclaimed mergeable quad grows its block one ring
// at a time while every quad on the new ring is unclaimed, mergeable and
// shares its height-set. Sloped or laterally displaced quads always form
// 1x1 groups.
func (d *MeshData) FindGroups() []Group {
	claimed := make([]bool, d.Rows*d.Cols)
	var groups []Group

	for r := 0; r < d.Rows; r++ {
		for c := 0; c < d.Cols; c++ {
			if claimed[r*d.Cols+c] {
				continue
			}
			seed := &d.Quads[r][c]
			size := 1
			if seed.Mergeable() {
				for d.ringMatches(seed, r, c, size, claimed) {
					size++
				}
			}

			for i := r; i < r+size; i++ {
				for j := c; j < c+size; j++ {
					claimed[i*d.Cols+j] = true
				}
			}
			groups = append(groups, Group{Row: r, Col: c, Size: size})
		}
	}
	return groups
}

// ringMatches checks the ring that would grow a size x size block at
// (r, c) to size+1: the new column on the right and the new row below.
func (d *MeshData) ringMatches(seed *Quad, r, c, size int, claimed []bool) bool {
	edge := size
	if r+edge >= d.Rows || c+edge >= d.Cols {
		return false
	}
	for i := 0; i <= edge; i++ {
		for _, cell := range [2][2]int{{r + i, c + edge}, {r + edge, c + i}} {
			row, col := cell[0], cell[1]
			q := &d.Quads[row][col]
			if claimed[row*d.Cols+col] || !q.Mergeable() || !seed.SameHeights(q) {
				return false
			}
		}
	}
	return true
}

// Corners returns the vertex indices of the group's outer corners, ordered
// TopLeft, TopRight, BottomLeft, BottomRight.
func (d *MeshData) Corners(g Group) [4]uint32 {
	last := g.Size - 1
	return [4]uint32{
		d.Quads[g.Row][g.Col].Corners[TopLeft],
		d.Quads[g.Row][g.Col+last].Corners[TopRight],
		d.Quads[g.Row+last][g.Col].Corners[BottomLeft],
		d.Quads[g.Row+last][g.Col+last].Corners[BottomRight],
	}
}
