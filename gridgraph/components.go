package gridgraph

// ConnectedComponents finds all contiguous regions of open cells according to
// gg.Conn connectivity. Components are ordered by their first cell in
// row-major order; each is a slice of row-major cell indices in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Open(x, y) {
				continue // wall
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Open(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// ComponentOf returns the index into ConnectedComponents() of the component
// containing (x,y), or -1 for walls and out-of-bounds cells.
func (gg *GridGraph) ComponentOf(x, y int) int {
	if !gg.Open(x, y) {
		return -1
	}
	target := gg.index(x, y)
	for ci, comp := range gg.ConnectedComponents() {
		for _, i := range comp {
			if i == target {
				return ci
			}
		}
	}

	return -1
}

// Connected reports whether a and b are open and in the same component.
func (gg *GridGraph) Connected(a, b Cell) bool {
	ca := gg.ComponentOf(a.X, a.Y)

	return ca >= 0 && ca == gg.ComponentOf(b.X, b.Y)
}
