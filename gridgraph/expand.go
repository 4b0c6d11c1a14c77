package gridgraph

import (
	"container/list"
)

// Breach finds the cheapest way to join component srcComp to dstComp by
// knocking down walls: a 0-1 BFS in which stepping onto an open cell costs 0
// and onto a wall costs 1. It returns the row-major cell path and the number
// of walls on it.
//
// Returns ErrComponentIndex for bad indices and ErrNoPath if dst cannot be
// reached (only possible when the grid has no cells between them).
//
// Time:   O(W·H·d). Memory: O(W·H).
func (gg *GridGraph) Breach(srcComp, dstComp int) (path []int, walls int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[int]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	n := gg.Width * gg.Height
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// deque: 0-cost moves go to the front, 1-cost moves to the back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushBack(i)
	}

	target := -1
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if _, ok := dstSet[u]; ok {
			target = u
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !gg.InBounds(vx, vy) {
				continue
			}
			v := gg.index(vx, vy)
			step := 0
			if !gg.Open(vx, vy) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}

	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[target], nil
}

// WallsOn returns the IDs of the wall cells on a Breach path.
func (gg *GridGraph) WallsOn(path []int) []string {
	var out []string
	for _, i := range path {
		x, y := gg.Coordinate(i)
		if !gg.Open(x, y) {
			out = append(out, CellID(x, y))
		}
	}

	return out
}
