package maze

import "container/heap"

// Build is a set of coordinates designating cells converted to Block. It is
// created empty, grown monotonically by a placement strategy, pruned by the
// adjacency post-pass, then applied to a grid.
type Build struct {
	Blocks BlockSet
}

// NewBuild returns an empty Build.
func NewBuild() *Build {
	return &Build{Blocks: NewBlockSet()}
}

// Contains implements Container.
func (b *Build) Contains(c Coordinate) bool {
	return b.Blocks.Contains(c)
}

// Apply returns a copy of grid with every block coordinate converted to
// Block, leaving grid itself untouched. Applying the same Build twice to
// the same grid produces the same result (idempotent).
func (b *Build) Apply(grid Grid) Grid {
	out := grid.Clone()
	for c := range b.Blocks {
		c.Set(out, Block)
	}
	return out
}

// IsValid reports whether every spawn region in tileset has at least one
// entrance from which a path to some Core exists under overlay. It always
// uses orthogonal-only connectivity, regardless of what diagonals setting
// the calling strategy was run with: this is the source's deliberate
// asymmetry (see DESIGN.md) that makes the validity check stricter than,
// and therefore safe under, the placement search's diagonal movement.
func IsValid(tileset *Tileset, overlay Container) bool {
	for _, entrances := range tileset.EntrancesByRegion {
		starts := startPointsFromEntrances(entrances)
		if _, ok := FromAnyCoordToTile(tileset.Grid, overlay, starts, Core, false); !ok {
			return false
		}
	}
	return true
}

// FindValidBlockPlacement scans path from its core-end backward for an
// Empty cell that, if added to existing, still leaves every spawn region
// with at least one path to a core. It returns the first such candidate.
func FindValidBlockPlacement(tileset *Tileset, existing Container, path ShortestPath) (Coordinate, bool) {
	for i := len(path.Coordinates) - 1; i >= 0; i-- {
		c := path.Coordinates[i]
		tile, ok := c.Get(tileset.Grid)
		if !ok || tile != Empty {
			continue
		}

		if IsValid(tileset, WithCandidate(existing, c)) {
			return c, true
		}
	}
	return Coordinate{}, false
}

// MaxBlocks caps the number of blocks a strategy will place. A nil value
// means no cap.
type MaxBlocks = *int

// RoundRobin grows a Build by cycling through spawn regions, placing at
// most one block per region per cycle along that region's current
// shortest path, until either maxBlocks is reached or a full cycle places
// nothing.
func RoundRobin(tileset *Tileset, diagonals bool, maxBlocks MaxBlocks) *Build {
	build := NewBuild()
	total := len(tileset.EntrancesByRegion)
	if total == 0 {
		return build
	}

	regionIndex := -1
	placementsThisCycle := 0

	for {
		if maxBlocks != nil && build.Blocks.Len() >= *maxBlocks {
			break
		}

		if regionIndex < total-1 {
			regionIndex++
		} else if placementsThisCycle > 0 {
			regionIndex = 0
			placementsThisCycle = 0
		} else {
			break
		}

		starts := startPointsFromEntrances(tileset.EntrancesByRegion[regionIndex])
		path, ok := FromAnyCoordToTile(tileset.Grid, build.Blocks, starts, Core, diagonals)
		if !ok {
			continue
		}

		coord, ok := FindValidBlockPlacement(tileset, build.Blocks, path)
		if !ok {
			continue
		}

		build.Blocks.Add(coord)
		pruneAdjacent(tileset, build, coord, diagonals)
		placementsThisCycle++
	}

	return build
}

// priorityItem is one entry of the priority strategy's ordered queue: a
// region's currently-known shortest path, and which region it belongs to.
type priorityItem struct {
	path   ShortestPath
	region int
}

// priorityQueue is a container/heap min-heap ordered by ShortestPath.Less,
// so the region with the weakest defense is always popped first.
type priorityQueue []priorityItem

func (q priorityQueue) Len() int            { return len(q) }
func (q priorityQueue) Less(i, j int) bool  { return q[i].path.Less(q[j].path) }
func (q priorityQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(x interface{}) { *q = append(*q, x.(priorityItem)) }
func (q *priorityQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Priority grows a Build by always working on whichever spawn region
// currently has the shortest path to a core, re-scoring that region's path
// after every placement.
func Priority(tileset *Tileset, diagonals bool, maxBlocks MaxBlocks) *Build {
	build := NewBuild()

	pq := &priorityQueue{}
	heap.Init(pq)
	refresh := func(region int) {
		starts := startPointsFromEntrances(tileset.EntrancesByRegion[region])
		if path, ok := FromAnyCoordToTile(tileset.Grid, build.Blocks, starts, Core, diagonals); ok {
			heap.Push(pq, priorityItem{path: path, region: region})
		}
	}

	for region := range tileset.EntrancesByRegion {
		refresh(region)
	}

	for pq.Len() > 0 {
		if maxBlocks != nil && build.Blocks.Len() >= *maxBlocks {
			break
		}

		item := heap.Pop(pq).(priorityItem)

		stale := false
		for _, c := range item.path.Coordinates {
			if build.Blocks.Contains(c) {
				stale = true
				break
			}
		}
		if stale {
			refresh(item.region)
			continue
		}

		coord, ok := FindValidBlockPlacement(tileset, build.Blocks, item.path)
		if !ok {
			// No legal placement remains along this region's current path;
			// it is not re-queued, so it drops out for the rest of the run.
			continue
		}

		build.Blocks.Add(coord)
		pruneAdjacent(tileset, build, coord, diagonals)
		refresh(item.region)
	}

	return build
}

// pruneAdjacent removes newly-redundant blocks near a just-committed block
// c. A block is redundant if removing it leaves every region's shortest
// path to a core exactly as it was: not merely the same length, the same
// sequence of coordinates. See DESIGN.md for the tie-break rationale.
func pruneAdjacent(tileset *Tileset, build *Build, c Coordinate, diagonals bool) {
	expected := FromEntrancesToAnyCore(tileset, build.Blocks, diagonals)

	visited := map[Coordinate]bool{}
	queue := []Coordinate{c}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		AdjacentTo(tileset.Grid, cur, diagonals).Each(func(n Coordinate) {
			if visited[n] || !build.Blocks.Contains(n) {
				return
			}
			visited[n] = true

			build.Blocks.Remove(n)
			if shortestPathSetsEqual(expected, FromEntrancesToAnyCore(tileset, build.Blocks, diagonals)) {
				queue = append(queue, n)
			} else {
				build.Blocks.Add(n)
			}
		})
	}
}

func shortestPathSetsEqual(a, b []*ShortestPath) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch {
		case a[i] == nil && b[i] == nil:
			continue
		case a[i] == nil || b[i] == nil:
			return false
		case len(a[i].Coordinates) != len(b[i].Coordinates):
			return false
		}
		if a[i] == nil {
			continue
		}
		for j := range a[i].Coordinates {
			if a[i].Coordinates[j] != b[i].Coordinates[j] {
				return false
			}
		}
	}
	return true
}
