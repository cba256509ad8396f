package maze

import "sort"

// StartPoint is a BFS starting coordinate together with a distance offset
// already travelled to reach it (used for entrances, which are seeded with
// their Manhattan distance from the spawn region's anchor).
type StartPoint struct {
	Coordinate    Coordinate
	StartDistance int
}

// ShortestPath is a BFS-shortest walk from a start cell to a target tile
// kind, plus the start_distance offset it was seeded with. Both endpoints
// are included in Coordinates.
type ShortestPath struct {
	Coordinates   []Coordinate
	StartDistance int
}

// Len is the path's reported length: the number of cells walked plus the
// start_distance offset.
func (p ShortestPath) Len() int {
	return len(p.Coordinates) + p.StartDistance
}

// Less implements the total order over ShortestPath: primarily by Len,
// then lexicographically by coordinate sequence so that ties are resolved
// deterministically (needed for the priority strategy's ordered queue, and
// for order-independent parallel reductions).
func (p ShortestPath) Less(other ShortestPath) bool {
	if p.Len() != other.Len() {
		return p.Len() < other.Len()
	}
	for i := 0; i < len(p.Coordinates) && i < len(other.Coordinates); i++ {
		a, b := p.Coordinates[i], other.Coordinates[i]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
	}
	return len(p.Coordinates) < len(other.Coordinates)
}

// shorter returns whichever of p, other sorts first by Less; p wins ties.
func (p ShortestPath) shorter(other ShortestPath) ShortestPath {
	if other.Less(p) {
		return other
	}
	return p
}

// FromCoordToTile returns the shortest path from start to the nearest cell
// whose overlay-aware tile equals target, or ok=false if none exists.
func FromCoordToTile(grid Grid, overlay Container, start Coordinate, startDistance int, target Tile, diagonals bool) (ShortestPath, bool) {
	startTile, ok := start.GetWithOverlay(grid, overlay)
	if !ok || !startTile.IsPassable() {
		return ShortestPath{}, false
	}

	type queued struct {
		coord Coordinate
		path  []Coordinate
	}

	queue := []queued{{coord: start, path: []Coordinate{start}}}
	visited := make(map[Coordinate]int)

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if best, seen := visited[item.coord]; seen && best <= len(item.path) {
			continue
		}

		tile, ok := item.coord.GetWithOverlay(grid, overlay)
		if !ok {
			continue
		}

		if tile == target {
			return ShortestPath{Coordinates: item.path, StartDistance: startDistance}, true
		}

		if tile.IsPassable() {
			AdjacentToWithOverlay(grid, overlay, item.coord, diagonals).Each(func(next Coordinate) {
				extended := make([]Coordinate, len(item.path), len(item.path)+1)
				copy(extended, item.path)
				extended = append(extended, next)
				queue = append(queue, queued{coord: next, path: extended})
			})
		}

		visited[item.coord] = len(item.path)
	}

	return ShortestPath{}, false
}

// FromAnyCoordToTile computes the shortest path from each start to target
// and returns the minimum by Len (ties broken by ShortestPath.Less). The
// per-start searches are independent and safe to run in parallel; the
// reduction is order-independent modulo Less's deterministic tie-break.
func FromAnyCoordToTile(grid Grid, overlay Container, starts []StartPoint, target Tile, diagonals bool) (ShortestPath, bool) {
	var best ShortestPath
	found := false

	for _, start := range starts {
		path, ok := FromCoordToTile(grid, overlay, start.Coordinate, start.StartDistance, target, diagonals)
		if !ok {
			continue
		}
		if !found {
			best, found = path, true
			continue
		}
		best = best.shorter(path)
	}

	return best, found
}

// FromEntrancesToAnyCore computes, for each spawn region in index order,
// the shortest path from that region's entrance set to any Core cell,
// using each entrance's recorded distance as StartDistance. The result is
// aligned with tileset.EntrancesByRegion; a nil entry means that region has
// no path to a core under overlay.
func FromEntrancesToAnyCore(tileset *Tileset, overlay Container, diagonals bool) []*ShortestPath {
	results := make([]*ShortestPath, len(tileset.EntrancesByRegion))
	for i, entrances := range tileset.EntrancesByRegion {
		starts := startPointsFromEntrances(entrances)
		if path, ok := FromAnyCoordToTile(tileset.Grid, overlay, starts, Core, diagonals); ok {
			p := path
			results[i] = &p
		}
	}
	return results
}

// startPointsFromEntrances converts an entrance map into a slice, sorted
// for deterministic iteration order regardless of map randomization.
func startPointsFromEntrances(entrances map[Coordinate]int) []StartPoint {
	starts := make([]StartPoint, 0, len(entrances))
	for c, dist := range entrances {
		starts = append(starts, StartPoint{Coordinate: c, StartDistance: dist})
	}
	sort.Slice(starts, func(i, j int) bool {
		if starts[i].Coordinate.Y != starts[j].Coordinate.Y {
			return starts[i].Coordinate.Y < starts[j].Coordinate.Y
		}
		return starts[i].Coordinate.X < starts[j].Coordinate.X
	})
	return starts
}
