package maze

import "fmt"

// Tileset is a grid together with its precomputed spawn regions and their
// perimeter entrances. It is built once per solve and treated as read-only
// for the remainder of the run.
type Tileset struct {
	Grid Grid

	// SpawnRegions and CoreRegions hold each region's member cells, in the
	// order the grid scan discovered them (top-to-bottom, left-to-right).
	SpawnRegions [][]Coordinate
	CoreRegions  [][]Coordinate

	// EntrancesByRegion holds one map per spawn region, aligned with
	// SpawnRegions: Coordinate -> Manhattan distance from that region's
	// anchor cell.
	EntrancesByRegion []map[Coordinate]int
}

// NewTileset separates the grid's Spawn and Core regions and computes each
// spawn region's entrance set.
func NewTileset(grid Grid) (*Tileset, error) {
	spawnRegions, err := SeparateRegions(grid, Spawn)
	if err != nil {
		return nil, err
	}
	coreRegions, err := SeparateRegions(grid, Core)
	if err != nil {
		return nil, err
	}

	entrances := make([]map[Coordinate]int, len(spawnRegions))
	for i, region := range spawnRegions {
		entrances[i] = regionEntrances(grid, region)
	}

	return &Tileset{
		Grid:              grid,
		SpawnRegions:      spawnRegions,
		CoreRegions:       coreRegions,
		EntrancesByRegion: entrances,
	}, nil
}

// SeparateRegions partitions every cell of kind into maximal 4-connected
// regions, in grid-scan order. kind must be a region kind (Spawn or Core);
// any other kind returns ErrNotRegion.
func SeparateRegions(grid Grid, kind Tile) ([][]Coordinate, error) {
	if !kind.IsRegion() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegion, kind)
	}

	visited := make(map[Coordinate]bool)
	var regions [][]Coordinate

	for y, row := range grid {
		for x, tile := range row {
			start := Coordinate{X: x, Y: y}
			if tile != kind || visited[start] {
				continue
			}

			region := []Coordinate{start}
			visited[start] = true
			queue := []Coordinate{start}
			for len(queue) > 0 {
				c := queue[0]
				queue = queue[1:]

				AdjacentTo(grid, c, false).Each(func(n Coordinate) {
					if visited[n] {
						return
					}
					if t, ok := n.Get(grid); ok && t == kind {
						visited[n] = true
						region = append(region, n)
						queue = append(queue, n)
					}
				})
			}
			regions = append(regions, region)
		}
	}
	return regions, nil
}

// regionEntrances performs a breadth-first walk from the region's anchor
// cell (its first member) across cells that are either the region's own
// kind or passable, recording only Empty cells as entrances. The walk
// never recurses past an Empty cell. Each entrance is keyed to its
// Manhattan distance from the anchor.
func regionEntrances(grid Grid, region []Coordinate) map[Coordinate]int {
	entrances := make(map[Coordinate]int)
	if len(region) == 0 {
		return entrances
	}

	anchor := region[0]
	kind, _ := anchor.Get(grid)

	visited := map[Coordinate]bool{anchor: true}
	queue := []Coordinate{anchor}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		tile, ok := c.Get(grid)
		if !ok {
			continue
		}

		if tile == Empty {
			entrances[c] = c.DistanceFrom(anchor)
			continue
		}
		if tile != kind && !tile.IsPassable() {
			continue
		}

		AdjacentTo(grid, c, false).Each(func(n Coordinate) {
			if visited[n] {
				return
			}
			visited[n] = true
			if t, ok := n.Get(grid); ok && (t == kind || t.IsPassable()) {
				queue = append(queue, n)
			}
		})
	}
	return entrances
}

// CoreEntrances returns the Empty cells perimeter-adjacent to each core
// region, using the same walk as the spawn entrance computation. It is not
// used by the build engine (ShortestPath searches directly for Tile Core)
// but is exposed for inspection and testing.
func (ts *Tileset) CoreEntrances() []map[Coordinate]int {
	out := make([]map[Coordinate]int, len(ts.CoreRegions))
	for i, region := range ts.CoreRegions {
		out[i] = regionEntrances(ts.Grid, region)
	}
	return out
}
