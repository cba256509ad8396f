package maze

import "testing"

// TestFromCoordToTilePark mirrors the source's shortest_from_coordinate_to
// scenario: from the entrance (4,4), the shortest walk to a Core cell on
// the Park map is 9 cells long, including both endpoints.
func TestFromCoordToTilePark(t *testing.T) {
	grid := parkGrid()

	path, ok := FromCoordToTile(grid, nil, Coordinate{4, 4}, 0, Core, false)
	if !ok {
		t.Fatal("expected a path to exist")
	}
	if path.Len() != 9 {
		t.Fatalf("path length = %d, want 9", path.Len())
	}

	last := path.Coordinates[len(path.Coordinates)-1]
	if tile, _ := last.Get(grid); !tile.IsRegion() {
		t.Fatalf("path must end on a region tile, ended on %s", tile)
	}
	for _, c := range path.Coordinates[:len(path.Coordinates)-1] {
		if tile, _ := c.Get(grid); !tile.IsPassable() {
			t.Fatalf("every coordinate but the last must be passable, %v was %s", c, tile)
		}
	}
}

func TestFromCoordToTileNoPath(t *testing.T) {
	grid := Grid{
		{Spawn, Impass, Core},
	}
	if _, ok := FromCoordToTile(grid, nil, Coordinate{0, 0}, 0, Core, false); ok {
		t.Fatal("expected no path from a start cell that is not passable")
	}
}

func TestFromCoordToTileStartDistanceAddsToLen(t *testing.T) {
	grid := parkGrid()

	path, ok := FromCoordToTile(grid, nil, Coordinate{4, 4}, 5, Core, false)
	if !ok {
		t.Fatal("expected a path to exist")
	}
	if path.Len() != 14 {
		t.Fatalf("path length = %d, want 9+5=14", path.Len())
	}
}

func TestFromEntrancesToAnyCorePark(t *testing.T) {
	tileset, err := NewTileset(parkGrid())
	if err != nil {
		t.Fatal(err)
	}

	paths := FromEntrancesToAnyCore(tileset, nil, false)
	if len(paths) != 1 {
		t.Fatalf("expected 1 region, got %d", len(paths))
	}
	if paths[0] == nil {
		t.Fatal("expected a path for the single spawn region")
	}
	if paths[0].Len() != 9 {
		t.Fatalf("length = %d, want 9 (best over all entrances)", paths[0].Len())
	}
}

func TestShortestPathLessOrdersByLenThenCoordinates(t *testing.T) {
	short := ShortestPath{Coordinates: []Coordinate{{0, 0}, {1, 0}}}
	long := ShortestPath{Coordinates: []Coordinate{{0, 0}, {1, 0}, {2, 0}}}

	if !short.Less(long) {
		t.Fatal("shorter path should sort first")
	}
	if long.Less(short) {
		t.Fatal("longer path should not sort before the shorter one")
	}

	a := ShortestPath{Coordinates: []Coordinate{{0, 0}, {0, 1}}}
	b := ShortestPath{Coordinates: []Coordinate{{0, 0}, {1, 0}}}
	// b's second coordinate has a smaller Y than a's, so b sorts first.
	if !b.Less(a) {
		t.Fatal("equal-length paths should break ties lexicographically by (Y, X)")
	}
}

func TestBlockedOverlayForcesDetour(t *testing.T) {
	grid := parkGrid()

	direct, ok := FromCoordToTile(grid, nil, Coordinate{4, 4}, 0, Core, false)
	if !ok {
		t.Fatal("expected a baseline path")
	}

	blocks := NewBlockSet()
	blocks.Add(direct.Coordinates[1])

	detour, ok := FromCoordToTile(grid, blocks, Coordinate{4, 4}, 0, Core, false)
	if !ok {
		t.Fatal("expected a detour path to still exist")
	}
	if detour.Len() < direct.Len() {
		t.Fatalf("detour length %d should never be shorter than the direct path %d", detour.Len(), direct.Len())
	}
}
