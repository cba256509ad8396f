package maze

import (
	"sort"
	"testing"
)

func coordSet(coords ...Coordinate) map[Coordinate]bool {
	set := make(map[Coordinate]bool, len(coords))
	for _, c := range coords {
		set[c] = true
	}
	return set
}

func sortedCoords(coords []Coordinate) []Coordinate {
	out := make([]Coordinate, len(coords))
	copy(out, coords)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestSeparateRegionsRejectsNonRegionKind(t *testing.T) {
	if _, err := SeparateRegions(parkGrid(), Empty); err == nil {
		t.Fatal("expected ErrNotRegion, got nil")
	}
}

func TestNewTilesetEntrances(t *testing.T) {
	ts, err := NewTileset(parkGrid())
	if err != nil {
		t.Fatal(err)
	}

	if len(ts.SpawnRegions) != 1 {
		t.Fatalf("expected 1 spawn region, got %d", len(ts.SpawnRegions))
	}

	got := make([]Coordinate, 0, len(ts.EntrancesByRegion[0]))
	for c := range ts.EntrancesByRegion[0] {
		got = append(got, c)
	}

	want := coordSet(
		Coordinate{4, 1}, Coordinate{4, 2}, Coordinate{4, 3}, Coordinate{4, 4},
	)

	if len(got) != len(want) {
		t.Fatalf("entrances = %v, want %v", sortedCoords(got), sortedCoords(coordsFromSet(want)))
	}
	for _, c := range got {
		if !want[c] {
			t.Errorf("unexpected entrance %v", c)
		}
	}
}

func TestTilesetCoreEntrances(t *testing.T) {
	ts, err := NewTileset(parkGrid())
	if err != nil {
		t.Fatal(err)
	}

	exits := ts.CoreEntrances()
	if len(exits) != 1 {
		t.Fatalf("expected 1 core region, got %d", len(exits))
	}

	want := coordSet(
		Coordinate{4, 9}, Coordinate{5, 9}, Coordinate{6, 9}, Coordinate{7, 9},
		Coordinate{8, 10}, Coordinate{8, 11}, Coordinate{8, 12}, Coordinate{8, 13},
	)

	got := exits[0]
	if len(got) != len(want) {
		gotCoords := make([]Coordinate, 0, len(got))
		for c := range got {
			gotCoords = append(gotCoords, c)
		}
		t.Fatalf("exits = %v, want %v", sortedCoords(gotCoords), sortedCoords(coordsFromSet(want)))
	}
	for c := range got {
		if !want[c] {
			t.Errorf("unexpected exit %v", c)
		}
	}
}

func TestNewTilesetTwoSpawnRegions(t *testing.T) {
	ts, err := NewTileset(parkTwoSpawnGrid())
	if err != nil {
		t.Fatal(err)
	}

	if len(ts.SpawnRegions) != 2 {
		t.Fatalf("expected 2 spawn regions, got %d", len(ts.SpawnRegions))
	}
	// The second spawn is a single isolated cell at the park's east edge,
	// so its only entrances are its three in-bounds orthogonal neighbors
	// (north, west, south); there is no fourth neighbor off the grid edge.
	if len(ts.EntrancesByRegion[1]) != 3 {
		t.Fatalf("expected 3 entrances for second region, got %d", len(ts.EntrancesByRegion[1]))
	}
}

func coordsFromSet(set map[Coordinate]bool) []Coordinate {
	out := make([]Coordinate, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}
