package mazedoc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/sanctum-solver/internal/maze"
)

func sampleJSON() []byte {
	return []byte(`{
		"name": "sample",
		"grid": [
			["Spawn", "Empty", "Core"]
		],
		"shortest_path_length": [2]
	}`)
}

func TestUnmarshalJSON(t *testing.T) {
	var doc Document
	if err := doc.UnmarshalJSON(sampleJSON()); err != nil {
		t.Fatal(err)
	}

	if doc.Name != "sample" {
		t.Fatalf("name = %q, want sample", doc.Name)
	}
	if len(doc.Grid) != 1 || len(doc.Grid[0]) != 3 {
		t.Fatalf("grid shape = %dx%d, want 1x3", len(doc.Grid), len(doc.Grid[0]))
	}
	if doc.Grid[0][0] != maze.Spawn || doc.Grid[0][1] != maze.Empty || doc.Grid[0][2] != maze.Core {
		t.Fatalf("grid tiles = %v", doc.Grid[0])
	}
	if len(doc.ShortestPathLength) != 1 || *doc.ShortestPathLength[0] != 2 {
		t.Fatalf("shortest_path_length = %v", doc.ShortestPathLength)
	}
}

func TestMarshalJSONRoundTrips(t *testing.T) {
	var doc Document
	if err := doc.UnmarshalJSON(sampleJSON()); err != nil {
		t.Fatal(err)
	}

	data, err := doc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	var roundTripped Document
	if err := roundTripped.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}

	if roundTripped.Name != doc.Name {
		t.Fatalf("name did not round-trip: %q != %q", roundTripped.Name, doc.Name)
	}
	if roundTripped.Grid[0][0] != doc.Grid[0][0] {
		t.Fatal("grid did not round-trip")
	}
}

func TestUnmarshalJSONUnknownTile(t *testing.T) {
	var doc Document
	err := doc.UnmarshalJSON([]byte(`{"name":"x","grid":[["Nonsense"]],"shortest_path_length":null}`))
	if err == nil {
		t.Fatal("expected an error for an unknown tile tag")
	}
}

func TestUnmarshalJSONMalformed(t *testing.T) {
	var doc Document
	err := doc.UnmarshalJSON([]byte(`{"name": "x", "grid": [[`))
	if err == nil {
		t.Fatal("expected a decode error for truncated JSON")
	}
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected errors.Is(err, ErrDecode), got %v", err)
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
}

func TestLoadAndSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.json")

	if err := os.WriteFile(path, sampleJSON(), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	outPath := filepath.Join(dir, "out.json")
	if err := Save(outPath, doc); err != nil {
		t.Fatal(err)
	}

	reloaded, err := Load(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Name != doc.Name {
		t.Fatalf("reloaded name = %q, want %q", reloaded.Name, doc.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected an error loading a missing file")
	}
}
