// Package mazedoc handles the on-disk JSON map document: the schema a
// solver run reads its grid from and writes its result back to. Keeping
// this outside internal/maze means the core engine never imports
// encoding/json.
package mazedoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lawnchairsociety/sanctum-solver/internal/maze"
)

// Document is the JSON map document: a named grid plus an optional
// per-spawn-region shortest path length, aligned with the grid's spawn
// regions in scan order. MarshalJSON/UnmarshalJSON own the wire format
// entirely, so the struct fields themselves carry no json tags.
type Document struct {
	Name               string
	Grid               maze.Grid
	ShortestPathLength []*int
}

// Load reads and decodes a map document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mazedoc: read %s: %w", path, err)
	}

	var doc Document
	if err := doc.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save encodes doc and writes it to path.
func Save(path string, doc *Document) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("mazedoc: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("mazedoc: write %s: %w", path, err)
	}
	return nil
}

// MarshalJSON renders the document per the map document schema, using
// encoding/json's default struct handling for everything but the grid's
// tile tags.
func (d *Document) MarshalJSON() ([]byte, error) {
	type alias struct {
		Name               string     `json:"name"`
		Grid               [][]string `json:"grid"`
		ShortestPathLength []*int     `json:"shortest_path_length"`
	}

	grid := make([][]string, len(d.Grid))
	for y, row := range d.Grid {
		out := make([]string, len(row))
		for x, t := range row {
			out[x] = t.String()
		}
		grid[y] = out
	}

	return json.Marshal(alias{Name: d.Name, Grid: grid, ShortestPathLength: d.ShortestPathLength})
}

// UnmarshalJSON decodes a map document, reporting malformed input with its
// byte offset via a *DecodeError.
func (d *Document) UnmarshalJSON(data []byte) error {
	type alias struct {
		Name               string     `json:"name"`
		Grid               [][]string `json:"grid"`
		ShortestPathLength []*int     `json:"shortest_path_length"`
	}

	var a alias
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&a); err != nil {
		return wrapDecodeError(err)
	}

	grid := make(maze.Grid, len(a.Grid))
	for y, row := range a.Grid {
		out := make([]maze.Tile, len(row))
		for x, tag := range row {
			tile, ok := tileFromTag(tag)
			if !ok {
				return &DecodeError{Message: fmt.Sprintf("unknown tile tag %q at row %d, column %d", tag, y, x)}
			}
			out[x] = tile
		}
		grid[y] = out
	}

	d.Name = a.Name
	d.Grid = grid
	d.ShortestPathLength = a.ShortestPathLength
	return nil
}

func tileFromTag(tag string) (maze.Tile, bool) {
	switch tag {
	case "Impass":
		return maze.Impass, true
	case "Pass":
		return maze.Pass, true
	case "Empty":
		return maze.Empty, true
	case "Block":
		return maze.Block, true
	case "Spawn":
		return maze.Spawn, true
	case "Core":
		return maze.Core, true
	default:
		return 0, false
	}
}
