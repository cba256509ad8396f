// Command mazeview pretty-prints a map document as an ASCII grid, with an
// optional legend and a diff against a second document that marks, under
// each row, which cells a solver run converted from Empty to Block.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lawnchairsociety/sanctum-solver/internal/maze"
	"github.com/lawnchairsociety/sanctum-solver/internal/mazedoc"
)

func main() {
	diffAgainst := flag.String("diff", "", "Path to a second map document to diff against (e.g. the solver's output)")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	flag.StringVar(outputFile, "o", "", "Shorthand for -output")
	showLegend := flag.Bool("legend", true, "Show the tile legend")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: mazeview [flags] <map.json>")
		os.Exit(1)
	}

	doc, err := mazedoc.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("%s (%dx%d)\n", doc.Name, doc.Grid.Width(), doc.Grid.Height()))
	out.WriteString(strings.Repeat("=", 40) + "\n\n")

	if *diffAgainst != "" {
		after, err := mazedoc.Load(*diffAgainst)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		renderDiff(&out, doc.Grid, after.Grid)
	} else {
		renderGrid(&out, doc.Grid)
	}

	if len(doc.ShortestPathLength) > 0 {
		out.WriteString("\nShortest path lengths by spawn region: ")
		out.WriteString(formatLengths(doc.ShortestPathLength))
		out.WriteString("\n")
	}

	if *showLegend {
		out.WriteString(legend())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(out.String()), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
		return
	}
	fmt.Print(out.String())
}

func renderGrid(out *strings.Builder, grid maze.Grid) {
	for _, row := range grid {
		for _, t := range row {
			out.WriteRune(tileSymbol(t))
		}
		out.WriteString("\n")
	}
}

// renderDiff prints before's grid, marking every cell that changed from
// Empty to Block in after with a '*' underneath the row.
func renderDiff(out *strings.Builder, before, after maze.Grid) {
	for y, row := range before {
		for _, t := range row {
			out.WriteRune(tileSymbol(t))
		}
		out.WriteString("\n")

		if y >= len(after) {
			continue
		}
		for x := range row {
			if x >= len(after[y]) {
				continue
			}
			if row[x] == maze.Empty && after[y][x] == maze.Block {
				out.WriteRune('*')
			} else {
				out.WriteRune(' ')
			}
		}
		out.WriteString("\n")
	}
}

func tileSymbol(t maze.Tile) rune {
	switch t {
	case maze.Impass:
		return '#'
	case maze.Pass:
		return '.'
	case maze.Empty:
		return ' '
	case maze.Block:
		return 'X'
	case maze.Spawn:
		return 'S'
	case maze.Core:
		return 'C'
	default:
		return '?'
	}
}

func formatLengths(lengths []*int) string {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		if l == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = fmt.Sprintf("%d", *l)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func legend() string {
	return `
Legend:
  [#] Impass   (never passable)
  [.] Pass     (always passable, never buildable)
  [ ] Empty    (passable, buildable)
  [X] Block    (converted from Empty)
  [S] Spawn
  [C] Core
  [*] (diff mode) Empty cell converted to Block
`
}
