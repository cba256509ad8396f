package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/sanctum-solver/internal/maze"
	"github.com/lawnchairsociety/sanctum-solver/internal/mazedoc"
)

func main() {
	width := flag.Int("width", 10, "Logical maze width, in cells (rendered grid is 2*width+1 wide)")
	height := flag.Int("height", 10, "Logical maze height, in cells (rendered grid is 2*height+1 tall)")
	seed := flag.Int64("seed", 1, "Random seed")
	spawns := flag.Int("spawns", 1, "Number of spawn regions, placed at distinct corners (1-4)")
	name := flag.String("name", "generated", "Name recorded in the output map document")
	output := flag.String("output", "", "Output file (empty for stdout)")
	flag.StringVar(output, "o", "", "Shorthand for -output")
	flag.Parse()

	if *spawns < 1 {
		*spawns = 1
	}
	if *spawns > 4 {
		*spawns = 4
	}

	gen := newGenerator(*width, *height, *seed)
	gen.carve()
	grid := gen.toGrid()

	const blockSize = 2
	w, h := grid.Width(), grid.Height()
	corners := [][2]int{
		{1, 1},
		{w - blockSize - 1, h - blockSize - 1},
		{w - blockSize - 1, 1},
		{1, h - blockSize - 1},
	}
	for i := 0; i < *spawns; i++ {
		placeRegion(grid, corners[i][0], corners[i][1], blockSize, maze.Spawn)
	}
	placeRegion(grid, w/2-blockSize/2, h/2-blockSize/2, blockSize, maze.Core)

	doc := &mazedoc.Document{Name: *name, Grid: grid}

	if *output == "" {
		data, err := doc.MarshalJSON()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	if err := mazedoc.Save(*output, doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Map written to %s\n", *output)
}
