// Command solver reads a map document, grows a block placement that
// maximizes every spawn region's shortest path to a core, and writes the
// resulting map document back out.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lawnchairsociety/sanctum-solver/internal/logger"
	"github.com/lawnchairsociety/sanctum-solver/internal/maze"
	"github.com/lawnchairsociety/sanctum-solver/internal/mazedoc"
)

func main() {
	blocks := flag.Int("blocks", 0, "Cap on the number of blocks placed (0: unlimited)")
	flag.IntVar(blocks, "b", 0, "Shorthand for -blocks")
	diagonals := flag.Bool("diagonals", false, "Enable 8-connectivity for movement and adjacency pruning")
	flag.BoolVar(diagonals, "d", false, "Shorthand for -diagonals")
	prioritize := flag.Bool("prioritize", false, "Use the priority strategy instead of round-robin")
	flag.BoolVar(prioritize, "p", false, "Shorthand for -prioritize")
	output := flag.String("output", "", "Output file path (stdout if empty)")
	flag.StringVar(output, "o", "", "Shorthand for -output")
	loggingConfig := flag.String("logging", "", "Path to logging config YAML file")
	flag.Parse()

	logConfig, _ := logger.LoadConfig(*loggingConfig)
	logger.Initialize(logConfig)

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: solver [flags] <map.json>")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *blocks, *diagonals, *prioritize, *output); err != nil {
		logger.Errorf("solver run failed: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(inputPath string, blocks int, diagonals, prioritize bool, outputPath string) error {
	doc, err := mazedoc.Load(inputPath)
	if err != nil {
		return err
	}

	opts := maze.Options{Diagonals: diagonals}
	if blocks > 0 {
		opts.MaxBlocks = &blocks
	}
	if prioritize {
		opts.Strategy = maze.StrategyPriority
	} else {
		opts.Strategy = maze.StrategyRoundRobin
	}

	logger.Infof("running solver: strategy=%v diagonals=%v blocks=%d", opts.Strategy, diagonals, blocks)

	result, err := maze.Run(doc.Grid, opts)
	if err != nil {
		return err
	}

	out := &mazedoc.Document{
		Name:               doc.Name,
		Grid:               result.Grid,
		ShortestPathLength: result.ShortestPathLengths,
	}

	logger.Always("solver run complete", "region_path_lengths", summarizeLengths(result.ShortestPathLengths))

	if outputPath == "" {
		data, err := out.MarshalJSON()
		if err != nil {
			return fmt.Errorf("solver: encode output: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	return mazedoc.Save(outputPath, out)
}

func summarizeLengths(lengths []*int) string {
	out := "["
	for i, l := range lengths {
		if i > 0 {
			out += ","
		}
		if l == nil {
			out += "null"
			continue
		}
		out += fmt.Sprintf("%d", *l)
	}
	return out + "]"
}
