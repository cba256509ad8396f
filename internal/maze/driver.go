package maze

// Strategy selects which placement algorithm a Run uses.
type Strategy int

const (
	// StrategyRoundRobin cycles through spawn regions, placing at most one
	// block per region per cycle.
	StrategyRoundRobin Strategy = iota
	// StrategyPriority always works whichever spawn region currently has
	// the shortest path to a core.
	StrategyPriority
)

func (s Strategy) String() string {
	if s == StrategyPriority {
		return "priority"
	}
	return "round-robin"
}

// Options configures a Run.
type Options struct {
	Strategy  Strategy
	Diagonals bool
	MaxBlocks MaxBlocks
}

// Result is the outcome of running a strategy to completion: the grid with
// every committed block applied, and the final per-region shortest path
// lengths (aligned with the tileset's spawn region order; a nil entry means
// that region has no path to a core).
type Result struct {
	Grid                Grid
	ShortestPathLengths []*int
}

// Run separates grid into a Tileset, grows a Build with the requested
// strategy, applies it, and recomputes the final shortest path length for
// every spawn region against the resulting grid.
func Run(grid Grid, opts Options) (Result, error) {
	tileset, err := NewTileset(grid)
	if err != nil {
		return Result{}, err
	}

	var build *Build
	switch opts.Strategy {
	case StrategyPriority:
		build = Priority(tileset, opts.Diagonals, opts.MaxBlocks)
	default:
		build = RoundRobin(tileset, opts.Diagonals, opts.MaxBlocks)
	}

	applied := build.Apply(grid)

	finalTileset, err := NewTileset(applied)
	if err != nil {
		return Result{}, err
	}

	paths := FromEntrancesToAnyCore(finalTileset, nil, opts.Diagonals)
	lengths := make([]*int, len(paths))
	for i, p := range paths {
		if p == nil {
			continue
		}
		n := p.Len()
		lengths[i] = &n
	}

	return Result{Grid: applied, ShortestPathLengths: lengths}, nil
}
