package maze

import "testing"

func TestRunRoundRobinProducesAppliedGrid(t *testing.T) {
	result, err := Run(parkTwoSpawnGrid(), Options{Strategy: StrategyRoundRobin})
	if err != nil {
		t.Fatal(err)
	}

	if result.Grid.Width() == 0 || result.Grid.Height() == 0 {
		t.Fatal("result grid should not be empty")
	}
	if len(result.ShortestPathLengths) != 2 {
		t.Fatalf("expected 2 region lengths, got %d", len(result.ShortestPathLengths))
	}
	for i, l := range result.ShortestPathLengths {
		if l == nil {
			t.Fatalf("region %d lost its path to a core", i)
		}
	}
}

func TestRunPriorityHonoursMaxBlocks(t *testing.T) {
	cap := 2
	result, err := Run(parkTwoSpawnGrid(), Options{Strategy: StrategyPriority, MaxBlocks: &cap})
	if err != nil {
		t.Fatal(err)
	}

	blockCount := 0
	for _, row := range result.Grid {
		for _, tile := range row {
			if tile == Block {
				blockCount++
			}
		}
	}
	if blockCount > cap {
		t.Fatalf("result grid has %d blocks, want <= %d", blockCount, cap)
	}
}

func TestStrategyString(t *testing.T) {
	if StrategyRoundRobin.String() != "round-robin" {
		t.Fatalf("got %q", StrategyRoundRobin.String())
	}
	if StrategyPriority.String() != "priority" {
		t.Fatalf("got %q", StrategyPriority.String())
	}
}
