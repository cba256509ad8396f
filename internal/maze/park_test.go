package maze

// parkGrid returns the 16x14 "Park" reference map: a single spawn region at
// the top-left, a single core region in the middle, and an irregular field
// of empty buildable cells between them.
func parkGrid() Grid {
	I, P, E, S, C := Impass, Pass, Empty, Spawn, Core

	return Grid{
		{I, I, I, I, I, I, I, I, I, I, I, E, E, E, E, E},
		{P, P, P, P, E, E, E, E, E, I, I, E, E, E, E, E},
		{S, P, P, P, E, E, E, E, E, I, I, E, E, E, E, E},
		{P, P, P, P, E, E, E, E, E, E, E, E, E, E, E, E},
		{P, P, P, P, E, E, E, E, E, E, E, E, E, E, E, E},
		{I, I, I, I, E, E, E, E, E, E, E, E, E, E, E, E},
		{I, I, I, I, E, E, E, E, E, E, E, E, E, E, E, E},
		{I, I, I, I, E, E, E, E, E, E, E, E, E, E, E, E},
		{I, I, I, I, E, E, E, E, E, E, E, E, E, E, E, E},
		{I, I, I, I, E, E, E, E, E, E, E, E, E, E, I, E},
		{I, I, I, I, P, P, P, P, E, E, E, E, E, E, E, E},
		{I, I, I, I, P, C, C, P, E, E, E, E, E, E, E, E},
		{I, I, I, I, P, C, C, P, E, E, E, I, E, E, E, E},
		{I, I, I, I, P, P, P, P, E, E, E, E, E, E, E, E},
	}
}

// parkTwoSpawnGrid adds a second, independent spawn region at (15,5) on
// the park's east edge, connected to the same core, to exercise
// multi-region strategies. The second spawn's location matches spec.md
// §8 S4/S5/S6's PARK_TWO_SPAWN scenario literally.
func parkTwoSpawnGrid() Grid {
	grid := parkGrid()
	grid[5][15] = Spawn
	return grid
}
