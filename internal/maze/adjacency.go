package maze

// Adjacent holds the up-to-eight neighbors of a cell. A nil field means
// that direction is absent (out of bounds, or diagonals are disabled).
type Adjacent struct {
	North *Coordinate
	East  *Coordinate
	South *Coordinate
	West  *Coordinate

	NorthEast *Coordinate
	SouthEast *Coordinate
	SouthWest *Coordinate
	NorthWest *Coordinate
}

// Each calls f on every present neighbor, in the fixed order N, E, S, W,
// NE, SE, SW, NW, so BFS enumeration order is reproducible.
func (a Adjacent) Each(f func(Coordinate)) {
	for _, c := range [...]*Coordinate{
		a.North, a.East, a.South, a.West,
		a.NorthEast, a.SouthEast, a.SouthWest, a.NorthWest,
	} {
		if c != nil {
			f(*c)
		}
	}
}

// AdjacentTo returns the up-to-eight neighbors of coord on grid. When
// diagonals is false, all four diagonal slots are absent regardless of
// bounds.
func AdjacentTo(grid Grid, coord Coordinate, diagonals bool) Adjacent {
	canMoveUp := coord.Y > 0
	canMoveDown := coord.Y < grid.Height()-1
	canMoveLeft := coord.X > 0
	canMoveRight := coord.X < grid.Width()-1

	var a Adjacent
	if canMoveUp {
		a.North = &Coordinate{coord.X, coord.Y - 1}
	}
	if canMoveRight {
		a.East = &Coordinate{coord.X + 1, coord.Y}
	}
	if canMoveDown {
		a.South = &Coordinate{coord.X, coord.Y + 1}
	}
	if canMoveLeft {
		a.West = &Coordinate{coord.X - 1, coord.Y}
	}

	if diagonals {
		if canMoveUp && canMoveRight {
			a.NorthEast = &Coordinate{coord.X + 1, coord.Y - 1}
		}
		if canMoveDown && canMoveRight {
			a.SouthEast = &Coordinate{coord.X + 1, coord.Y + 1}
		}
		if canMoveDown && canMoveLeft {
			a.SouthWest = &Coordinate{coord.X - 1, coord.Y + 1}
		}
		if canMoveUp && canMoveLeft {
			a.NorthWest = &Coordinate{coord.X - 1, coord.Y - 1}
		}
	}
	return a
}

// AdjacentToWithOverlay returns AdjacentTo, but additionally suppresses a
// diagonal neighbor when both of its flanking orthogonal neighbors are
// non-passable under overlay: cannot cut through a corner wedged between
// two walls.
func AdjacentToWithOverlay(grid Grid, overlay Container, coord Coordinate, diagonals bool) Adjacent {
	a := AdjacentTo(grid, coord, diagonals)
	if !diagonals {
		return a
	}

	passable := func(c *Coordinate) bool {
		if c == nil {
			return false
		}
		tile, ok := c.GetWithOverlay(grid, overlay)
		return ok && tile.IsPassable()
	}

	canUp := passable(a.North)
	canRight := passable(a.East)
	canDown := passable(a.South)
	canLeft := passable(a.West)

	if !canUp && !canRight {
		a.NorthEast = nil
	}
	if !canDown && !canRight {
		a.SouthEast = nil
	}
	if !canDown && !canLeft {
		a.SouthWest = nil
	}
	if !canUp && !canLeft {
		a.NorthWest = nil
	}
	return a
}
