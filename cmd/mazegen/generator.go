// Command mazegen produces a random map document for exercising the
// solver, using a depth-first recursive backtracker to carve passages the
// same way the pack's labyrinth generator does, adapted here to emit
// maze.Tile cells instead of MUD rooms.
package main

import (
	"math/rand"

	"github.com/lawnchairsociety/sanctum-solver/internal/maze"
)

type direction int

const (
	north direction = iota
	south
	east
	west
)

func allDirections() []direction { return []direction{north, south, east, west} }

func (d direction) opposite() direction {
	switch d {
	case north:
		return south
	case south:
		return north
	case east:
		return west
	case west:
		return east
	}
	return north
}

// cell is one node of the logical (unscaled) maze grid: carving removes
// walls between adjacent cells.
type cell struct {
	visited bool
	walls   map[direction]bool
}

// generator runs a DFS recursive backtracker over a width x height grid of
// cells, then renders the carved result onto a doubled maze.Grid where
// odd coordinates are cell centers and even coordinates are the walls
// between them.
type generator struct {
	width, height int
	cells         [][]*cell
	rnd           *rand.Rand
}

func newGenerator(width, height int, seed int64) *generator {
	g := &generator{
		width:  width,
		height: height,
		cells:  make([][]*cell, height),
		rnd:    rand.New(rand.NewSource(seed)),
	}
	for y := 0; y < height; y++ {
		g.cells[y] = make([]*cell, width)
		for x := 0; x < width; x++ {
			g.cells[y][x] = &cell{walls: map[direction]bool{north: true, south: true, east: true, west: true}}
		}
	}
	return g
}

// carve runs the recursive backtracker from the grid's center cell.
func (g *generator) carve() {
	g.carveFrom(g.width/2, g.height/2)
}

func (g *generator) carveFrom(x, y int) {
	c := g.cells[y][x]
	c.visited = true

	dirs := allDirections()
	g.rnd.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, dir := range dirs {
		nx, ny := neighbor(x, y, dir)
		if !g.inBounds(nx, ny) || g.cells[ny][nx].visited {
			continue
		}
		c.walls[dir] = false
		g.cells[ny][nx].walls[dir.opposite()] = false
		g.carveFrom(nx, ny)
	}
}

func neighbor(x, y int, dir direction) (int, int) {
	switch dir {
	case north:
		return x, y - 1
	case south:
		return x, y + 1
	case east:
		return x + 1, y
	case west:
		return x - 1, y
	}
	return x, y
}

func (g *generator) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// toGrid renders the carved cells onto a maze.Grid twice the logical size
// plus one: carved cell centers and the carved-open walls between them
// become Pass; any Impass cell touching a Pass cell becomes Empty
// (buildable); everything else stays Impass.
func (g *generator) toGrid() maze.Grid {
	w := 2*g.width + 1
	h := 2*g.height + 1

	grid := make(maze.Grid, h)
	for y := range grid {
		grid[y] = make([]maze.Tile, w)
		for x := range grid[y] {
			grid[y][x] = maze.Impass
		}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y][x]
			cx, cy := 2*x+1, 2*y+1
			grid[cy][cx] = maze.Pass
			if !c.walls[east] && x+1 < g.width {
				grid[cy][cx+1] = maze.Pass
			}
			if !c.walls[south] && y+1 < g.height {
				grid[cy+1][cx] = maze.Pass
			}
		}
	}

	openBuildablePerimeter(grid)
	return grid
}

// openBuildablePerimeter converts every Impass cell with at least one Pass
// neighbor into Empty, giving the carved passages a buildable border.
func openBuildablePerimeter(grid maze.Grid) {
	h, w := grid.Height(), grid.Width()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid[y][x] != maze.Impass {
				continue
			}
			if hasPassableNeighbor(grid, x, y) {
				grid[y][x] = maze.Empty
			}
		}
	}
}

func hasPassableNeighbor(grid maze.Grid, x, y int) bool {
	for _, d := range [...][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || ny < 0 || ny >= len(grid) || nx >= len(grid[ny]) {
			continue
		}
		if grid[ny][nx].IsPassable() {
			return true
		}
	}
	return false
}

// placeRegion stamps a blockSize x blockSize square at (originX, originY),
// clipped to the grid, with the given region kind, then opens an Empty
// entrance on every Impass cell bordering it.
func placeRegion(grid maze.Grid, originX, originY, blockSize int, kind maze.Tile) {
	h, w := grid.Height(), grid.Width()

	var cells []maze.Coordinate
	for dy := 0; dy < blockSize; dy++ {
		for dx := 0; dx < blockSize; dx++ {
			x, y := originX+dx, originY+dy
			if x < 0 || y < 0 || x >= w || y >= h {
				continue
			}
			grid[y][x] = kind
			cells = append(cells, maze.Coordinate{X: x, Y: y})
		}
	}

	for _, c := range cells {
		for _, d := range [...][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			nx, ny := c.X+d[0], c.Y+d[1]
			if nx < 0 || ny < 0 || ny >= h || nx >= w {
				continue
			}
			if grid[ny][nx] == maze.Impass {
				grid[ny][nx] = maze.Empty
			}
		}
	}
}
