// Package maze implements the sanctum-solver maze engine: grid-region
// decomposition, overlay-aware shortest-path search, and the greedy
// block-placement strategies that grow the shortest path from every spawn
// region to the core while keeping at least one path alive.
package maze

// Tile is the kind of a single grid cell.
type Tile int

const (
	// Impass is permanently blocked; it is never passable.
	Impass Tile = iota
	// Pass is passable but can never host a block (a decorative path).
	Pass
	// Empty is passable and eligible to receive a block.
	Empty
	// Block is an Empty cell that has been converted; it behaves as Impass.
	Block
	// Spawn marks a region cell that enemies walk from. The cell itself is
	// impassable; its perimeter of Empty cells are its entrances.
	Spawn
	// Core marks a region cell that enemies are trying to reach. Arrival at
	// any Core cell terminates a walk successfully.
	Core
)

// String returns the tile's JSON tag spelling.
func (t Tile) String() string {
	switch t {
	case Impass:
		return "Impass"
	case Pass:
		return "Pass"
	case Empty:
		return "Empty"
	case Block:
		return "Block"
	case Spawn:
		return "Spawn"
	case Core:
		return "Core"
	default:
		return "Unknown"
	}
}

// IsPassable reports whether a walk may step onto this tile.
func (t Tile) IsPassable() bool {
	return t == Empty || t == Pass
}

// IsRegion reports whether this tile belongs to a Spawn or Core region.
func (t Tile) IsRegion() bool {
	return t == Spawn || t == Core
}
