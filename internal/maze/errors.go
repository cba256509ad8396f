package maze

import "errors"

// ErrNotRegion is returned when region separation is requested for a tile
// kind that is not a region kind (Spawn or Core).
var ErrNotRegion = errors.New("maze: region separation requested on a non-region tile kind")
