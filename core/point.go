package core

import "fmt"

// ReturnPoint is the single stored destination of the return spell
// MapID is positive; X and Y are tile coordinates within that map
type ReturnPoint struct {
	MapID int `toml:"map_id"`
	X     int `toml:"x"`
	Y     int `toml:"y"`
}

// NewReturnPoint creates a point from already-coerced coordinates
func NewReturnPoint(mapID, x, y int) ReturnPoint {
	return ReturnPoint{MapID: mapID, X: x, Y: y}
}

// Resolved returns the point with missing fields replaced by transfer fallbacks
// Map id falls back to 1, coordinates to 0
func (p ReturnPoint) Resolved() ReturnPoint {
	if p.MapID == 0 {
		p.MapID = 1
	}
	return p
}

func (p ReturnPoint) String() string {
	return fmt.Sprintf("Map%d (%d,%d)", p.MapID, p.X, p.Y)
}
