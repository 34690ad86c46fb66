package core

// Direction is a facing using numpad layout codes
type Direction uint8

const (
	DirNone  Direction = 0
	DirDown  Direction = 2
	DirLeft  Direction = 4
	DirRight Direction = 6
	DirUp    Direction = 8
)

// Delta returns the tile offset for one step in this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	}
	return "none"
}
