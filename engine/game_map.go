package engine

import "fmt"

// Tile glyphs used by map layouts
const (
	TileFloor = '.'
	TileWall  = '#'
	TileWater = '~'
	TileGrass = ','
	TileDoor  = '+'
)

// GameMap is a rectangular tile map
type GameMap struct {
	ID     int
	Name   string
	Width  int
	Height int
	rows   []string
}

// NewGameMap builds a map from equal-width rows
func NewGameMap(id int, name string, rows []string) (*GameMap, error) {
	if id <= 0 {
		return nil, fmt.Errorf("map id must be positive, got %d", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("map %d has no rows", id)
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("map %d row %d: width %d, want %d", id, i, len(r), width)
		}
	}
	return &GameMap{
		ID:     id,
		Name:   name,
		Width:  width,
		Height: len(rows),
		rows:   rows,
	}, nil
}

// InBounds reports whether (x, y) lies on the map
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// Tile returns the glyph at (x, y), or a wall outside the map
func (m *GameMap) Tile(x, y int) byte {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.rows[y][x]
}

// Passable reports whether the player may step onto (x, y)
func (m *GameMap) Passable(x, y int) bool {
	switch m.Tile(x, y) {
	case TileWall, TileWater:
		return false
	}
	return true
}

// DefaultMaps returns the built-in world used by the terminal host
func DefaultMaps() map[int]*GameMap {
	layouts := []struct {
		id   int
		name string
		rows []string
	}{
		{1, "Town", []string{
			"########################",
			"#......................#",
			"#..####......####......#",
			"#..#..#......#..#......#",
			"#..##+#......##+#......#",
			"#......................#",
			"#,,,,,,,,,,,,,,,,,,,,,,#",
			"#,,,,,,,,,,,,,,,,,,,,,,#",
			"#..........~~~~........#",
			"#..........~~~~........#",
			"#......................#",
			"###########+############",
		}},
		{3, "Field", []string{
			",,,,,,,,,,,,,,,,,,,,,,,,,,,,",
			",,,,,,,~~~~~,,,,,,,,,,,,,,,,",
			",,,,,,~~~~~~~,,,,,,,####,,,,",
			",,,,,,,~~~~~,,,,,,,,#..#,,,,",
			",,,,,,,,,,,,,,,,,,,,#+##,,,,",
			",,,,,,,,,,,,,,,,,,,,,,,,,,,,",
			",,,,,,,,,,,,,,,,,,,,,,,,,,,,",
			",,,,,,,,,,,,,,,,,,,,,,,,,,,,",
			",,,,,,,,,,,,,,,,,,,,,,,,,,,,",
			",,,,,,,,,,,,,,,,,,,,,,,,,,,,",
		}},
		{7, "Cave", []string{
			"##################",
			"#........#.......#",
			"#.######.#.#####.#",
			"#.#....#...#...#.#",
			"#.#.##.#####.#.#.#",
			"#...#........#...#",
			"##################",
		}},
	}

	maps := make(map[int]*GameMap, len(layouts))
	for _, l := range layouts {
		m, err := NewGameMap(l.id, l.name, l.rows)
		if err != nil {
			panic(err)
		}
		maps[m.ID] = m
	}
	return maps
}
