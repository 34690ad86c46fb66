package render

import "github.com/lixenwraith/returnspell/engine"

// Tokyo Night palette
var (
	RgbBackground = RGB{26, 27, 38}
	RgbForeground = RGB{192, 202, 245}
	RgbDim        = RGB{86, 95, 137}
	RgbWall       = RGB{122, 162, 247}
	RgbWater      = RGB{42, 195, 222}
	RgbGrass      = RGB{158, 206, 106}
	RgbDoor       = RGB{224, 175, 104}
	RgbPlayer     = RGB{255, 158, 100}
	RgbBattle     = RGB{247, 118, 142}
	RgbMessageBg  = RGB{36, 40, 59}
	RgbReturn     = RGB{187, 154, 247}
)

// tileCell maps a tile glyph to its display rune and color
func tileCell(tile byte) (rune, RGB) {
	switch tile {
	case engine.TileWall:
		return '█', RgbWall
	case engine.TileWater:
		return '~', RgbWater
	case engine.TileGrass:
		return '"', RgbGrass
	case engine.TileDoor:
		return '+', RgbDoor
	default:
		return '·', RgbDim
	}
}
