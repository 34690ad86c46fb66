// Package returnspell teleports the player back to a registered return point
//
// One point is live at a time: the configured default until a point is set.
// Run plays a cue, waits, then either fades and relocates on the current map
// or reserves a cross-map transfer that the host completes.
package returnspell

import (
	"time"

	"github.com/lixenwraith/returnspell/core"
)

// Host is the engine surface the return spell drives
type Host interface {
	IsBattleActive() bool
	PlaySe(se core.SoundEffect) error
	ShowMessage(text string)
	MapID() int
	PlayerPosition() (x, y int)
	LocatePlayer(x, y int)
	ReserveTransfer(mapID, x, y int, dir core.Direction, fade core.FadeType)
	FadeOut(duration int, white bool)
	FadeIn(duration int, white bool)
	After(d time.Duration, fn func())
}

// PointStore holds the live return point across saves
type PointStore interface {
	LoadReturnPoint() (core.ReturnPoint, bool)
	StoreReturnPoint(p core.ReturnPoint)
}

// Texter resolves user-facing message keys
type Texter interface {
	Text(key string, args ...any) string
}

type keyTexter struct{}

func (keyTexter) Text(key string, _ ...any) string { return key }
