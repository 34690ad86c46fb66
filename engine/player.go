package engine

import "github.com/lixenwraith/returnspell/core"

// TransferRequest is a cross-map transfer waiting for the pipeline
type TransferRequest struct {
	MapID     int
	X, Y      int
	Direction core.Direction
	FadeType  core.FadeType
}

// Player is the avatar controlled on the map
type Player struct {
	X, Y      int
	Direction core.Direction

	transfer *TransferRequest
}

// NewPlayer places a player facing down
func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y, Direction: core.DirDown}
}

// Locate moves the player instantly without bounds checking
func (p *Player) Locate(x, y int) {
	p.X = x
	p.Y = y
}

// Move steps one tile if the target is passable; facing updates either way
func (p *Player) Move(dir core.Direction, m *GameMap) bool {
	p.Direction = dir
	dx, dy := dir.Delta()
	nx, ny := p.X+dx, p.Y+dy
	if m == nil || !m.Passable(nx, ny) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// ReserveTransfer queues a transfer; a later reservation replaces an earlier one
func (p *Player) ReserveTransfer(req TransferRequest) {
	r := req
	p.transfer = &r
}

// IsTransferring reports whether a transfer is reserved and not yet performed
func (p *Player) IsTransferring() bool {
	return p.transfer != nil
}

// PendingTransfer returns the reserved transfer, if any
func (p *Player) PendingTransfer() (TransferRequest, bool) {
	if p.transfer == nil {
		return TransferRequest{}, false
	}
	return *p.transfer, true
}

func (p *Player) clearTransfer() {
	p.transfer = nil
}
