// Package render draws the game state onto a tcell screen
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/returnspell/engine"
)

// Layout rows
const (
	headerRow  = 0
	mapTop     = 2
	playerRune = '@'
	returnRune = '*'
)

// Renderer draws frames to a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer over an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame; metrics is shown on the bottom line
func (r *Renderer) Draw(g *engine.Game, metrics []string) {
	r.screen.Clear()
	width, height := r.screen.Size()
	r.fill(width, height)

	r.drawHeader(g, width)
	r.drawMap(g)
	r.drawMessage(g, width)
	r.drawFooter(metrics, width, height)
	r.applyFade(g.Screen, width, height)

	r.screen.Show()
}

func (r *Renderer) fill(width, height int) {
	bg := tcell.StyleDefault.Background(RgbBackground.Tcell()).Foreground(RgbForeground.Tcell())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}
}

func (r *Renderer) drawHeader(g *engine.Game, width int) {
	x, y := g.PlayerPosition()
	header := fmt.Sprintf("%s [Map%d] (%d,%d)", g.Map.Name, g.Map.ID, x, y)
	if p, ok := g.System.LoadReturnPoint(); ok {
		header += "  Return: " + p.String()
	}
	r.text(0, headerRow, width, header, RgbForeground, RgbBackground)

	right := width
	if g.IsBattleActive() {
		label := " BATTLE "
		right -= len(label)
		r.text(right, headerRow, width, label, RgbBackground, RgbBattle)
	}
	if g.Paused() {
		label := " PAUSED "
		r.text(right-len(label), headerRow, width, label, RgbBackground, RgbReturn)
	}
}

func (r *Renderer) drawMap(g *engine.Game) {
	m := g.Map
	bg := RgbBackground.Tcell()
	for ty := 0; ty < m.Height; ty++ {
		for tx := 0; tx < m.Width; tx++ {
			ch, fg := tileCell(m.Tile(tx, ty))
			r.screen.SetContent(tx, mapTop+ty, ch, nil, tcell.StyleDefault.Foreground(fg.Tcell()).Background(bg))
		}
	}

	if p, ok := g.System.LoadReturnPoint(); ok && p.Resolved().MapID == m.ID && m.InBounds(p.X, p.Y) {
		r.screen.SetContent(p.X, mapTop+p.Y, returnRune, nil, tcell.StyleDefault.Foreground(RgbReturn.Tcell()).Background(bg))
	}

	px, py := g.PlayerPosition()
	if m.InBounds(px, py) {
		r.screen.SetContent(px, mapTop+py, playerRune, nil,
			tcell.StyleDefault.Foreground(RgbPlayer.Tcell()).Background(bg).Bold(true))
	}
}

func (r *Renderer) drawMessage(g *engine.Game, width int) {
	text, ok := g.Messages.Current()
	if !ok {
		return
	}
	row := mapTop + g.Map.Height + 1
	more := ""
	if g.Messages.Len() > 1 {
		more = " ▼"
	}
	line := " " + text + more
	if pad := width - len([]rune(line)); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	r.text(0, row, width, line, RgbForeground, RgbMessageBg)
}

func (r *Renderer) drawFooter(metrics []string, width, height int) {
	if len(metrics) == 0 || height < 1 {
		return
	}
	r.text(0, height-1, width, strings.Join(metrics, " "), RgbDim, RgbBackground)
}

// applyFade blends every cell toward the fade color by the overlay opacity
func (r *Renderer) applyFade(s *engine.Screen, width, height int) {
	alpha := s.Opacity()
	if alpha == 0 {
		return
	}
	target := RGBBlack
	if s.White() {
		target = RGBWhite
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mainc, comb, style, _ := r.screen.GetContent(x, y)
			fg, bg, attr := style.Decompose()
			nfg := Lerp(TcellToRGB(fg), target, alpha)
			nbg := Lerp(TcellToRGB(bg), target, alpha)
			if alpha == 255 {
				mainc, comb = ' ', nil
			}
			r.screen.SetContent(x, y, mainc, comb,
				tcell.StyleDefault.Foreground(nfg.Tcell()).Background(nbg.Tcell()).Attributes(attr))
		}
	}
}

// text writes s left to right, clipped at width
func (r *Renderer) text(x, y, width int, s string, fg, bg RGB) {
	style := tcell.StyleDefault.Foreground(fg.Tcell()).Background(bg.Tcell())
	for _, ch := range s {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
