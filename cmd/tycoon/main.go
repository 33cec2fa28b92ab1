package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/millionaire-tycoon/tycoon/assets"
	"github.com/millionaire-tycoon/tycoon/internal/config"
	"github.com/millionaire-tycoon/tycoon/internal/game"
	"github.com/millionaire-tycoon/tycoon/internal/market"
	"github.com/millionaire-tycoon/tycoon/internal/render"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "Millionaire Tycoon"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 80
	gridRows   = screenHeight / cellHeight // 45
)

const (
	// Fixed UI positions (right-side info and message panels).
	infoX    = 56
	infoY    = 1
	infoW    = 22
	msgY     = 7
	msgH     = 12
	contentW = 52 // left area free for screen content
)

// uiButton couples a drawable hit-box with the command it raises.
type uiButton struct {
	render.Button
	action func()
}

// Game is the Ebitengine shell. It owns rendering and input; all
// gameplay state lives in the session and is read back every frame.
type Game struct {
	atlas    *render.FontAtlas
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	session  *game.Session
	defs     *market.Defs
	buttons  []uiButton
}

func NewGame(cfg *config.Config, defs *market.Defs) *Game {
	atlas := render.NewFontAtlas()
	return &Game{
		atlas:    atlas,
		renderer: render.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
		session:  game.New(cfg, defs, time.Now().UnixNano()),
		defs:     defs,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.session.Screen() == game.ScreenMainMenu {
			return ebiten.Termination
		}
		g.session.Back()
	}

	g.handleTyping()

	// Rebuild the hit-boxes for whatever screen is now showing, then
	// dispatch a click if one landed on a button.
	g.buttons = g.buildButtons()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		cx, cy := mx/cellWidth, my/cellHeight
		for i := range g.buttons {
			if g.buttons[i].Contains(cx, cy) {
				g.buttons[i].action()
				break
			}
		}
	}

	// Resolve due wagers and timed price refreshes.
	g.session.Tick()
	return nil
}

// handleTyping feeds digit keys into the session's amount input.
func (g *Game) handleTyping() {
	for d := ebiten.KeyDigit0; d <= ebiten.KeyDigit9; d++ {
		if inpututil.IsKeyJustPressed(d) && len(g.session.AmountInput) < 9 {
			g.session.AmountInput += string(rune('0' + d - ebiten.KeyDigit0))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && g.session.AmountInput != "" {
		g.session.AmountInput = g.session.AmountInput[:len(g.session.AmountInput)-1]
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	buf := g.buffer
	buf.Clear()

	g.drawScreen()
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/cellWidth, my/cellHeight
	for i := range g.buttons {
		g.buttons[i].Draw(buf, g.buttons[i].Contains(cx, cy))
	}

	g.drawInfoPanel()
	g.drawMessages()

	buf.WriteString(2, gridRows-1, "Type digits for amounts  Backspace: erase  ESC: back/quit", render.ColorDarkGray, render.ColorBackground)

	g.renderer.Draw(screen, buf)
}

// drawInfoPanel shows money, day, and location in the top-right corner.
func (g *Game) drawInfoPanel() {
	buf := g.buffer
	w := g.session.WalletSnapshot()
	buf.Box(infoX, infoY, infoW, 5, render.ColorDarkGray, render.ColorPanel)
	buf.WriteString(infoX+2, infoY+1, fmt.Sprintf("Money: $%.2f", w.Money), render.ColorLightGreen, render.ColorPanel)
	buf.WriteString(infoX+2, infoY+2, fmt.Sprintf("Day:   %d", w.Day), render.ColorWhite, render.ColorPanel)
	buf.WriteString(infoX+2, infoY+3, clip(fmt.Sprintf("At:    %s", w.Location), infoW-4), render.ColorWhite, render.ColorPanel)
}

// drawMessages renders the fading notification log under the info panel.
func (g *Game) drawMessages() {
	buf := g.buffer
	buf.Box(infoX, msgY, infoW, msgH, render.ColorDarkGray, render.ColorPanel)
	msgs := g.session.ActiveMessages()
	row := msgY + 1
	// Newest messages first, as many as fit.
	for i := len(msgs) - 1; i >= 0 && row < msgY+msgH-1; i-- {
		m := msgs[i]
		alpha := g.session.MessageAlpha(m)
		if alpha <= 0 {
			continue
		}
		tint := render.Fade(severityColor(m.Severity), alpha)
		buf.WriteTinted(infoX+1, row, clip(m.Text, infoW-2), tint, render.ColorPanel)
		row++
	}
}

func severityColor(sev game.Severity) uint8 {
	switch sev {
	case game.SevSuccess:
		return render.ColorLightGreen
	case game.SevWarning:
		return render.ColorOrange
	case game.SevError:
		return render.ColorLightRed
	default:
		return render.ColorLightGray
	}
}

// clip truncates a string to fit a panel column.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg, err := config.Load("tycoon.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad config: %v", err)
	}

	data, err := assets.Markets.ReadFile("markets/markets.json")
	if err != nil {
		log.Fatalf("load market defs: %v", err)
	}
	defs, err := market.Load(data)
	if err != nil {
		log.Fatalf("parse market defs: %v", err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(cfg, defs)); err != nil {
		log.Fatal(err)
	}
}
