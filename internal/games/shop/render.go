package shop

import (
	"fmt"
	"strings"

	"github.com/wesleydude/arcade/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)
	g.renderQueue(dst)
	g.renderStock(dst)
	g.renderUpgrades(dst)
	g.renderHelp(dst)

	switch g.phase {
	case PhaseWaiting:
		g.renderBanner(dst, fmt.Sprintf("Day %d — press Enter to open the shop", g.day))
	case PhasePaused:
		g.renderBanner(dst, "Paused — press P to continue")
	}
}

// renderHUD draws the top status bar with the day clock.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Shop Master — Day %d  $%d  Rep: %d/100  %s (%d%%)",
		g.day, g.money, g.reputation, g.period(), g.timeProgress)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderQueue draws the waiting customers with their patience.
func (g *Game) renderQueue(dst *core.Screen) {
	box := core.Rect{X: 2, Y: 3, W: 36, H: g.cfg.Queue.Capacity + 3}
	dst.DrawBox(box)
	dst.DrawText(box.X+2, box.Y, " Queue ")

	for i, c := range g.queue {
		want := "?"
		if p, ok := productByID(c.Wants); ok {
			want = p.Name
		}
		color := core.ColorDefault
		if c.Patience <= 2 {
			color = core.ColorRed
		}
		line := fmt.Sprintf("%-12s %-10s %s", c.Type.Name, want, strings.Repeat("·", c.Patience))
		dst.DrawTextColored(box.X+2, box.Y+1+i, line, color)
	}
	if len(g.queue) == 0 {
		dst.DrawTextColored(box.X+2, box.Y+1, "(empty)", core.ColorGray)
	}
}

// renderStock draws the product panel with stock counts.
func (g *Game) renderStock(dst *core.Screen) {
	box := core.Rect{X: 40, Y: 3, W: 38, H: len(Products) + 2}
	dst.DrawBox(box)
	title := " Stock "
	if g.panel == PanelStock {
		title = " Stock* "
	}
	dst.DrawText(box.X+2, box.Y, title)

	for i, p := range Products {
		cursor := ' '
		if g.panel == PanelStock && i == g.cursor {
			cursor = '>'
		}
		color := core.ColorDefault
		if g.stock[p.ID] == 0 {
			color = core.ColorGray
		}
		line := fmt.Sprintf("%c %-11s $%-4d  %d/%d", cursor, p.Name, p.Cost, g.stock[p.ID], g.stockCap())
		dst.DrawTextColored(box.X+1, box.Y+1+i, line, color)
	}
}

// renderUpgrades draws the upgrade panel.
func (g *Game) renderUpgrades(dst *core.Screen) {
	box := core.Rect{X: 2, Y: 3 + g.cfg.Queue.Capacity + 4, W: 36, H: len(upgradeOrder) + 2}
	dst.DrawBox(box)
	title := " Upgrades "
	if g.panel == PanelUpgrades {
		title = " Upgrades* "
	}
	dst.DrawText(box.X+2, box.Y, title)

	for i, id := range upgradeOrder {
		cursor := ' '
		if g.panel == PanelUpgrades && i == g.cursor {
			cursor = '>'
		}
		status := fmt.Sprintf("$%d", g.upgradePrice(id))
		color := core.ColorDefault
		if g.upgradeOwned(id) {
			status = "owned"
			color = core.ColorGreen
		}
		line := fmt.Sprintf("%c %-12s %s", cursor, id, status)
		dst.DrawTextColored(box.X+1, box.Y+1+i, line, color)
	}
}

// renderHelp draws the key bindings.
func (g *Game) renderHelp(dst *core.Screen) {
	dst.DrawText(2, dst.Height()-1, "[Space] Serve  [B] Buy  [Tab] Panel  [Up/Down] Select  [P] Pause")
}

// renderBanner draws a single centered message box.
func (g *Game) renderBanner(dst *core.Screen, text string) {
	boxW := len([]rune(text)) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := dst.Height()/2 - 1
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: 3})
	dst.DrawTextCentered(boxY+1, text)
}
