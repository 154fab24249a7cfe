package cooking

import (
	"fmt"

	"github.com/wesleydude/arcade/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.phase == PhaseWaiting {
		g.renderOverlay(dst, g.Title(), "Press Enter to start")
		return
	}

	g.renderRecipe(dst)
	g.renderPan(dst)
	g.renderSlots(dst)

	switch g.phase {
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseFinished:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d — press R to restart", g.score))
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Level: %d  Time: %ds", g.Title(), g.score, g.level, g.timeLeft)
	if g.mode == ModeExtended {
		hud += fmt.Sprintf("  Mistakes: %d/%d  Combo: x%.2f",
			g.mistakes, g.maxMistakes, 1.0+g.cfg.Scoring.ComboStep*float64(g.combo))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderRecipe draws the current recipe with per-step status.
func (g *Game) renderRecipe(dst *core.Screen) {
	box := core.Rect{X: 2, Y: 3, W: 34, H: len(g.steps) + 4}
	dst.DrawBox(box)
	dst.DrawText(box.X+2, box.Y, " Recipe ")
	dst.DrawTextColored(box.X+2, box.Y+1, g.recipe.Name, core.ColorBrightYellow)

	for i, s := range g.steps {
		ing, _ := ingredientByID(s.Ingredient)
		mark, color := ' ', core.ColorDefault
		switch {
		case s.Cooked:
			mark, color = '+', core.ColorGreen
		case s.Cooking:
			mark, color = '~', core.ColorYellow
		case i == g.pointer:
			mark, color = '>', core.ColorCyan
		}
		line := fmt.Sprintf("[%c] %-10s %ds", mark, ing.Name, ing.CookSecs)
		dst.DrawTextColored(box.X+2, box.Y+2+i, line, color)
	}
}

// renderPan draws the pan contents.
func (g *Game) renderPan(dst *core.Screen) {
	box := core.Rect{X: 40, Y: 3, W: 34, H: len(g.steps) + 4}
	dst.DrawBox(box)
	dst.DrawText(box.X+2, box.Y, " Pan ")

	row := box.Y + 1
	for _, s := range g.steps {
		if !s.Cooking && !s.Cooked {
			continue
		}
		ing, _ := ingredientByID(s.Ingredient)
		state, color := "cooking...", core.ColorYellow
		if s.Cooked {
			state, color = "done", core.ColorGreen
		}
		dst.DrawTextColored(box.X+2, row, fmt.Sprintf("%-10s %s", ing.Name, state), color)
		row++
	}
}

// renderSlots draws the ingredient key bindings.
func (g *Game) renderSlots(dst *core.Screen) {
	y := dst.Height() - 2
	x := 2
	for i, ing := range Ingredients {
		label := fmt.Sprintf("[%d]%s ", i+1, ing.Name)
		dst.DrawText(x, y, label)
		x += len(label)
	}
	dst.DrawText(2, y+1, "[Space] Serve  [P] Pause")
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
