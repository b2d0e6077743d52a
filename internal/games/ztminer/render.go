package ztminer

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/core"
	"github.com/vovakirdan/zt-miner/internal/games/ztminer/sim"
)

// Minimum terminal size the game draws at.
const (
	minScreenW = 40
	minScreenH = 16
)

// dustStride is the world distance between background specks.
const dustStride = 45.0

// viewport maps world units onto the cell rows between the HUD and footer.
type viewport struct {
	field core.Box
	top   int // First playfield row
	cols  int
	rows  int
}

func newViewport(field core.Box, w, h int) viewport {
	return viewport{field: field, top: 1, cols: w, rows: h - 2}
}

// project converts a world box to the cells it covers, at least one cell.
func (v viewport) project(b core.Box) core.Rect {
	cols, rows := float64(v.cols), float64(v.rows)

	x0 := int(math.Floor(b.X * cols / v.field.W))
	x1 := int(math.Ceil(b.Right() * cols / v.field.W))
	y0 := int(math.Floor(b.Y * rows / v.field.H))
	y1 := int(math.Ceil(b.Bottom() * rows / v.field.H))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, v.top+y0, x1-x0, y1-y0)
}

// clip trims r to the playfield rows.
func (v viewport) clip(r core.Rect) core.Rect {
	x0 := core.Clamp(r.X, 0, v.cols)
	x1 := core.Clamp(r.Right(), 0, v.cols)
	y0 := core.Clamp(r.Y, v.top, v.top+v.rows)
	y1 := core.Clamp(r.Bottom(), v.top, v.top+v.rows)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	st := g.session.Status()
	switch st.Phase {
	case sim.PhaseBriefing:
		g.renderScene(dst, "MISSION BRIEFING", briefingLines, st.Scene)
		return
	case sim.PhaseEpilogue:
		g.renderScene(dst, "EPILOGUE", epilogueLines, st.Scene)
		return
	case sim.PhaseIntro:
		g.renderIntro(dst, st)
		return
	}

	vp := newViewport(g.session.Field(), dst.Width(), dst.Height())
	g.renderDust(dst, vp, st)
	g.renderSprites(dst, vp, st)
	g.renderHUD(dst, st)
	g.renderFooter(dst, st)
	g.renderOverlay(dst, st)
}

// renderDust scatters layer-colored specks that scroll with the world.
func (g *Game) renderDust(dst *core.Screen, vp viewport, st sim.Status) {
	pal := paletteFor(st.Layer)
	scroll := g.session.World().Scroll
	prev := math.MinInt
	for row := 0; row < vp.rows; row++ {
		wy := (float64(row) + 0.5) * vp.field.H / float64(vp.rows)
		band := int(math.Floor((wy - scroll) / dustStride))
		if band == prev {
			continue
		}
		prev = band
		h := uint32(band) * 2654435761
		col := int(h>>8) % vp.cols
		dst.SetColor(col, vp.top+row, pal.Dust, core.ColorGray)
	}
}

func (g *Game) renderSprites(dst *core.Screen, vp viewport, st sim.Status) {
	g.sprites = g.session.AppendSprites(g.sprites[:0])
	for _, sp := range g.sprites {
		if sp.Kind == sim.SpritePlayer && sp.Flash && (st.Frame/6)%2 == 1 {
			continue
		}
		r, c := glyph(sp)
		dst.DrawRectColor(vp.clip(vp.project(sp.Box)), r, c)
	}
}

// renderHUD draws score, layer and hull on the top row.
func (g *Game) renderHUD(dst *core.Screen, st sim.Status) {
	w := dst.Width()
	pal := paletteFor(st.Layer)

	dst.DrawTextColor(1, 0, fmt.Sprintf("SCORE %d", st.Score), core.ColorBrightWhite)

	layer := fmt.Sprintf("LAYER %d/%d %s", st.Layer+1, st.Layers, strings.ToUpper(config.ThemeName(st.Layer)))
	dst.DrawTextCenteredColor(0, layer, pal.Accent)

	hull := fmt.Sprintf("HULL %s %3d", bar(st.HealthRatio(), 10, '█', '░'), st.Health)
	color := core.ColorBrightGreen
	switch {
	case st.HealthRatio() < 0.25:
		color = core.ColorBrightRed
	case st.HealthRatio() < 0.5:
		color = core.ColorYellow
	}
	dst.DrawTextColor(w-utf8.RuneCountInString(hull)-1, 0, hull, color)
}

// renderFooter draws depth progress, drill state and key hints on the last row.
func (g *Game) renderFooter(dst *core.Screen, st sim.Status) {
	y := dst.Height() - 1
	depth := fmt.Sprintf("DEPTH [%s] %3.0f%%", bar(st.Progress, 12, '=', ' '), st.Progress*100)
	dst.DrawTextColor(1, y, depth, core.ColorCyan)

	x := utf8.RuneCountInString(depth) + 3
	if st.Drilling {
		dst.DrawTextColor(x, y, "DRILL", core.ColorBrightYellow)
	}

	hints := "X drill  SPACE fire  P pause  Q quit"
	if hx := dst.Width() - len(hints) - 1; hx > x+6 {
		dst.DrawTextColor(hx, y, hints, core.ColorGray)
	}
}

// renderOverlay draws pause, game over and victory boxes.
func (g *Game) renderOverlay(dst *core.Screen, st sim.Status) {
	switch {
	case st.Phase == sim.PhasePlaying && st.Paused:
		drawCenteredBox(dst, "PAUSED", "P resume  Q quit")

	case st.Phase == sim.PhaseGameOver:
		drawCenteredBox(dst, "HULL BREACHED",
			fmt.Sprintf("Score: %d", st.Score),
			fmt.Sprintf("R restart %s  Q quit", config.ThemeName(st.Layer)))

	case st.Phase == sim.PhaseVictory:
		drawCenteredBox(dst, "SURFACE REACHED",
			fmt.Sprintf("Final score: %d", st.Score),
			fmt.Sprintf("Layer bonuses: %d  Combat: %d", st.Bonuses, st.Score-st.Bonuses),
			"R new run  O epilogue  Q quit")
	}
}

// renderIntro draws the title card with its countdown.
func (g *Game) renderIntro(dst *core.Screen, st sim.Status) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColor(mid-4, "Z T   M I N E R", core.ColorBrightYellow)
	dst.DrawTextCenteredColor(mid-2, "Drill up through five layers to the surface", core.ColorWhite)

	var names []string
	for i := range config.LayerThemes {
		names = append(names, config.ThemeName(i))
	}
	dst.DrawTextCenteredColor(mid, strings.Join(names, " > "), core.ColorGray)

	secs := (st.IntroTicks + 59) / 60
	dst.DrawTextCenteredColor(mid+2, fmt.Sprintf("Launching in %d", secs), core.ColorBrightCyan)
	dst.DrawTextCenteredColor(mid+4, "ENTER launch  I briefing  Q quit", core.ColorGray)
}

// renderScene draws a story sequence with the current line typing out.
func (g *Game) renderScene(dst *core.Screen, title string, lines []string, sc sim.Scene) {
	w := dst.Width()
	dst.DrawTextCenteredColor(1, title, core.ColorBrightYellow)

	textW := core.Min(w-4, 72)
	x := (w - textW) / 2
	y := 3
	for i := 0; i <= sc.Line && i < len(lines); i++ {
		text := lines[i]
		color := core.ColorGray
		if i == sc.Line {
			text = revealed(text, sc.Revealed)
			color = core.ColorBrightWhite
		}
		for _, l := range wrap(text, textW) {
			if y >= dst.Height()-2 {
				break
			}
			dst.DrawTextColor(x, y, l, color)
			y++
		}
		y++
	}

	hint := "ENTER continue  B skip"
	if !sc.LineComplete() {
		hint = "ENTER show all  B skip"
	}
	dst.DrawTextCenteredColor(dst.Height()-1, hint, core.ColorGray)
}

// drawCenteredBox draws a bordered message box in the middle of the screen.
func drawCenteredBox(dst *core.Screen, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = core.Max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(boxW-utf8.RuneCountInString(title))/2, box.Y+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawText(box.X+(boxW-utf8.RuneCountInString(l))/2, box.Y+3+i, l)
	}
}

// bar renders a fixed-width gauge for a ratio in [0, 1].
func bar(ratio float64, width int, full, empty rune) string {
	n := int(math.Round(core.ClampF(ratio, 0, 1) * float64(width)))
	return strings.Repeat(string(full), n) + strings.Repeat(string(empty), width-n)
}

// wrap splits text into lines of at most width runes at word boundaries.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var out []string
	var line []rune
	for _, word := range strings.Fields(text) {
		wr := []rune(word)
		switch {
		case len(line) == 0:
			line = wr
		case len(line)+1+len(wr) <= width:
			line = append(append(line, ' '), wr...)
		default:
			out = append(out, string(line))
			line = wr
		}
		for len(line) > width {
			out = append(out, string(line[:width]))
			line = line[width:]
		}
	}
	if len(line) > 0 {
		out = append(out, string(line))
	}
	return out
}
