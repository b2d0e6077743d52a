package ztminer

import (
	"github.com/vovakirdan/zt-miner/internal/core"
	"github.com/vovakirdan/zt-miner/internal/games/ztminer/sim"
)

// palette colors one layer's rock and accents.
type palette struct {
	Rock   core.Color
	Accent core.Color
	Dust   rune // Background speck glyph
}

var palettes = []palette{
	{Rock: core.ColorRed, Accent: core.ColorBrightRed, Dust: '*'},
	{Rock: core.ColorOrange, Accent: core.ColorBrightYellow, Dust: '·'},
	{Rock: core.ColorYellow, Accent: core.ColorOrange, Dust: '.'},
	{Rock: core.ColorGreen, Accent: core.ColorBrightGreen, Dust: '.'},
	{Rock: core.ColorCyan, Accent: core.ColorBrightWhite, Dust: '°'},
}

func paletteFor(layer int) palette {
	if layer < 0 || layer >= len(palettes) {
		return palette{Rock: core.ColorGray, Accent: core.ColorWhite, Dust: '.'}
	}
	return palettes[layer]
}

// glyph picks the rune and color for a sprite.
func glyph(sp sim.Sprite) (rune, core.Color) {
	pal := paletteFor(sp.Layer)
	switch sp.Kind {
	case sim.SpritePlayer:
		return '█', core.ColorBrightCyan
	case sim.SpriteDrill:
		return 'V', core.ColorBrightYellow
	case sim.SpriteShot:
		return '|', core.ColorBrightYellow
	case sim.SpriteEnemyShot:
		return '!', core.ColorBrightRed
	case sim.SpritePatternShot:
		return '•', core.ColorBrightMagenta
	case sim.SpriteOrb:
		if sp.Pulse < 0.5 {
			return '+', core.ColorBrightGreen
		}
		return '✚', core.ColorGreen
	case sim.SpriteEnemy:
		if sim.EnemyKind(sp.Variant) == sim.EnemyAggressive {
			return 'W', core.ColorMagenta
		}
		return 'v', core.ColorRed
	case sim.SpriteStatic:
		switch sim.Pattern(sp.Variant) {
		case sim.PatternSpiral:
			return '@', core.ColorBrightMagenta
		case sim.PatternAimed:
			return 'X', core.ColorOrange
		default:
			return 'O', core.ColorYellow
		}
	case sim.SpriteObstacle:
		switch sim.ObstacleKind(sp.Variant) {
		case sim.ObstacleCrystal:
			return '◆', core.ColorBrightBlue
		case sim.ObstacleReinforced:
			return '▓', core.ColorGray
		case sim.ObstacleIndestructible:
			return '█', core.ColorWhite
		default:
			if sp.Health < 0.5 {
				return '░', pal.Rock
			}
			return '▒', pal.Rock
		}
	}
	return '?', core.ColorDefault
}
