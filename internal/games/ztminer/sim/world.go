package sim

import "github.com/vovakirdan/zt-miner/internal/config"

// World tracks scrolling, the current layer and per-layer checkpoints.
type World struct {
	Layer    int
	Progress float64 // Distance scrolled within the current layer
	Scroll   float64 // Cumulative scroll offset

	completed   map[int]bool
	checkpoints map[int]float64
	cfg         config.WorldConfig
}

func newWorld(cfg config.WorldConfig, spawnY float64) World {
	return World{
		completed:   make(map[int]bool),
		checkpoints: map[int]float64{0: spawnY},
		cfg:         cfg,
	}
}

// lastLayer returns the index of the final layer.
func (w World) lastLayer() int {
	return w.cfg.Layers - 1
}

// advance scrolls the world by one frame.
func (w *World) advance() {
	w.Progress += w.cfg.ScrollSpeed
	w.Scroll += w.cfg.ScrollSpeed
}

// completeLayer marks a layer finished. It reports false if the layer
// was already completed, so bonuses are credited at most once.
func (w *World) completeLayer(layer int) bool {
	if w.completed[layer] {
		return false
	}
	w.completed[layer] = true
	return true
}

// readyToDescend reports whether the current layer is finished and a
// further layer exists.
func (w World) readyToDescend() bool {
	return w.Progress >= w.cfg.LayerHeight && w.Layer < w.lastLayer()
}

// enterNextLayer moves to the next layer and records the checkpoint.
func (w *World) enterNextLayer(playerY float64) {
	w.Layer++
	w.Progress = 0
	w.checkpoints[w.Layer] = playerY
}

// reachedSurface reports whether the final stretch of the last layer is done.
func (w World) reachedSurface() bool {
	return w.Layer >= w.lastLayer() && w.Progress >= w.cfg.LayerHeight*w.cfg.FinalStretch
}

// Checkpoint returns the recorded player y for a layer.
func (w World) Checkpoint(layer int) (float64, bool) {
	y, ok := w.checkpoints[layer]
	return y, ok
}

// Completed reports whether a layer's bonus has been credited.
func (w World) Completed(layer int) bool {
	return w.completed[layer]
}

// rewind puts the world back at the start of the current layer.
func (w *World) rewind() {
	w.Progress = 0
	w.Scroll = float64(w.Layer) * w.cfg.LayerHeight
}

// ProgressRatio returns how far through the current layer the world is, in [0, 1].
func (w World) ProgressRatio() float64 {
	goal := w.cfg.LayerHeight
	if w.Layer >= w.lastLayer() {
		goal *= w.cfg.FinalStretch
	}
	if goal <= 0 {
		return 0
	}
	r := w.Progress / goal
	if r > 1 {
		r = 1
	}
	return r
}
