package config

// LayerDifficulty calculates spawn parameters from the current layer index.
// Nothing else (score, elapsed time) feeds into the result.
type LayerDifficulty struct {
	cfg DifficultyConfig
}

// NewLayerDifficulty creates a new layer-indexed difficulty schedule.
func NewLayerDifficulty(cfg DifficultyConfig) *LayerDifficulty {
	return &LayerDifficulty{cfg: cfg}
}

// EnemyInterval returns frames between mobile enemy spawns on a layer.
func (d *LayerDifficulty) EnemyInterval(layer int) int {
	return d.cfg.Enemy.interval(d.effective(layer))
}

// EnemyCap returns the mobile enemy population cap on a layer.
func (d *LayerDifficulty) EnemyCap(layer int) int {
	return d.cfg.Enemy.cap(d.effective(layer))
}

// StaticInterval returns frames between static emplacement spawns on a layer.
func (d *LayerDifficulty) StaticInterval(layer int) int {
	return d.cfg.Static.interval(d.effective(layer))
}

// StaticCap returns the static emplacement population cap on a layer.
func (d *LayerDifficulty) StaticCap(layer int) int {
	return d.cfg.Static.cap(d.effective(layer))
}

func (d *LayerDifficulty) effective(layer int) int {
	if !d.cfg.ScaleWithLayer || layer < 0 {
		return 0
	}
	return layer
}

func (s SpawnSchedule) interval(layer int) int {
	v := s.BaseInterval - s.IntervalStep*layer
	if v < s.MinInterval {
		v = s.MinInterval
	}
	if v < 1 {
		v = 1
	}
	return v
}

func (s SpawnSchedule) cap(layer int) int {
	return s.BaseCap + s.CapStep*layer
}
