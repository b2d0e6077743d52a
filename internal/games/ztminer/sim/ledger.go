package sim

// Category groups score credits for the end-of-run breakdown.
type Category uint8

const (
	CategoryKill        Category = iota // Mobile and static enemies
	CategoryDestruction                 // Obstacles
	CategoryBonus                       // Layer completion
)

// Ledger accumulates the score. The total never drops below zero.
type Ledger struct {
	total     int
	credits   [3]int
	penalties int
}

// Credit adds points to the total under a category.
func (l *Ledger) Credit(cat Category, points int) {
	if points <= 0 {
		return
	}
	l.total += points
	if int(cat) < len(l.credits) {
		l.credits[cat] += points
	}
}

// Penalize subtracts points, flooring the total at zero.
// It returns the amount actually removed.
func (l *Ledger) Penalize(points int) int {
	taken := min(points, l.total)
	if taken < 0 {
		taken = 0
	}
	l.total -= taken
	l.penalties += taken
	return taken
}

// Score returns the current total.
func (l Ledger) Score() int {
	return l.total
}

// Credited returns the lifetime points earned under a category,
// ignoring penalties.
func (l Ledger) Credited(cat Category) int {
	if int(cat) >= len(l.credits) {
		return 0
	}
	return l.credits[cat]
}

// Penalties returns the lifetime points removed by penalties.
func (l Ledger) Penalties() int {
	return l.penalties
}
