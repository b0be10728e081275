package rules

// Cell is the state of a single grid unit.
type Cell uint8

const (
	Dead Cell = iota
	Dying
	Alive
)

// IsLive reports whether the cell counts as a neighbor. Dying cells still do.
func (c Cell) IsLive() bool {
	return c == Alive || c == Dying
}

func (c Cell) String() string {
	switch c {
	case Dead:
		return "Dead"
	case Dying:
		return "Dying"
	case Alive:
		return "Alive"
	default:
		return "Unknown"
	}
}
