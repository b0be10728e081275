package rules

// transition is one row of the decision table. Rows are tried in order and the first
// row whose state matches and whose count lies in [minNeighbors, maxNeighbors] wins.
type transition struct {
	state        Cell
	minNeighbors int
	maxNeighbors int
	next         Cell
}

var transitions = []transition{
	{state: Dead, minNeighbors: 3, maxNeighbors: 3, next: Alive},
	{state: Alive, minNeighbors: 0, maxNeighbors: 1, next: Dying},
	{state: Alive, minNeighbors: 2, maxNeighbors: 3, next: Alive},
	{state: Dying, minNeighbors: 6, maxNeighbors: 7, next: Alive},
}

/*
Next applies the extended Life rule to determine the next state of a cell.

	3 neighbors, Dead     -> Alive
	0-1 neighbors, Alive  -> Dying
	2-3 neighbors, Alive  -> Alive
	6-7 neighbors, Dying  -> Alive
	anything else         -> Dead
*/
func Next(neighbors int, state Cell) Cell {
	for _, t := range transitions {
		if t.state == state && neighbors >= t.minNeighbors && neighbors <= t.maxNeighbors {
			return t.next
		}
	}
	return Dead
}
