package models

// Reveal is the outcome of opening one cell.
type Reveal struct {
	// Opened lists the cells opened by this call in breadth-first order,
	// starting with the origin. Empty for a no-op.
	Opened []Position
	// Exploded is set when the origin was a mine.
	Exploded bool
}

// RevealFrom opens the cell at pos and flood-fills across the zero region
// around it.
//
// Open or marked cells are left alone. A mine opens and reports Exploded
// without spreading. A safe cell with no adjacent mines opens every closed,
// unmarked, non-mine neighbour; the spread continues only through neighbours
// that themselves have no adjacent mines. Cells are marked open when queued,
// so each one is visited at most once.
func RevealFrom(b *Board, pos Position) Reveal {
	var res Reveal

	origin := b.Cell(pos)
	if origin.IsOpen || origin.IsMarked() {
		return res
	}

	origin.IsOpen = true
	res.Opened = append(res.Opened, pos)
	if origin.IsMine {
		res.Exploded = true
		return res
	}

	queue := []Position{pos}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if b.AdjacentMineCount(cur) != 0 {
			continue
		}

		for _, n := range b.NeighborsOf(cur) {
			if n.IsOpen || n.IsMine || n.IsMarked() {
				continue
			}
			n.IsOpen = true
			res.Opened = append(res.Opened, n.Pos)
			queue = append(queue, n.Pos)
		}
	}

	return res
}

