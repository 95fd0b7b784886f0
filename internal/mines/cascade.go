package mines

type cascadeStep struct {
	Point
	depth int
}

// cascade opens the empty region around origin breadth-first. A cell
// reached at depth d expands only while d <= f.cascadeDepth, so the
// bordering cells of the last ring are still opened. Empty cells have no
// mined neighbours, so the walk never touches a mine.
func (f *Field) cascade(origin Point, revealed []Point) []Point {
	visited := make([]bool, len(f.grid.cells))
	visited[f.grid.index(origin.X, origin.Y)] = true

	queue := []cascadeStep{{origin, 0}}
	for len(queue) > 0 {
		step := queue[0]
		queue = queue[1:]

		if f.grid.cells[f.grid.index(step.X, step.Y)].Type != Empty {
			continue
		}
		if f.cascadeDepth >= 0 && step.depth > f.cascadeDepth {
			continue
		}

		for p := range f.grid.Neighbors(step.X, step.Y) {
			i := f.grid.index(p.X, p.Y)
			if visited[i] {
				continue
			}
			visited[i] = true

			c := &f.grid.cells[i]
			if c.Visible || c.Flag {
				continue
			}
			c.Visible = true
			revealed = append(revealed, p)
			queue = append(queue, cascadeStep{p, step.depth + 1})
		}
	}

	return revealed
}
