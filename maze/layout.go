package maze

// Layout is the static description of a maze: its size, endpoints and walls.
// It carries no search state.
type Layout struct {
	Rows  int            `json:"rows" bson:"rows"`
	Cols  int            `json:"cols" bson:"cols"`
	Start CellPosition   `json:"start" bson:"start"`
	Exit  CellPosition   `json:"exit" bson:"exit"`
	Walls []CellPosition `json:"walls" bson:"walls"`
}

// Build returns a fresh maze configured from the layout.
func (l Layout) Build() (*Maze, error) {
	m, err := New(l.Rows, l.Cols)
	if err != nil {
		return nil, err
	}
	for _, w := range l.Walls {
		if err := m.SetWall(w.Row, w.Col); err != nil {
			return nil, err
		}
	}
	if err := m.SetStart(l.Start.Row, l.Start.Col); err != nil {
		return nil, err
	}
	if err := m.SetExit(l.Exit.Row, l.Exit.Col); err != nil {
		return nil, err
	}
	return m, nil
}

// Layout extracts the static layout of m. Unset endpoints are reported as (0,0).
func (m *Maze) Layout() Layout {
	l := Layout{Rows: m.Rows(), Cols: m.Cols()}
	l.Start, _ = m.Start()
	l.Exit, _ = m.Exit()
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			p := CellPosition{Row: row, Col: col}
			if m.grid.at(p) == Wall {
				l.Walls = append(l.Walls, p)
			}
		}
	}
	return l
}
