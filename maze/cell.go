package maze

// Marker is the state of a single grid cell.
type Marker uint8

const (
	Empty Marker = iota // Empty is an unvisited, traversable cell.
	Wall                // Wall is an impassable cell; the search never overwrites it.
	Path                // Path is on the recorded solution or the branch being explored.
	Tried               // Tried is an explored dead end.
)

// Glyphs used by the text renderer and loader.
const (
	EmptyGlyph = '_'
	WallGlyph  = '*'
	PathGlyph  = 'x'
	TriedGlyph = 'o'
)

// Glyph returns the single character used to render the marker.
func (m Marker) Glyph() byte {
	switch m {
	case Wall:
		return WallGlyph
	case Path:
		return PathGlyph
	case Tried:
		return TriedGlyph
	default:
		return EmptyGlyph
	}
}

// String returns the marker name.
func (m Marker) String() string {
	switch m {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Tried:
		return "Tried"
	default:
		return "Unknown"
	}
}

// CellPosition identifies a grid cell by row and column.
type CellPosition struct {
	Row int `json:"row" bson:"row"`
	Col int `json:"col" bson:"col"`
}

// Directions lists the neighbor offsets in the order the search tries them:
// up, right, down, left.
var Directions = [4]CellPosition{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Add returns the position shifted by delta.
func (p CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}
