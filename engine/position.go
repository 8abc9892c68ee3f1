package engine

// Position is a seat at the table, arranged clockwise.
type Position int8

const (
	North Position = iota
	East
	South
	West
)

// NumPositions is the number of seats; all supported variants are
// four-handed.
const NumPositions = 4

var positionNames = [NumPositions]string{"North", "East", "South", "West"}

func (p Position) String() string {
	if p < 0 || int(p) >= NumPositions {
		return "NoSeat"
	}
	return positionNames[p]
}

// Next returns the seat to p's left (clockwise). Cycling four times returns
// to the start.
func (p Position) Next() Position { return (p + 1) % NumPositions }

// Partner returns the fixed diagonal opposite of p.
func (p Position) Partner() Position { return (p + 2) % NumPositions }

// Positions returns all seats in clockwise order starting from first.
func Positions(first Position) [NumPositions]Position {
	var out [NumPositions]Position
	for i := range out {
		out[i] = first
		first = first.Next()
	}
	return out
}

// Team identifies one of the two partnerships.
type Team int8

const (
	TeamNorthSouth Team = iota
	TeamEastWest
)

func (t Team) String() string {
	if t == TeamNorthSouth {
		return "North/South"
	}
	return "East/West"
}

// Opponent returns the other partnership.
func (t Team) Opponent() Team { return 1 - t }

// Team returns the partnership the seat belongs to.
func (p Position) Team() Team {
	if p == North || p == South {
		return TeamNorthSouth
	}
	return TeamEastWest
}
