package domain

import "fmt"

// State is the fill level of both jugs.
// It is comparable and doubles as the visited-set key during search.
type State struct {
	X int
	Y int
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.X, s.Y)
}

// Puzzle holds the two jug capacities and the amount wanted in either of them.
type Puzzle struct {
	X int `json:"x_capacity"`
	Y int `json:"y_capacity"`
	Z int `json:"z_amount_wanted"`
}

// Validate reports ErrInvalidInput unless every field is strictly positive.
func (p Puzzle) Validate() error {
	switch {
	case p.X <= 0:
		return fmt.Errorf("%s=%d: %w", KeyCapacityX, p.X, ErrInvalidInput)
	case p.Y <= 0:
		return fmt.Errorf("%s=%d: %w", KeyCapacityY, p.Y, ErrInvalidInput)
	case p.Z <= 0:
		return fmt.Errorf("%s=%d: %w", KeyAmountWanted, p.Z, ErrInvalidInput)
	}
	return nil
}

// Unreachable reports whether the wanted amount exceeds both capacities,
// in which case no jug can ever hold it.
func (p Puzzle) Unreachable() bool {
	return p.Z > p.X && p.Z > p.Y
}

// IsGoal reports whether either jug holds exactly the wanted amount.
func (p Puzzle) IsGoal(s State) bool {
	return s.X == p.Z || s.Y == p.Z
}

// Contains reports whether s is within the jug capacities.
func (p Puzzle) Contains(s State) bool {
	return s.X >= 0 && s.X <= p.X && s.Y >= 0 && s.Y <= p.Y
}
