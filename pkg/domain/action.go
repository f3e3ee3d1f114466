package domain

import "fmt"

// Action is one of the six moves available from any state.
type Action int

// Actions in generation order. The order decides which of several equally short
// traces the solver returns, so it must not change.
const (
	FillX Action = iota
	FillY
	EmptyX
	EmptyY
	TransferXY
	TransferYX
)

// Actions lists every action in generation order.
var Actions = [...]Action{FillX, FillY, EmptyX, EmptyY, TransferXY, TransferYX}

var actionLabels = [...]string{
	FillX:      "Fill bucket X",
	FillY:      "Fill bucket Y",
	EmptyX:     "Empty bucket X",
	EmptyY:     "Empty bucket Y",
	TransferXY: "Transfer from bucket X to Y",
	TransferYX: "Transfer from bucket Y to X",
}

// String returns the human readable label used on the wire.
func (a Action) String() string {
	if a < FillX || a > TransferYX {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionLabels[a]
}

// ParseAction maps a label back to its Action.
func ParseAction(label string) (Action, error) {
	for _, a := range Actions {
		if actionLabels[a] == label {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, label)
}

// MarshalText encodes the action as its label.
func (a Action) MarshalText() ([]byte, error) {
	if a < FillX || a > TransferYX {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAction, int(a))
	}
	return []byte(actionLabels[a]), nil
}

// UnmarshalText decodes a label produced by MarshalText.
func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Apply returns the state reached by performing a on s within the capacities of p.
func (a Action) Apply(p Puzzle, s State) State {
	switch a {
	case FillX:
		return State{X: p.X, Y: s.Y}
	case FillY:
		return State{X: s.X, Y: p.Y}
	case EmptyX:
		return State{X: 0, Y: s.Y}
	case EmptyY:
		return State{X: s.X, Y: 0}
	case TransferXY:
		return State{
			X: max(0, s.X-(p.Y-s.Y)),
			Y: min(p.Y, s.X+s.Y),
		}
	case TransferYX:
		return State{
			X: min(p.X, s.X+s.Y),
			Y: max(0, s.Y-(p.X-s.X)),
		}
	}
	return s
}
