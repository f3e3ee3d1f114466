package domain

// Messages surfaced verbatim to clients.
const (
	// NoSolution is the answer for targets no sequence of actions can reach.
	NoSolution = "No solution possible"

	// InvalidInputMessage is the client-facing text for ErrInvalidInput.
	InvalidInputMessage = "All inputs must be positive integers"
)

// Field names shared by the HTTP and MCP adapters.
const (
	KeyCapacityX    = "x_capacity"
	KeyCapacityY    = "y_capacity"
	KeyAmountWanted = "z_amount_wanted"
)

// MaxAmount is the largest capacity or amount adapters accept: the largest integer a JSON
// number (IEEE 754 double) represents exactly.
const MaxAmount = 1<<53 - 1
