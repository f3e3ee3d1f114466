package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPuzzle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		puzzle  Puzzle
		wantErr bool
		field   string
	}{
		{"valid", Puzzle{2, 10, 4}, false, ""},
		{"zero X", Puzzle{0, 10, 4}, true, KeyCapacityX},
		{"negative Y", Puzzle{2, -1, 4}, true, KeyCapacityY},
		{"zero Z", Puzzle{2, 10, 0}, true, KeyAmountWanted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.puzzle.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestPuzzle_Unreachable(t *testing.T) {
	assert.True(t, Puzzle{2, 3, 5}.Unreachable())
	assert.False(t, Puzzle{2, 5, 5}.Unreachable())
	assert.False(t, Puzzle{6, 2, 4}.Unreachable())
}

func TestPuzzle_IsGoal(t *testing.T) {
	p := Puzzle{X: 2, Y: 10, Z: 4}
	assert.True(t, p.IsGoal(State{0, 4}))
	assert.False(t, p.IsGoal(State{2, 2}))
	assert.False(t, p.IsGoal(State{}))
}
