package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMalformedInputError(t *testing.T) {
	err := NewMalformedInputError("HTTP Request", 2, "neither end time nor duration present")

	assert.True(t, IsMalformedInput(err))
	assert.False(t, IsMalformedRun(err))
	assert.Contains(t, err.Error(), "HTTP Request[2]")
	assert.Contains(t, err.Error(), "neither end time nor duration present")
}

func TestMalformedInputError_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("collect: %w", NewMalformedInputError("Loop", 0, "missing start time"))

	assert.True(t, IsMalformedInput(err))

	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "Loop", malformed.NodeName)
	assert.Equal(t, 0, malformed.RunIndex)
}

func TestMalformedRunError(t *testing.T) {
	err := NewMalformedRunError("Set", 1, "end time precedes start time")

	assert.True(t, IsMalformedRun(err))
	assert.False(t, IsMalformedInput(err))
	assert.Contains(t, err.Error(), "Set[1]")
}

func TestUnknownParentError(t *testing.T) {
	err := NewUnknownParentError("Child", 0, ParentRef{NodeName: "Ghost", RunIndex: 4})

	assert.True(t, IsUnknownParent(err))
	assert.Contains(t, err.Error(), "Child[0]")
	assert.Contains(t, err.Error(), "Ghost[4]")
}

func TestSentinelHelpers(t *testing.T) {
	assert.True(t, IsEmptyInput(ErrEmptyInput))
	assert.True(t, IsEmptyInput(fmt.Errorf("aggregate node X: %w", ErrEmptyInput)))
	assert.False(t, IsEmptyInput(ErrInvalidConfig))

	assert.True(t, IsInvalidConfig(fmt.Errorf("%w: bad sort order", ErrInvalidConfig)))
	assert.False(t, IsInvalidConfig(nil))
}
