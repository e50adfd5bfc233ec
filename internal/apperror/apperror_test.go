package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	assert.ErrorIs(t, NotFound("Widget"), ErrNotFound)
	assert.ErrorIs(t, InvalidState("cannot reduce below zero"), ErrInvalidState)
	assert.ErrorIs(t, Validation("empty name"), ErrValidation)
	assert.ErrorIs(t, Constraint(errors.New("UNIQUE constraint failed")), ErrConstraint)

	// Kinds stay distinct
	assert.NotErrorIs(t, NotFound("Widget"), ErrInvalidState)
}

func TestMessagesCarryReason(t *testing.T) {
	assert.EqualError(t, InvalidState("cannot reduce below zero"), "invalid state: cannot reduce below zero")
	assert.EqualError(t, NotFound("Widget"), `not found: item "Widget"`)
}
