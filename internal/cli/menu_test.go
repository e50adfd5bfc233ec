package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptIntRepromptsOnBadInput(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("abc\n-1\n7\n"), &out, nil, nil, nil, "")

	v, ok := m.promptInt("Quantity: ", 0)
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Contains(t, out.String(), "Please enter a valid number.")
	assert.Contains(t, out.String(), "Value must be at least 0.")
}

func TestPromptIntHonorsMinimum(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("0\n1\n"), &out, nil, nil, nil, "")

	v, ok := m.promptInt("Quantity: ", 1)
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Contains(t, out.String(), "Value must be at least 1.")
}

func TestPromptIntReportsClosedInput(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader(""), &out, nil, nil, nil, "")

	_, ok := m.promptInt("Quantity: ", 0)
	assert.False(t, ok)
}

func TestRunUnknownOptionThenExit(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("99\nnope\n11\n"), &out, nil, nil, nil, "")

	m.Run(context.Background())

	assert.Equal(t, 2, strings.Count(out.String(), "Unknown option."))
	// Menu rendered with the exact labels each pass
	assert.Contains(t, out.String(), "1. Add or update item")
	assert.Contains(t, out.String(), "11. Exit")
}

func TestRunExitsWhenInputEnds(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("99\n"), &out, nil, nil, nil, "")

	// Must return rather than loop forever once stdin is exhausted.
	m.Run(context.Background())
	assert.Contains(t, out.String(), "Unknown option.")
}
