package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	r := NewRenderer()

	out := r.Render("Conflict at grid {grid} near {room}", Context{
		"grid": "C-4",
		"room": "Room 212",
	})
	require.Equal(t, "Conflict at grid C-4 near Room 212", out)
}

func TestRenderLeavesUnknownPlaceholders(t *testing.T) {
	r := NewRenderer()

	out := r.Render("Verify {dimension} at {grid}", Context{"grid": "B-7"})
	require.Equal(t, "Verify {dimension} at B-7", out)
}

func TestRenderRepeatedPlaceholder(t *testing.T) {
	r := NewRenderer()

	out := r.Render("{trade} to coordinate with {trade} foreman", Context{"trade": "electrical"})
	require.Equal(t, "electrical to coordinate with electrical foreman", out)
}

func TestRenderEmptyContext(t *testing.T) {
	r := NewRenderer()

	template := "No placeholders here"
	require.Equal(t, template, r.Render(template, nil))
	require.Equal(t, template, r.Render(template, Context{}))
}
