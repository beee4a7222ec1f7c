package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("selection.json", "program_selection")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "strict_ids")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("selection.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestMustGet_ReturnsPrompt(t *testing.T) {
	ClearCache()

	prompt := MustGet("selection.json", "program_selection")
	assert.Contains(t, prompt, "relaxed_ids")
}

func TestFormat(t *testing.T) {
	result := Format("degree: {{.Degree}}, field: {{.Field}}", map[string]string{
		"Degree": "bachelor",
		"Field":  "informatika",
	})
	assert.Equal(t, "degree: bachelor, field: informatika", result)
}

func TestFormat_MissingKeyLeftAsIs(t *testing.T) {
	result := Format("degree: {{.Degree}}", map[string]string{})
	assert.Equal(t, "degree: {{.Degree}}", result)
}

func TestCaching(t *testing.T) {
	ClearCache()

	first, err := Get("selection.json", "program_selection")
	require.NoError(t, err)

	second, err := Get("selection.json", "program_selection")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
