package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeResponse_TwoPoolShape(t *testing.T) {
	payload := []byte(`{
		"strict_programs": [
			{"id": "5a8f1d8e-0a35-4f3b-9f2e-6a1f1bb0c001", "title": "Informatika", "student_count": "25"}
		],
		"relaxed_programs": [
			{"id": "5a8f1d8e-0a35-4f3b-9f2e-6a1f1bb0c002", "title": "Programų sistemos", "student_count": 140}
		]
	}`)

	resp, err := DecodeResponse(payload)

	require.NoError(t, err)
	require.Len(t, resp.StrictPrograms, 1)
	require.Len(t, resp.RelaxedPrograms, 1)
	assert.Equal(t, "Informatika", resp.StrictPrograms[0].Title)
	assert.Equal(t, "140", string(resp.RelaxedPrograms[0].StudentCount))
}

func TestDecodeResponse_LegacyFlatArray(t *testing.T) {
	payload := []byte(`[
		{"id": "5a8f1d8e-0a35-4f3b-9f2e-6a1f1bb0c001", "title": "Informatika"},
		{"id": "5a8f1d8e-0a35-4f3b-9f2e-6a1f1bb0c002", "title": "Teisė"}
	]`)

	resp, err := DecodeResponse(payload)

	require.NoError(t, err)
	assert.Len(t, resp.StrictPrograms, 2)
	assert.Empty(t, resp.RelaxedPrograms)
}

func TestDecodeResponse_MissingRelaxedPoolDefaultsEmpty(t *testing.T) {
	payload := []byte(`{"strict_programs": []}`)

	resp, err := DecodeResponse(payload)

	require.NoError(t, err)
	assert.NotNil(t, resp.RelaxedPrograms)
	assert.True(t, resp.Empty())
}

func TestDecodeResponse_UnrecognizedShape(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"arbitrary object", `{"programs": []}`},
		{"scalar", `42`},
		{"program missing title", `{"strict_programs": [{"id": "5a8f1d8e-0a35-4f3b-9f2e-6a1f1bb0c001"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeResponse([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}
