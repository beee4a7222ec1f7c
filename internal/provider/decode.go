package provider

import (
	"encoding/json"
	"fmt"

	"github.com/dovydas-v/uniguide/internal/schemas"
	"github.com/dovydas-v/uniguide/internal/types"
)

// DecodeResponse parses a raw provider payload. Two shapes are supported:
// the current {strict_programs, relaxed_programs} object and the legacy bare
// program array, which is treated as all-strict with no alternatives.
// Anything else is an unrecognized shape and surfaces as a provider failure.
func DecodeResponse(payload []byte) (*types.RecommendationResponse, error) {
	if err := schemas.ValidateProviderResponse(payload); err != nil {
		return nil, fmt.Errorf("unrecognized provider payload: %w", err)
	}

	var resp types.RecommendationResponse
	if err := json.Unmarshal(payload, &resp); err == nil && resp.StrictPrograms != nil {
		if resp.RelaxedPrograms == nil {
			resp.RelaxedPrograms = []*types.Program{}
		}
		return &resp, nil
	}

	var flat []*types.Program
	if err := json.Unmarshal(payload, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode provider payload: %w", err)
	}
	return &types.RecommendationResponse{
		StrictPrograms:  flat,
		RelaxedPrograms: []*types.Program{},
	}, nil
}
