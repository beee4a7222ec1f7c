// Package provider produces recommendation result sets: a deterministic
// filter over the program catalog and an AI-backed selection on top of it.
package provider

import (
	"context"

	"github.com/dovydas-v/uniguide/internal/types"
)

// Provider returns the two candidate pools for a preference profile.
type Provider interface {
	Recommend(ctx context.Context, prefs *types.Preferences) (*types.RecommendationResponse, error)
}

// ProgramSource supplies the candidate programs a provider selects from.
// The Postgres store implements it; tests use in-memory fixtures.
type ProgramSource interface {
	ListCandidatePrograms(ctx context.Context, degree types.DegreeType) ([]*types.Program, error)
}
