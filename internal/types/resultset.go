package types

// RecommendationResponse is the payload produced by a recommendation provider:
// strict matches satisfy every hard filter, relaxed matches are alternatives
// that satisfy only a subset. Legacy providers returned a bare program array;
// decoding of that shape lives in the provider package.
type RecommendationResponse struct {
	StrictPrograms  []*Program `json:"strict_programs"`
	RelaxedPrograms []*Program `json:"relaxed_programs"`
}

// Empty reports whether both pools are empty.
func (r *RecommendationResponse) Empty() bool {
	return len(r.StrictPrograms) == 0 && len(r.RelaxedPrograms) == 0
}
