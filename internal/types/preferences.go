// Package types defines the shared data contracts for the recommendation flow.
package types

// DegreeType identifies the study cycle a user is looking for.
type DegreeType string

// Supported degree types.
const (
	DegreeBachelor DegreeType = "bachelor"
	DegreeMaster   DegreeType = "master"
)

// ProgramSize is a ranking hint describing the preferred cohort size.
// It never excludes a candidate, it only contributes to the relevance score.
type ProgramSize string

// Supported program size bands. The empty value means "no preference".
const (
	SizeNone   ProgramSize = ""
	SizeSmall  ProgramSize = "small"
	SizeMedium ProgramSize = "medium"
	SizeLarge  ProgramSize = "large"
)

// AcademicPreferences holds the hard academic filters selected in the intake form.
type AcademicPreferences struct {
	DegreeType   DegreeType `json:"degree_type,omitempty"`
	FieldOfStudy []string   `json:"field_of_study,omitempty"`
	Locations    []string   `json:"locations,omitempty"`
	MinRating    float64    `json:"min_rating,omitempty" validate:"gte=0,lte=5"`
}

// FinancialFactors holds cost-related constraints.
type FinancialFactors struct {
	StateFinanced bool    `json:"state_financed,omitempty"`
	MaxYearlyCost float64 `json:"max_yearly_cost,omitempty" validate:"gte=0"`
}

// StudyPreferences holds ranking hints about study style.
type StudyPreferences struct {
	// DifficultyLevel is a 0-100 slider value. The intake form clamps it,
	// but the ranking engine does not rely on that.
	DifficultyLevel float64 `json:"difficulty_level,omitempty" validate:"gte=0,lte=100"`
}

// LearningPreferences holds ranking hints about learning style.
type LearningPreferences struct {
	PracticalVsTheoretical float64 `json:"practical_vs_theoretical,omitempty"`
}

// HousingPreferences holds accommodation-related hints.
type HousingPreferences struct {
	DormitoryImportant bool `json:"dormitory_important,omitempty"`
}

// Preferences is the structured output of the intake form. It is treated as
// immutable for the duration of a ranking pass; a changed Preferences object
// always triggers a full rescore.
type Preferences struct {
	Academic            AcademicPreferences `json:"academic_preferences"`
	Financial           FinancialFactors    `json:"financial_factors"`
	ProgramSize         ProgramSize         `json:"program_size,omitempty"`
	Study               StudyPreferences    `json:"study_preferences"`
	Learning            LearningPreferences `json:"learning_preferences"`
	ImportantCategories []string            `json:"important_categories,omitempty"`
	CareerGoals         []string            `json:"career_goals,omitempty"`
	Housing             HousingPreferences  `json:"housing_preferences"`
	KeywordSearch       string              `json:"keyword_search,omitempty"`
	Interests           []string            `json:"interests,omitempty"`
	FreeFormDescription string              `json:"free_form_description,omitempty"`
}
