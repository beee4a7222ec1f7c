package llm

import "os"

// DefaultModel is the Gemini model used for recommendation selection when
// none is configured. Selection is a classification-style task, so the flash
// tier is enough.
const DefaultModel = "gemini-2.5-flash"

// ModelFromEnv returns the model configured via GEMINI_MODEL, falling back
// to DefaultModel.
func ModelFromEnv() string {
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		return model
	}
	return DefaultModel
}
