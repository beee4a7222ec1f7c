package ranking

// careerGoalKeywords maps a career goal identifier to the keyword stems
// matched against program descriptions. Stems are matched as substrings, so
// one stem covers the Lithuanian case endings.
var careerGoalKeywords = map[string][]string{
	"industry":         {"industry", "pramon", "karjer", "darbdav"},
	"academic":         {"academic", "akademin", "doktorant", "dėstym"},
	"entrepreneurship": {"entrepreneur", "startup", "versl", "inovac"},
	"research":         {"research", "mokslas", "tyrimai", "laboratori"},
	"public":           {"public sector", "viešaj", "valstyb", "savivaldyb"},
	"international":    {"international", "tarptautin", "erasmus", "užsien"},
}

// CareerGoalKeywords returns the keyword list for a goal identifier, or nil
// when the goal is unknown.
func CareerGoalKeywords(goal string) []string {
	return careerGoalKeywords[goal]
}
