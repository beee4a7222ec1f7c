package ranking

import (
	"strconv"

	"github.com/dovydas-v/uniguide/internal/types"
)

// Size band boundaries. Small is everything below the medium band; medium is
// inclusive on both ends.
const (
	mediumBandMin = 30
	mediumBandMax = 100
)

// ParseStudentCount extracts the first integer substring from the free-text
// student count ("apie 120 studentų" parses to 120). The second return
// reports whether a number was present; absent or non-numeric counts parse
// to 0.
func ParseStudentCount(count types.StudentCount) (int, bool) {
	s := string(count)
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return 0, false
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// sizeBandMatches reports whether a student count falls in the preferred
// band. An unparsed count lands at 0 and therefore in the small band.
func sizeBandMatches(count int, size types.ProgramSize) bool {
	switch size {
	case types.SizeSmall:
		return count < mediumBandMin
	case types.SizeMedium:
		return count >= mediumBandMin && count <= mediumBandMax
	case types.SizeLarge:
		return count > mediumBandMax
	default:
		return false
	}
}
