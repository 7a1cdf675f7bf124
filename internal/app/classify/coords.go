package classify

import (
	"regexp"
	"strconv"
)

var coordPattern = regexp.MustCompile(`(-?\d+)[\s,]+(-?\d+)(?:[\s,]+(-?\d+))?`)

// extractCoordinates pulls the first numeric pair or triplet out of the
// text. Two numbers yield X/Y, a third yields Z.
func extractCoordinates(text string) ([]int, bool) {
	m := coordPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	out := make([]int, 0, 3)
	for _, group := range m[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return nil, false
		}
		out = append(out, n)
	}
	if len(out) < 2 {
		return nil, false
	}
	return out, true
}
