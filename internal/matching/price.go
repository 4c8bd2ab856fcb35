package matching

import (
	"strconv"
	"strings"
)

// parsePrice extracts a numeric amount from a display price like "12,50€".
// Everything except digits, dots and commas is stripped, the first comma
// becomes a dot, and the longest numeric prefix is parsed. Failures degrade
// to 0 (free) rather than erroring.
func parsePrice(price string) float64 {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Replace(b.String(), ",", ".", 1)

	// Longest valid prefix: "12.50.30" parses as 12.5, and a comma left
	// over after the first replacement ends the number.
	end := 0
	seenDot := false
	for i, r := range cleaned {
		if r >= '0' && r <= '9' {
			end = i + 1
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			end = i + 1
			continue
		}
		break
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(cleaned[:end], "."), 64)
	if err != nil {
		return 0
	}
	return value
}
