package places

import (
	"math"
	"strconv"
	"strings"
)

// ParseViews reads a display view count such as "1.2M", "850K" or "12,400".
func ParseViews(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}

	mult := 1.0
	switch s[len(s)-1] {
	case 'K', 'k':
		mult = 1_000
	case 'M', 'm':
		mult = 1_000_000
	case 'B', 'b':
		mult = 1_000_000_000
	}
	if mult != 1 {
		s = strings.TrimSpace(s[:len(s)-1])
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n * mult, true
}
