package rewards

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var endsToken = regexp.MustCompile(`(\d+)\s*([a-z]+)`)

// ParseEndsLabel heuristically parses a free-text pool duration label
// such as "3d", "12h", "1w 2d" or "ends in 3 days" into a duration.
// Returns false when nothing recognizable is found; callers sort
// unparseable labels last.
func ParseEndsLabel(label string) (time.Duration, bool) {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return 0, false
	}

	var total time.Duration
	matched := false
	for _, m := range endsToken.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		var unit time.Duration
		switch {
		case strings.HasPrefix(m[2], "w"):
			unit = 7 * 24 * time.Hour
		case strings.HasPrefix(m[2], "d"):
			unit = 24 * time.Hour
		case strings.HasPrefix(m[2], "h"):
			unit = time.Hour
		case strings.HasPrefix(m[2], "m"):
			unit = time.Minute
		default:
			continue
		}
		total += time.Duration(n) * unit
		matched = true
	}
	return total, matched
}
