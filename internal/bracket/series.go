package bracket

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	leaderPattern = regexp.MustCompile(`(?i)^([A-Z]{2,4})\s+(?:leads?|wins?|won)(?:\s+series)?\s+(\d+)-(\d+)$`)
	tiedPattern   = regexp.MustCompile(`(?i)^(?:series\s+)?tied\s+(\d+)-(\d+)$`)
)

// NormalizeSeries converts the feed's directional series text ("BOS leads 3-1",
// "MIA wins series 4-2", "Series tied 2-2") into wins for a and b in that order.
// ok is false when the text cannot be read or names neither team.
func NormalizeSeries(text, a, b string) (winsA, winsB int, ok bool) {
	text = strings.TrimSpace(text)
	if m := tiedPattern.FindStringSubmatch(text); m != nil {
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		if x != y {
			return 0, 0, false
		}
		return x, y, true
	}
	m := leaderPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	leader := strings.ToUpper(m[1])
	x, _ := strconv.Atoi(m[2])
	y, _ := strconv.Atoi(m[3])
	switch leader {
	case a:
		return x, y, true
	case b:
		return y, x, true
	default:
		return 0, 0, false
	}
}
