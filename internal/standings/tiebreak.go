package standings

import (
	"cmp"
	"sort"
	"strings"
)

// comparePct returns >0 when a has the higher winning percentage. Percentages are compared by
// cross-multiplication so equal records never differ by float rounding. No games counts as 0.
func comparePct(a, b WinLoss) int {
	if a.Games() == 0 || b.Games() == 0 {
		// One side is 0 by definition; compare against the other side's wins.
		switch {
		case a.Games() == 0 && b.Games() == 0:
			return 0
		case a.Games() == 0:
			return -sign(b.Wins)
		default:
			return sign(a.Wins)
		}
	}
	return cmp.Compare(a.Wins*b.Games(), b.Wins*a.Games())
}

func sign(n int) int {
	return cmp.Compare(n, 0)
}

// Compare orders two records of the same conference, best first: a negative result means a
// ranks ahead of b. leaders holds the precomputed division leaders.
//
// Criteria: win pct, head-to-head (when they met), division leader, division pct (same division),
// conference pct, point differential, then wins, losses and tricode as stabilizers. This is a
// deliberate subset of the league's official procedure.
func Compare(a, b Record, leaders map[string]bool) int {
	if c := comparePct(b.Overall, a.Overall); c != 0 {
		return c
	}
	if h2h := a.HeadToHead[b.Tricode]; h2h.Games() > 0 {
		if c := cmp.Compare(h2h.Losses, h2h.Wins); c != 0 {
			return c
		}
	}
	if la, lb := leaders[a.Tricode], leaders[b.Tricode]; la != lb {
		if la {
			return -1
		}
		return 1
	}
	if a.Division != "" && a.Division == b.Division {
		if c := comparePct(b.Div, a.Div); c != 0 {
			return c
		}
	}
	if c := comparePct(b.Conf, a.Conf); c != 0 {
		return c
	}
	return compareBasic(a, b)
}

// compareBasic applies only the win pct, point differential and stabilizer criteria.
func compareBasic(a, b Record) int {
	if c := comparePct(b.Overall, a.Overall); c != 0 {
		return c
	}
	if c := cmp.Compare(b.PointDiff(), a.PointDiff()); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Wins(), a.Wins()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Losses(), b.Losses()); c != 0 {
		return c
	}
	return strings.Compare(a.Tricode, b.Tricode)
}

// DivisionLeaders marks the best team of each division using compareBasic only. The result is
// a fixed input to Compare and is not re-derived during the main sort.
func DivisionLeaders(records []Record) map[string]bool {
	best := make(map[string]Record)
	divisions := make([]string, 0)
	for _, rec := range records {
		if rec.Division == "" {
			continue
		}
		cur, ok := best[rec.Division]
		if !ok {
			divisions = append(divisions, rec.Division)
			best[rec.Division] = rec
			continue
		}
		if compareBasic(rec, cur) < 0 {
			best[rec.Division] = rec
		}
	}
	sort.Strings(divisions)

	leaders := make(map[string]bool, len(divisions))
	for _, div := range divisions {
		leaders[best[div].Tricode] = true
	}
	return leaders
}
