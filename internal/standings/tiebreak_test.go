package standings

import (
	"testing"

	"github.com/preston-bernstein/nba-standings-service/internal/domain/teams"
)

func record(code, div string, w, l int) Record {
	return Record{
		Tricode:    code,
		Conference: teams.East,
		Division:   div,
		Overall:    WinLoss{w, l},
		HeadToHead: map[string]WinLoss{},
	}
}

func TestComparePctIsExact(t *testing.T) {
	// 1/3 and 2/6 must tie even though float division can disagree in the last bit.
	if c := comparePct(WinLoss{1, 2}, WinLoss{2, 4}); c != 0 {
		t.Fatalf("expected tie, got %d", c)
	}
	if c := comparePct(WinLoss{3, 1}, WinLoss{2, 1}); c <= 0 {
		t.Fatalf("expected 3-1 ahead of 2-1, got %d", c)
	}
	if c := comparePct(WinLoss{}, WinLoss{0, 5}); c != 0 {
		t.Fatalf("0-0 and 0-5 are both .000, got %d", c)
	}
	if c := comparePct(WinLoss{}, WinLoss{1, 5}); c >= 0 {
		t.Fatalf("expected 0-0 behind 1-5, got %d", c)
	}
}

func TestCompareWinPctFirst(t *testing.T) {
	a := record("AAA", "Atlantic", 40, 30)
	b := record("BBB", "Atlantic", 41, 29)
	if Compare(a, b, nil) <= 0 {
		t.Fatalf("expected BBB ahead")
	}
}

func TestCompareHeadToHead(t *testing.T) {
	a := record("NYK", "Atlantic", 45, 25)
	b := record("BOS", "Atlantic", 45, 25)
	a.HeadToHead["BOS"] = WinLoss{3, 1}
	b.HeadToHead["NYK"] = WinLoss{1, 3}
	b.PointsFor = 500 // larger differential must not matter

	if Compare(a, b, nil) >= 0 {
		t.Fatalf("expected NYK ahead on head-to-head")
	}
	if Compare(b, a, nil) <= 0 {
		t.Fatalf("expected antisymmetric result")
	}
}

func TestCompareDivisionLeaderBeatsNonLeader(t *testing.T) {
	bos := record("BOS", "Atlantic", 50, 20)
	mil := record("MIL", "Central", 50, 20)
	cle := record("CLE", "Central", 55, 15)
	bos.HeadToHead["MIL"] = WinLoss{1, 1}
	mil.HeadToHead["BOS"] = WinLoss{1, 1}
	// MIL has the better conference record; leader precedence comes first.
	mil.Conf = WinLoss{35, 10}
	bos.Conf = WinLoss{30, 15}
	mil.PointsFor = 300

	leaders := DivisionLeaders([]Record{bos, mil, cle})
	if !leaders["BOS"] || !leaders["CLE"] || leaders["MIL"] {
		t.Fatalf("unexpected leaders %v", leaders)
	}
	if Compare(bos, mil, leaders) >= 0 {
		t.Fatalf("expected BOS ahead of MIL")
	}
}

func TestCompareDivisionThenConferencePct(t *testing.T) {
	a := record("AAA", "Atlantic", 40, 30)
	b := record("BBB", "Atlantic", 40, 30)
	a.Div = WinLoss{8, 8}
	b.Div = WinLoss{10, 6}
	a.Conf = WinLoss{30, 10}
	if Compare(a, b, nil) <= 0 {
		t.Fatalf("expected division pct to decide in favour of BBB")
	}

	c := record("CCC", "Central", 40, 30)
	c.Conf = WinLoss{20, 20}
	if Compare(a, c, nil) >= 0 {
		t.Fatalf("expected conference pct to decide in favour of AAA")
	}
}

func TestCompareStabilizers(t *testing.T) {
	a := record("AAA", "Atlantic", 0, 0)
	b := record("BBB", "Central", 0, 0)
	if Compare(a, b, nil) >= 0 || Compare(b, a, nil) <= 0 {
		t.Fatalf("expected tricode to break a full tie")
	}
	if Compare(a, a, nil) != 0 {
		t.Fatalf("a record must compare equal to itself")
	}

	c := record("CCC", "Central", 10, 10)
	d := record("DDD", "Southeast", 10, 10)
	d.PointsFor = 10
	if Compare(d, c, nil) >= 0 {
		t.Fatalf("expected point differential to favour DDD")
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	records := Aggregate(randomLedger(11, 300), teams.Default())
	list := make([]Record, 0, len(records))
	for _, rec := range records {
		list = append(list, rec)
	}
	leaders := DivisionLeaders(list)
	for _, a := range list {
		for _, b := range list {
			ab, ba := Compare(a, b, leaders), Compare(b, a, leaders)
			if sign(ab) != -sign(ba) {
				t.Fatalf("%s vs %s not antisymmetric: %d / %d", a.Tricode, b.Tricode, ab, ba)
			}
			if a.Tricode != b.Tricode && ab == 0 {
				t.Fatalf("%s and %s compare equal", a.Tricode, b.Tricode)
			}
		}
	}
}

func TestDivisionLeadersIgnoresHeadToHead(t *testing.T) {
	a := record("AAA", "Atlantic", 40, 30)
	b := record("BBB", "Atlantic", 40, 30)
	b.HeadToHead["AAA"] = WinLoss{4, 0}
	a.HeadToHead["BBB"] = WinLoss{0, 4}
	a.PointsFor = 20

	leaders := DivisionLeaders([]Record{a, b})
	if !leaders["AAA"] || leaders["BBB"] {
		t.Fatalf("expected AAA to lead on point differential, got %v", leaders)
	}
}
