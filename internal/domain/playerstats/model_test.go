package playerstats

import "testing"

func TestNormalizePosition(t *testing.T) {
	t.Parallel()

	tests := map[string]Position{"qb": PositionQB, " HB ": PositionRB, "FB": PositionRB, "pk": PositionK, "olb": PositionOLB}
	for raw, want := range tests {
		if got := NormalizePosition(raw); got != want {
			t.Fatalf("NormalizePosition(%q) = %s, want %s", raw, got, want)
		}
	}
	if !PositionCB.IsDefensive() || PositionWR.IsDefensive() {
		t.Fatalf("unexpected defensive classification")
	}
	if !PositionTE.IsFlexEligible() || PositionQB.IsFlexEligible() {
		t.Fatalf("unexpected flex classification")
	}
}

func TestParseScoringFormat(t *testing.T) {
	t.Parallel()

	if f, err := ParseScoringFormat("Half-PPR"); err != nil || f != FormatHalfPPR {
		t.Fatalf("expected half_ppr, got %s err=%v", f, err)
	}
	if f, err := ParseScoringFormat(""); err != nil || f != FormatStandard {
		t.Fatalf("expected standard default, got %s err=%v", f, err)
	}
	if _, err := ParseScoringFormat("superflex"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
	if got := Points(FormatHalfPPR, 10, 14); got != 12 {
		t.Fatalf("expected half ppr 12, got %v", got)
	}
}

func TestAverages_OnlyPriorWeeks(t *testing.T) {
	t.Parallel()

	lines := []StatLine{
		{PlayerID: "a", Week: 1, Points: 10},
		{PlayerID: "a", Week: 2, Points: 20},
		{PlayerID: "a", Week: 3, Points: 90},
		{PlayerID: "b", Week: 2, Points: 4},
	}
	got := Averages(lines, 3)
	if got["a"] != 15 || got["b"] != 4 {
		t.Fatalf("unexpected averages: %+v", got)
	}
	if len(Averages(lines, 1)) != 0 {
		t.Fatalf("expected no averages before week 1")
	}
}

func TestAttachColleges(t *testing.T) {
	t.Parallel()

	lines := []StatLine{{PlayerID: "a"}, {PlayerID: "b", College: "Alabama"}}
	roster := []RosterEntry{{PlayerID: "a", College: "Oklahoma"}, {PlayerID: "b", College: "Georgia"}}
	got := AttachColleges(lines, roster)
	if got[0].College != "Oklahoma" || got[1].College != "Alabama" {
		t.Fatalf("unexpected colleges: %+v", got)
	}
	if lines[0].College != "" {
		t.Fatalf("input slice must not be mutated")
	}
}
