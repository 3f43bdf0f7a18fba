package services

import "testing"

func TestParseMetricDefaultsToWatchTime(t *testing.T) {
	m, err := ParseMetric("")
	if err != nil || m != MetricWatchTime {
		t.Errorf("Empty metric should default to watchTime, got %q err %v", m, err)
	}

	if _, err := ParseMetric("karma"); err == nil {
		t.Errorf("Expected error for unknown metric")
	}
}

func TestParsePeriodDefaultsToAllTime(t *testing.T) {
	p, err := ParsePeriod("")
	if err != nil || p != PeriodAllTime {
		t.Errorf("Empty period should default to allTime, got %q err %v", p, err)
	}

	if _, err := ParsePeriod("yearly"); err == nil {
		t.Errorf("Expected error for unknown period")
	}
}

func TestPeriodWindows(t *testing.T) {
	cases := []struct {
		period Period
		want   int64
	}{
		{PeriodDaily, DayMs},
		{PeriodWeekly, 7 * DayMs},
		{PeriodMonthly, 30 * DayMs},
		{PeriodAllTime, 0},
	}
	for _, c := range cases {
		if got := c.period.WindowMs(); got != c.want {
			t.Errorf("WindowMs(%s) = %d, want %d", c.period, got, c.want)
		}
	}
}

func TestRankSnapshotSortsAndLimits(t *testing.T) {
	entries := []RankSource{
		{UserID: "a", Value: 300},
		{UserID: "b", Value: 900},
		{UserID: "c", Value: 100},
	}

	ranked := RankSnapshot(entries, 0, 0, 2)
	if len(ranked) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(ranked))
	}
	if ranked[0].Value != 900 || ranked[1].Value != 300 {
		t.Errorf("Expected values [900 300], got [%d %d]", ranked[0].Value, ranked[1].Value)
	}
}

func TestRankSnapshotTieBreaksByUserID(t *testing.T) {
	entries := []RankSource{
		{UserID: "zed", Value: 500},
		{UserID: "amy", Value: 500},
		{UserID: "mia", Value: 500},
	}

	ranked := RankSnapshot(entries, 0, 0, 0)
	order := []string{ranked[0].UserID, ranked[1].UserID, ranked[2].UserID}
	want := []string{"amy", "mia", "zed"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Tie-break order %v, want %v", order, want)
			break
		}
	}
}

func TestRankSnapshotFiltersByWindow(t *testing.T) {
	now := int64(1_000_000_000_000)
	entries := []RankSource{
		{UserID: "fresh", Value: 100, LastActive: now - DayMs/2},
		{UserID: "stale", Value: 900, LastActive: now - 2*DayMs},
		{UserID: "edge", Value: 500, LastActive: now - DayMs},
	}

	ranked := RankSnapshot(entries, DayMs, now, 0)
	if len(ranked) != 1 {
		t.Fatalf("Expected 1 entry inside the daily window, got %d", len(ranked))
	}
	if ranked[0].UserID != "fresh" {
		t.Errorf("Expected fresh to survive the window filter, got %q", ranked[0].UserID)
	}
}

func TestRankSnapshotAllTimeIgnoresActivity(t *testing.T) {
	entries := []RankSource{
		{UserID: "ancient", Value: 10, LastActive: 0},
		{UserID: "recent", Value: 5, LastActive: 999},
	}

	ranked := RankSnapshot(entries, 0, 1000, 0)
	if len(ranked) != 2 {
		t.Errorf("allTime must not drop inactive entries, got %d of 2", len(ranked))
	}
}

func TestRankSnapshotZeroLimitKeepsAll(t *testing.T) {
	entries := []RankSource{{UserID: "a", Value: 1}, {UserID: "b", Value: 2}}
	if got := len(RankSnapshot(entries, 0, 0, 0)); got != 2 {
		t.Errorf("Limit 0 should keep all entries, got %d", got)
	}
}
