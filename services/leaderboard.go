package services

import (
	"fmt"
	"sort"
)

// Metric selects which stat a leaderboard ranks
type Metric string

const (
	MetricWatchTime Metric = "watchTime"
	MetricPoints    Metric = "points"
	MetricFollowers Metric = "followers"
	MetricMessages  Metric = "messages"
)

// Period selects the time window for windowed metrics
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodAllTime Period = "allTime"
)

// ParseMetric validates a leaderboard type query value, defaulting to watchTime
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "":
		return MetricWatchTime, nil
	case string(MetricWatchTime), string(MetricPoints), string(MetricFollowers), string(MetricMessages):
		return Metric(s), nil
	}
	return "", fmt.Errorf("invalid leaderboard type: %q", s)
}

// ParsePeriod validates a period query value, defaulting to allTime
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "":
		return PeriodAllTime, nil
	case string(PeriodDaily), string(PeriodWeekly), string(PeriodMonthly), string(PeriodAllTime):
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid leaderboard period: %q", s)
}

// WindowMs returns the period's lookback in milliseconds, 0 for allTime
func (p Period) WindowMs() int64 {
	switch p {
	case PeriodDaily:
		return DayMs
	case PeriodWeekly:
		return 7 * DayMs
	case PeriodMonthly:
		return 30 * DayMs
	}
	return 0
}

// RankSource is one candidate entry before enrichment. LastActive only matters for
// windowed metrics.
type RankSource struct {
	UserID     string
	Value      int64
	LastActive int64
}

// RankSnapshot filters by activity window (when windowMs > 0), sorts by value
// descending with userId ascending as the tie-break, and keeps the top limit
// entries. The tie-break makes ranking reproducible under equal values.
func RankSnapshot(entries []RankSource, windowMs, nowMs int64, limit int) []RankSource {
	ranked := make([]RankSource, 0, len(entries))
	for _, e := range entries {
		if windowMs > 0 && nowMs-e.LastActive >= windowMs {
			continue
		}
		ranked = append(ranked, e)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
