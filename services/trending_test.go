package services

import (
	"testing"

	"streamhub/models"
)

func TestClipScoreWeightsLikesDouble(t *testing.T) {
	clip := models.Clip{Views: 100, Likes: []string{"u1", "u2", "u3"}}
	if got := ClipScore(clip); got != 106 {
		t.Errorf("ClipScore = %d, want 106", got)
	}

	if got := ClipScore(models.Clip{}); got != 0 {
		t.Errorf("Empty clip should score 0, got %d", got)
	}
}

func TestRankStreamsAggregatesAcrossUsers(t *testing.T) {
	stats := []models.UserWatchStats{
		{UserID: "u1", LastActive: 1000, WatchTime: map[string]int64{"ninja": 500, "pokimane": 300}},
		{UserID: "u2", LastActive: 1000, WatchTime: map[string]int64{"ninja": 700}},
	}

	trending := RankStreams(stats, 0, 10)
	if len(trending) != 2 {
		t.Fatalf("Expected 2 streamers, got %d", len(trending))
	}
	if trending[0].Streamer != "ninja" || trending[0].Views != 1200 {
		t.Errorf("Expected ninja with 1200, got %s with %d", trending[0].Streamer, trending[0].Views)
	}
	if trending[1].Streamer != "pokimane" || trending[1].Views != 300 {
		t.Errorf("Expected pokimane with 300, got %s with %d", trending[1].Streamer, trending[1].Views)
	}
}

func TestRankStreamsExcludesInactiveUsers(t *testing.T) {
	stats := []models.UserWatchStats{
		{UserID: "active", LastActive: 2000, WatchTime: map[string]int64{"shroud": 100}},
		{UserID: "stale", LastActive: 500, WatchTime: map[string]int64{"shroud": 9999}},
		{UserID: "edge", LastActive: 1000, WatchTime: map[string]int64{"shroud": 9999}},
	}

	// Cutoff is exclusive: LastActive must be strictly after it
	trending := RankStreams(stats, 1000, 10)
	if len(trending) != 1 || trending[0].Views != 100 {
		t.Fatalf("Expected only the active user's 100ms to count, got %+v", trending)
	}
}

func TestRankStreamsTieBreak(t *testing.T) {
	stats := []models.UserWatchStats{
		{UserID: "u1", LastActive: 1, WatchTime: map[string]int64{"zeta": 50, "alpha": 50}},
	}

	trending := RankStreams(stats, 0, 10)
	if trending[0].Streamer != "alpha" || trending[1].Streamer != "zeta" {
		t.Errorf("Equal views should order by streamer name, got %+v", trending)
	}
}

func TestRankStreamsLimit(t *testing.T) {
	stats := []models.UserWatchStats{
		{UserID: "u1", LastActive: 1, WatchTime: map[string]int64{"a": 3, "b": 2, "c": 1}},
	}

	trending := RankStreams(stats, 0, 2)
	if len(trending) != 2 {
		t.Errorf("Expected trimmed list of 2, got %d", len(trending))
	}
}
