package services

import (
	"sort"

	"streamhub/models"
)

// TrendingStream is one ranked streamer with aggregated recent watch time
type TrendingStream struct {
	Streamer string `json:"streamer"`
	Views    int64  `json:"views"`
}

// ClipScore weights likes double against raw views
func ClipScore(clip models.Clip) int64 {
	return clip.Views + int64(len(clip.Likes))*2
}

// RankStreams sums per-streamer watch time across users active after cutoffMs and
// returns the top limit streamers by accumulated time. Streamer name ascending
// breaks ties.
func RankStreams(stats []models.UserWatchStats, cutoffMs int64, limit int) []TrendingStream {
	views := make(map[string]int64)
	for _, s := range stats {
		if s.LastActive <= cutoffMs {
			continue
		}
		for streamer, ms := range s.WatchTime {
			views[streamer] += ms
		}
	}

	trending := make([]TrendingStream, 0, len(views))
	for streamer, v := range views {
		trending = append(trending, TrendingStream{Streamer: streamer, Views: v})
	}

	sort.Slice(trending, func(i, j int) bool {
		if trending[i].Views != trending[j].Views {
			return trending[i].Views > trending[j].Views
		}
		return trending[i].Streamer < trending[j].Streamer
	})

	if limit > 0 && len(trending) > limit {
		trending = trending[:limit]
	}
	return trending
}
