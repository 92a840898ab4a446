package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/bookmark"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/domain/dashboard"
	"github.com/gogogadgetscott/AnchorMarks-sub000/internal/infrastructure/cache"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

var cacheKey = cache.GenerateCacheKey("tags", "analytics", "")

type Service interface {
	GetAnalytics(ctx context.Context) (*TagAnalytics, error)
	InvalidateCache(ctx context.Context)
}

type service struct {
	bookmarks bookmark.Service
	redis     *cache.RedisClient
	logger    *zap.Logger
}

func NewService(bookmarks bookmark.Service, redis *cache.RedisClient, logger *zap.Logger) Service {
	return &service{bookmarks: bookmarks, redis: redis, logger: logger}
}

// GetAnalytics returns the tag aggregates, computing them from the
// bookmark table on a cache miss. The cached payload is shared by
// every tag-analytics widget in a render pass; per-widget settings are
// applied with TopTags/SortPairs without refetching.
func (s *service) GetAnalytics(ctx context.Context) (*TagAnalytics, error) {
	var result TagAnalytics
	err := s.redis.CacheResponse(ctx, cacheKey, cacheTTL, &result, func() (interface{}, error) {
		all, _, err := s.bookmarks.ListBookmarks(ctx, bookmark.BookmarkFilter{})
		if err != nil {
			return nil, err
		}
		return Compute(all), nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// InvalidateCache drops the cached aggregates. Driven by the dashboard
// event channel whenever a bookmark mutation lands.
func (s *service) InvalidateCache(ctx context.Context) {
	if err := s.redis.Delete(ctx, cacheKey); err != nil {
		s.logger.Error("Failed to invalidate tag analytics cache", zap.Error(err))
	}
}

// Compute aggregates tag statistics and pairwise co-occurrence counts
// over the bookmark collection. Pure function; exact, trimmed tag
// matching per the comma-separated tag convention.
func Compute(bookmarks []bookmark.Bookmark) *TagAnalytics {
	stats := make(map[string]*TagStat)
	pairs := make(map[[2]string]int)

	for i := range bookmarks {
		tags := bookmarks[i].TagList()

		seen := make(map[string]bool, len(tags))
		var unique []string
		for _, t := range tags {
			if seen[t] {
				continue
			}
			seen[t] = true
			unique = append(unique, t)

			st := stats[t]
			if st == nil {
				st = &TagStat{Name: t}
				stats[t] = st
			}
			st.Count++
			st.ClickCountSum += bookmarks[i].ClickCount
			if bookmarks[i].IsFavorite {
				st.FavoritesCount++
			}
		}

		for a := 0; a < len(unique); a++ {
			for b := a + 1; b < len(unique); b++ {
				x, y := unique[a], unique[b]
				if x > y {
					x, y = y, x
				}
				pairs[[2]string{x, y}]++
			}
		}
	}

	result := &TagAnalytics{}
	for _, st := range stats {
		result.Tags = append(result.Tags, *st)
	}
	sort.Slice(result.Tags, func(i, j int) bool {
		return result.Tags[i].Name < result.Tags[j].Name
	})

	for pair, count := range pairs {
		result.Cooccurrence = append(result.Cooccurrence, TagPair{
			TagNameA: pair[0],
			TagNameB: pair[1],
			Count:    count,
		})
	}
	sort.Slice(result.Cooccurrence, func(i, j int) bool {
		if result.Cooccurrence[i].TagNameA != result.Cooccurrence[j].TagNameA {
			return result.Cooccurrence[i].TagNameA < result.Cooccurrence[j].TagNameA
		}
		return result.Cooccurrence[i].TagNameB < result.Cooccurrence[j].TagNameB
	})

	return result
}

// TopTags derives the top-N tags by the widget's metric from the
// cached payload. Ties break alphabetically for a stable chart.
func TopTags(tags []TagStat, metric string, limit int) []TagStat {
	ranked := make([]TagStat, len(tags))
	copy(ranked, tags)

	value := func(t TagStat) int {
		switch metric {
		case dashboard.MetricClicks:
			return t.ClickCountSum
		case dashboard.MetricFavorites:
			return t.FavoritesCount
		default:
			return t.Count
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := value(ranked[i]), value(ranked[j])
		if vi != vj {
			return vi > vj
		}
		return ranked[i].Name < ranked[j].Name
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// SortPairs orders co-occurrence pairs by the widget's pair-sort mode
func SortPairs(pairs []TagPair, mode string) []TagPair {
	ordered := make([]TagPair, len(pairs))
	copy(ordered, pairs)

	switch mode {
	case dashboard.PairSortName:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].TagNameA != ordered[j].TagNameA {
				return ordered[i].TagNameA < ordered[j].TagNameA
			}
			return ordered[i].TagNameB < ordered[j].TagNameB
		})
	default:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Count != ordered[j].Count {
				return ordered[i].Count > ordered[j].Count
			}
			if ordered[i].TagNameA != ordered[j].TagNameA {
				return ordered[i].TagNameA < ordered[j].TagNameA
			}
			return ordered[i].TagNameB < ordered[j].TagNameB
		})
	}
	return ordered
}
