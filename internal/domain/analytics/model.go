package analytics

// TagStat is the aggregate for a single tag across all bookmarks
type TagStat struct {
	Name           string `json:"name"`
	Count          int    `json:"count"`
	ClickCountSum  int    `json:"click_count_sum"`
	FavoritesCount int    `json:"favorites_count"`
}

// TagPair counts how often two tags appear on the same bookmark.
// TagNameA sorts before TagNameB so each pair appears once.
type TagPair struct {
	TagNameA string `json:"tag_name_a"`
	TagNameB string `json:"tag_name_b"`
	Count    int    `json:"count"`
}

// TagAnalytics is the payload of GET /api/analytics/tags, consumed by
// the tag-analytics dashboard widget.
type TagAnalytics struct {
	Tags         []TagStat `json:"tags"`
	Cooccurrence []TagPair `json:"cooccurrence"`
}
