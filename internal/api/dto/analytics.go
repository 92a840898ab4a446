package dto

// TagStatResponse represents aggregate statistics for one tag
type TagStatResponse struct {
	Name           string `json:"name"`
	Count          int    `json:"count"`
	ClickCountSum  int    `json:"click_count_sum"`
	FavoritesCount int    `json:"favorites_count"`
}

// TagPairResponse represents a tag co-occurrence pair. Names are
// ordered so (a, b) and (b, a) collapse into one entry.
type TagPairResponse struct {
	TagNameA string `json:"tag_name_a"`
	TagNameB string `json:"tag_name_b"`
	Count    int    `json:"count"`
}

// TagAnalyticsResponse represents the full tag analytics payload
type TagAnalyticsResponse struct {
	Tags         []TagStatResponse `json:"tags"`
	Cooccurrence []TagPairResponse `json:"cooccurrence"`
}
