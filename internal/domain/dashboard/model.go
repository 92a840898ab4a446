package dashboard

// WidgetType discriminates what a dashboard panel is bound to
type WidgetType string

const (
	WidgetTypeFolder       WidgetType = "folder"
	WidgetTypeTag          WidgetType = "tag"
	WidgetTypeTagAnalytics WidgetType = "tag-analytics"
)

func (t WidgetType) IsValid() bool {
	switch t {
	case WidgetTypeFolder, WidgetTypeTag, WidgetTypeTagAnalytics:
		return true
	}
	return false
}

// Widget sort modes
const (
	SortAZ = "a-z"
	SortZA = "z-a"
)

// Canvas geometry constants
const (
	GridSize            = 20.0
	MinWidgetWidth      = 150.0
	MinWidgetHeight     = 100.0
	DefaultWidgetWidth  = 320.0
	DefaultWidgetHeight = 400.0
	AutoPackColumns     = 3
	AutoPackGap         = 20.0
)

// LazyBatchSize is how many resolved items a widget reveals per batch
const LazyBatchSize = 20

// AnalyticsSettings is the per-widget configuration bag. Only
// tag-analytics widgets carry one; the store strips it from any other
// widget type.
type AnalyticsSettings struct {
	Metric   string   `json:"metric"`    // "count" | "clicks" | "favorites"
	Limit    int      `json:"limit"`     // top-N tags shown
	PairSort string   `json:"pair_sort"` // "count" | "name"
	Colors   []string `json:"colors"`
}

// Analytics metrics and pair sort modes
const (
	MetricCount     = "count"
	MetricClicks    = "clicks"
	MetricFavorites = "favorites"

	PairSortCount = "count"
	PairSortName  = "name"
)

// DefaultPalette is the fixed swatch set offered by the widget color picker
var DefaultPalette = []string{
	"#4a9eff", "#ff6b6b", "#51cf66", "#fcc419",
	"#cc5de8", "#22b8cf", "#ff922b", "#868e96",
}

// DefaultAnalyticsSettings returns the settings a fresh tag-analytics
// widget starts with.
func DefaultAnalyticsSettings() *AnalyticsSettings {
	colors := make([]string, len(DefaultPalette))
	copy(colors, DefaultPalette)
	return &AnalyticsSettings{
		Metric:   MetricCount,
		Limit:    20,
		PairSort: PairSortCount,
		Colors:   colors,
	}
}

// Widget is one placed dashboard panel. ID is a folder id, a tag name,
// or the literal "tag-analytics" depending on Type; (Type, ID) is the
// uniqueness key. Geometry is in canvas pixels and may go negative
// during a gesture.
type Widget struct {
	ID       string             `json:"id"`
	Type     WidgetType         `json:"type"`
	X        float64            `json:"x"`
	Y        float64            `json:"y"`
	W        float64            `json:"w"`
	H        float64            `json:"h"`
	Sort     string             `json:"sort,omitempty"`
	Color    string             `json:"color,omitempty"`
	Settings *AnalyticsSettings `json:"settings,omitempty"`
}

// Key returns the store uniqueness key
func (w Widget) Key() string {
	return string(w.Type) + ":" + w.ID
}

// WidgetPatch is a partial update of a widget; nil fields are left as-is
type WidgetPatch struct {
	X        *float64           `json:"x,omitempty"`
	Y        *float64           `json:"y,omitempty"`
	W        *float64           `json:"w,omitempty"`
	H        *float64           `json:"h,omitempty"`
	Sort     *string            `json:"sort,omitempty"`
	Color    *string            `json:"color,omitempty"`
	Settings *AnalyticsSettings `json:"settings,omitempty"`
}
