package dto

// AddWidgetRequest represents the request to place a new widget
type AddWidgetRequest struct {
	Type string  `json:"type" binding:"required"`
	ID   string  `json:"id" binding:"required"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// AnalyticsSettingsPayload is the per-widget analytics configuration
type AnalyticsSettingsPayload struct {
	Metric   string   `json:"metric"`
	Limit    int      `json:"limit"`
	PairSort string   `json:"pair_sort"`
	Colors   []string `json:"colors"`
}

// UpdateWidgetRequest represents a partial widget update; omitted
// fields are left unchanged
type UpdateWidgetRequest struct {
	X        *float64                  `json:"x,omitempty"`
	Y        *float64                  `json:"y,omitempty"`
	W        *float64                  `json:"w,omitempty"`
	H        *float64                  `json:"h,omitempty"`
	Sort     *string                   `json:"sort,omitempty"`
	Color    *string                   `json:"color,omitempty"`
	Settings *AnalyticsSettingsPayload `json:"settings,omitempty"`
}

// GestureRequest is one pointer sample for the drag/resize state machine
type GestureRequest struct {
	Phase       string  `json:"phase" binding:"required"`
	Kind        string  `json:"kind"`
	WidgetIndex int     `json:"widget_index"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

// WidgetResponse represents a placed widget in API responses
type WidgetResponse struct {
	Index    int                       `json:"index"`
	ID       string                    `json:"id"`
	Type     string                    `json:"type"`
	X        float64                   `json:"x"`
	Y        float64                   `json:"y"`
	W        float64                   `json:"w"`
	H        float64                   `json:"h"`
	Sort     string                    `json:"sort,omitempty"`
	Color    string                    `json:"color,omitempty"`
	Settings *AnalyticsSettingsPayload `json:"settings,omitempty"`
}

// GestureResponse reports the state machine after a pointer sample.
// Widget is set when the sample committed a geometry change.
type GestureResponse struct {
	State  string          `json:"state"`
	Widget *WidgetResponse `json:"widget,omitempty"`
}

// WidgetContentResponse is the resolved content of one widget
type WidgetContentResponse struct {
	Name  string             `json:"name"`
	Color string             `json:"color,omitempty"`
	Count string             `json:"count"`
	Items []BookmarkResponse `json:"items"`
}

// WidgetItemsResponse is one lazy-load batch for a widget
type WidgetItemsResponse struct {
	Items []BookmarkResponse `json:"items"`
	Done  bool               `json:"done"`
}

// OpenAllResponse lists the URLs behind a widget's open-all command
type OpenAllResponse struct {
	URLs []string `json:"urls"`
}
