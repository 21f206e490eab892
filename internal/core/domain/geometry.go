package domain

// Bounds is a geographic rectangle in degrees.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// BoundsOf computes the smallest rectangle containing every initiative.
// It returns false for an empty list. A single initiative yields a
// zero-size rectangle on its position.
func BoundsOf(initiatives []*Initiative) (Bounds, bool) {
	var b Bounds
	found := false
	for _, in := range initiatives {
		if in == nil {
			continue
		}
		if !found {
			b = Bounds{MinLat: in.Lat, MinLng: in.Lng, MaxLat: in.Lat, MaxLng: in.Lng}
			found = true
			continue
		}
		b = b.Extend(in.Lat, in.Lng)
	}
	return b, found
}

// Extend returns the bounds grown to include the given point.
func (b Bounds) Extend(lat, lng float64) Bounds {
	b.MinLat = min(b.MinLat, lat)
	b.MaxLat = max(b.MaxLat, lat)
	b.MinLng = min(b.MinLng, lng)
	b.MaxLng = max(b.MaxLng, lng)
	return b
}

// Contains reports whether the point lies inside the bounds (edges included).
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() (lat, lng float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLng + b.MaxLng) / 2
}

// IsPoint reports whether the bounds have zero size.
func (b Bounds) IsPoint() bool {
	return b.MinLat == b.MaxLat && b.MinLng == b.MaxLng
}

// Point is a position in screen units.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Padding insets the visible map area when fitting bounds.
type Padding struct {
	TopLeft     Point `json:"top_left"`
	BottomRight Point `json:"bottom_right"`
}

// SidebarPadding returns the padding that keeps a fitted selection clear of
// the sidebar: a left inset of the sidebar width and a top inset of half the
// viewport height.
func SidebarPadding(sidebarWidth, viewportHeight int) Padding {
	return Padding{
		TopLeft: Point{X: max(sidebarWidth, 0), Y: max(viewportHeight, 0) / 2},
	}
}

// FitBounds asks the map to zoom and pan so that Bounds is visible.
type FitBounds struct {
	Bounds  Bounds  `json:"bounds"`
	Padding Padding `json:"padding"`
}
