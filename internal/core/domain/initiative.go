package domain

import "math"

// Initiative is a point of interest shown on the map.
// Initiatives are loaded once by the dataset and never mutated afterwards.
type Initiative struct {
	// ID is the stable unique identifier.
	ID string

	// Name is the display name.
	Name string

	// Lat is the latitude in degrees.
	Lat float64

	// Lng is the longitude in degrees.
	Lng float64

	// Homepage is the initiative's website, if any.
	Homepage string

	// Postcode is the postal code, if known.
	Postcode string

	// Geolocated is true when Lat/Lng were resolved from the source data.
	Geolocated bool
}

// HasGeoLocation reports whether the initiative can be placed on the map.
func (i *Initiative) HasGeoLocation() bool {
	if i == nil || !i.Geolocated {
		return false
	}
	if math.IsNaN(i.Lat) || math.IsNaN(i.Lng) {
		return false
	}
	return i.Lat >= -90 && i.Lat <= 90 && i.Lng >= -180 && i.Lng <= 180
}

// Label returns the name, falling back to the ID.
func (i *Initiative) Label() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ID
}

// IndexOf returns the position of the initiative with the given ID, or -1.
func IndexOf(initiatives []*Initiative, id string) int {
	for idx, in := range initiatives {
		if in != nil && in.ID == id {
			return idx
		}
	}
	return -1
}

// IDs returns the identifiers of the given initiatives in order.
func IDs(initiatives []*Initiative) []string {
	ids := make([]string, 0, len(initiatives))
	for _, in := range initiatives {
		if in != nil {
			ids = append(ids, in.ID)
		}
	}
	return ids
}
