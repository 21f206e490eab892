package domain

// SearchOptions configures a dataset search.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero means unlimited.
	Limit int
}
