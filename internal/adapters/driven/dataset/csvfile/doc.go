// Package csvfile reads initiative datasets from CSV exports.
//
// The reader expects a header row and locates columns by name, so column
// order does not matter. Both the co-ops-uk open data headings and short
// lowercase names are recognised:
//
//	CUK Organisation ID | id
//	Registered Name     | name
//	Website             | homepage
//	Postcode            | postcode
//	Latitude            | lat
//	Longitude           | lng
//
// Only the id and name columns are required.
package csvfile
