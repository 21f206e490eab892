package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/seamap/internal/core/domain"
	"github.com/custodia-labs/seamap/internal/core/ports/driven"
	"github.com/custodia-labs/seamap/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.InitiativeSource = (*Source)(nil)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing required column")

type column int

const (
	colID column = iota
	colName
	colHomepage
	colPostcode
	colLat
	colLng
	numColumns
)

// headerAliases maps lowercased header names to columns.
var headerAliases = map[string]column{
	"cuk organisation id": colID,
	"id":                  colID,
	"registered name":     colName,
	"name":                colName,
	"website":             colHomepage,
	"homepage":            colHomepage,
	"postcode":            colPostcode,
	"latitude":            colLat,
	"lat":                 colLat,
	"longitude":           colLng,
	"lng":                 colLng,
}

// Result summarises a parse.
type Result struct {
	Initiatives []*domain.Initiative
	Skipped     int
	Errors      []error
}

// Source reads initiatives from a CSV file on disk.
type Source struct {
	path string
}

// NewSource creates a source for the CSV file at path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the file path.
func (s *Source) Path() string {
	return s.path
}

// ReadAll parses the whole file. Rows that cannot be used are skipped and
// logged; only an unreadable file or header is an error.
func (s *Source) ReadAll(ctx context.Context) ([]*domain.Initiative, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	res, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	for _, rowErr := range res.Errors {
		logger.Warn("csv %s: %v", s.path, rowErr)
	}
	if res.Skipped > 0 {
		logger.Warn("csv %s: skipped %d rows", s.path, res.Skipped)
	}
	return res.Initiatives, nil
}

// Parse reads initiatives from r. The first record must be the header.
func Parse(ctx context.Context, r io.Reader) (Result, error) {
	res := Result{Initiatives: make([]*domain.Initiative, 0)}
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1

	header, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return res, fmt.Errorf("empty file: %w", ErrMissingColumn)
	}
	if err != nil {
		return res, fmt.Errorf("reading header: %w", err)
	}
	index, err := indexHeader(header)
	if err != nil {
		return res, err
	}

	seen := make(map[string]bool)
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		line++
		rec, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w", line, err))
			continue
		}

		in := parseRecord(rec, index)
		if in.ID == "" || in.Name == "" {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("line %d: %w: id and name are required", line, domain.ErrInvalidInput))
			continue
		}
		if seen[in.ID] {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Errorf("line %d: duplicate id %q", line, in.ID))
			continue
		}
		seen[in.ID] = true
		res.Initiatives = append(res.Initiatives, in)
	}
	return res, nil
}

func indexHeader(header []string) ([numColumns]int, error) {
	var index [numColumns]int
	for i := range index {
		index[i] = -1
	}
	for pos, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if col, ok := headerAliases[key]; ok && index[col] < 0 {
			index[col] = pos
		}
	}
	if index[colID] < 0 {
		return index, fmt.Errorf("%w: id", ErrMissingColumn)
	}
	if index[colName] < 0 {
		return index, fmt.Errorf("%w: name", ErrMissingColumn)
	}
	return index, nil
}

func parseRecord(rec []string, index [numColumns]int) *domain.Initiative {
	field := func(c column) string {
		pos := index[c]
		if pos < 0 || pos >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[pos])
	}

	in := &domain.Initiative{
		ID:       field(colID),
		Name:     field(colName),
		Homepage: NormaliseHomepage(field(colHomepage)),
		Postcode: field(colPostcode),
	}
	lat, latErr := strconv.ParseFloat(field(colLat), 64)
	lng, lngErr := strconv.ParseFloat(field(colLng), 64)
	if latErr == nil && lngErr == nil {
		in.Lat, in.Lng, in.Geolocated = lat, lng, true
		// Out-of-range coordinates are treated as missing.
		if !in.HasGeoLocation() {
			in.Lat, in.Lng, in.Geolocated = 0, 0, false
		}
	}
	return in
}

// NormaliseHomepage prefixes scheme-less URLs with http://.
func NormaliseHomepage(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return url
	}
	return "http://" + url
}
