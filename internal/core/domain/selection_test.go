package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInitiative(id string, lat, lng float64) *Initiative {
	return &Initiative{ID: id, Name: "Initiative " + id, Lat: lat, Lng: lng, Geolocated: true}
}

func TestNewSelection_IsPlain(t *testing.T) {
	item := NewSelection([]*Initiative{testInitiative("a", 1, 2)})

	assert.Equal(t, SelectionPlain, item.Kind())
	assert.False(t, item.IsSearchResults())
	query, ok := item.Query()
	assert.False(t, ok)
	assert.Empty(t, query)
	assert.Equal(t, 1, item.Len())
}

func TestNewSearchResults_CarriesQuery(t *testing.T) {
	item := NewSearchResults([]*Initiative{testInitiative("a", 1, 2)}, "bakery")

	assert.True(t, item.IsSearchResults())
	query, ok := item.Query()
	require.True(t, ok)
	assert.Equal(t, "bakery", query)
}

func TestStackItem_EmptySearchResultsKeepQuery(t *testing.T) {
	item := NewSearchResults(nil, "nothing")

	assert.True(t, item.IsEmpty())
	query, ok := item.Query()
	assert.True(t, ok)
	assert.Equal(t, "nothing", query)
}

func TestStackItem_InitiativesIsACopy(t *testing.T) {
	a := testInitiative("a", 1, 2)
	source := []*Initiative{a}
	item := NewSelection(source)

	source[0] = testInitiative("b", 3, 4)
	got := item.Initiatives()
	got[0] = nil

	assert.Equal(t, []string{"a"}, IDs(item.Initiatives()))
}

func TestStackItem_Toggled(t *testing.T) {
	a := testInitiative("a", 1, 2)
	b := testInitiative("b", 3, 4)

	empty := NewSelection(nil)
	withA := empty.Toggled(a)
	assert.Equal(t, []string{"a"}, IDs(withA.Initiatives()))

	withAB := withA.Toggled(b)
	assert.Equal(t, []string{"a", "b"}, IDs(withAB.Initiatives()))

	withB := withAB.Toggled(a)
	assert.Equal(t, []string{"b"}, IDs(withB.Initiatives()))

	assert.True(t, withB.Toggled(b).IsEmpty())
	assert.Equal(t, []string{"a", "b"}, IDs(withAB.Initiatives()), "original must not change")
}

func TestStackItem_ToggledMatchesByID(t *testing.T) {
	item := NewSelection([]*Initiative{testInitiative("a", 1, 2)})

	toggled := item.Toggled(&Initiative{ID: "a"})

	assert.True(t, toggled.IsEmpty())
}

func TestStackItem_ToggledFromSearchIsPlain(t *testing.T) {
	item := NewSearchResults([]*Initiative{testInitiative("a", 1, 2)}, "q")

	toggled := item.Toggled(testInitiative("b", 0, 0))

	assert.Equal(t, SelectionPlain, toggled.Kind())
}

func TestSelectionKind_String(t *testing.T) {
	assert.Equal(t, "selection", SelectionPlain.String())
	assert.Equal(t, "search", SelectionSearch.String())
	assert.Equal(t, "unknown", SelectionKind(9).String())
}
