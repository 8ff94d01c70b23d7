// pkg/tui/rows_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test the view row builders: first-seen variable ordering, live
// filters, list windowing, and cursor clamping

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benv/pkg/profile"
	"benv/pkg/vars"
)

func rowsFixture() profile.Profile {
	p := profile.New("work")
	p.Entries = []profile.Entry{
		profile.NewPathEntry("/opt/gcc/bin", "gcc", "13.2"),
		profile.NewBuiltinEntry("CFLAGS", "-O2"),
		profile.NewPathEntry("/opt/cmake/bin", "cmake", "3.28"),
		profile.NewBuiltinEntry("CC", "gcc-13"),
	}
	return p
}

func TestVarRowsFirstSeenOrder(t *testing.T) {
	rows := varRows(rowsFixture(), vars.NewCatalog(), "")

	require.Len(t, rows, 3)
	assert.Equal(t, "PATH", rows[0].Name)
	assert.Equal(t, "CFLAGS", rows[1].Name)
	assert.Equal(t, "CC", rows[2].Name)

	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, "/opt/gcc/bin:/opt/cmake/bin", rows[0].Joined)
	assert.Equal(t, ":", rows[0].Separator)
	assert.Equal(t, vars.KindList, rows[0].Kind)

	assert.Equal(t, " ", rows[1].Separator)
	assert.Equal(t, vars.KindScalar, rows[2].Kind)
}

func TestVarRowsFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		want   []string
	}{
		{"empty_matches_all", "", []string{"PATH", "CFLAGS", "CC"}},
		{"case_insensitive", "path", []string{"PATH"}},
		{"substring", "fla", []string{"CFLAGS"}},
		{"shared_fragment", "c", []string{"CFLAGS", "CC"}},
		{"no_match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := varRows(rowsFixture(), vars.NewCatalog(), tt.filter)
			var names []string
			for _, r := range rows {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestVarRowsUnknownVarDefaultsToList(t *testing.T) {
	p := profile.New("x")
	p.Entries = []profile.Entry{profile.NewCustomPart("GOFLAGS", "-mod=vendor", ":")}

	rows := varRows(p, vars.NewCatalog(), "")

	require.Len(t, rows, 1)
	assert.Equal(t, vars.KindList, rows[0].Kind)
}

func TestPartsOfKeepsStoredOrder(t *testing.T) {
	parts := partsOf(rowsFixture(), "PATH")

	require.Len(t, parts, 2)
	assert.Equal(t, "/opt/gcc/bin", parts[0].Path)
	assert.Equal(t, "/opt/cmake/bin", parts[1].Path)
}

func TestVisiblePartsMatchesRenderedForm(t *testing.T) {
	parts := partsOf(rowsFixture(), "PATH")

	// "cmake" appears only in the second entry's program label.
	assert.Equal(t, []int{1}, visibleParts(parts, "cmake"))
	// The rendered form starts with the variable name.
	assert.Equal(t, []int{0, 1}, visibleParts(parts, "PATH:"))
	assert.Nil(t, visibleParts(parts, "rustc"))
}

func TestVisibleProfiles(t *testing.T) {
	profiles := []profile.Profile{
		profile.New("default"),
		profile.New("work"),
		profile.New("workshop"),
	}

	assert.Equal(t, []int{0, 1, 2}, visibleProfiles(profiles, ""))
	assert.Equal(t, []int{1, 2}, visibleProfiles(profiles, "work"))
	assert.Equal(t, []int{0}, visibleProfiles(profiles, "DEF"))
}

func TestVisibleItemsByPathOrTag(t *testing.T) {
	items := []profile.Item{
		{Path: "/opt/go/bin", Program: "go", Tags: []string{"lang"}},
		{Path: "/opt/zig/bin", Program: "zig", Tags: []string{"lang", "beta"}},
		{Path: "/usr/local/bin"},
	}

	assert.Equal(t, []int{0, 1, 2}, visibleItems(items, ""))
	assert.Equal(t, []int{1}, visibleItems(items, "zig"))
	assert.Equal(t, []int{0, 1}, visibleItems(items, "lang"))
	assert.Equal(t, []int{1}, visibleItems(items, "beta"))
}

func TestDefRowsSortedAndFiltered(t *testing.T) {
	defs := []vars.CustomDef{
		{Name: "ZLIBS", Kind: vars.KindList, Separator: ":"},
		{Name: "GOBIN", Kind: vars.KindScalar},
		{Name: "GOFLAGS", Kind: vars.KindList, Separator: " "},
	}

	rows := defRows(defs, "")
	require.Len(t, rows, 3)
	assert.Equal(t, "GOBIN", rows[0].Name)
	assert.Equal(t, "GOFLAGS", rows[1].Name)
	assert.Equal(t, "ZLIBS", rows[2].Name)

	rows = defRows(defs, "go")
	require.Len(t, rows, 2)
	assert.Equal(t, "GOBIN", rows[0].Name)
}

func TestWindowBounds(t *testing.T) {
	tests := []struct {
		name               string
		cursor, total, vis int
		wantStart, wantEnd int
	}{
		{"fits_entirely", 0, 3, 10, 0, 3},
		{"cursor_centered", 5, 20, 7, 2, 9},
		{"clamped_at_top", 1, 20, 7, 0, 7},
		{"clamped_at_bottom", 19, 20, 7, 13, 20},
		{"degenerate_viewport", 0, 2, 0, 0, 1},
		{"empty_list", 0, 0, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := windowBounds(tt.cursor, tt.total, tt.vis)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(-3, 5))
	assert.Equal(t, 4, clampCursor(7, 5))
	assert.Equal(t, 2, clampCursor(2, 5))
	assert.Equal(t, 0, clampCursor(2, 0))
}

func TestMatchFilter(t *testing.T) {
	assert.True(t, matchFilter("anything", ""))
	assert.True(t, matchFilter("LD_LIBRARY_PATH", "library"))
	assert.False(t, matchFilter("PATH", "x"))
}
