// pkg/profile/entry_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test the entry union's variable/separator/display resolution and
// the catalog-driven entry constructor

package profile_test

import (
	"encoding/json"
	"testing"

	"benv/pkg/profile"
	"benv/pkg/vars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryAccessors(t *testing.T) {
	tests := []struct {
		name        string
		entry       profile.Entry
		wantVar     string
		wantSep     string
		wantDisplay string
		wantString  string
	}{
		{
			name:        "path_entry",
			entry:       profile.NewPathEntry("/opt/gcc-13/bin", "gcc", "13.2"),
			wantVar:     "PATH",
			wantSep:     ":",
			wantDisplay: "/opt/gcc-13/bin",
			wantString:  "PATH: /opt/gcc-13/bin (gcc 13.2)",
		},
		{
			name:        "builtin_list_entry",
			entry:       profile.NewBuiltinEntry("CFLAGS", "-O2"),
			wantVar:     "CFLAGS",
			wantSep:     " ",
			wantDisplay: "-O2",
			wantString:  "CFLAGS: -O2",
		},
		{
			name:        "builtin_scalar_entry",
			entry:       profile.NewBuiltinEntry("CC", "gcc-13"),
			wantVar:     "CC",
			wantSep:     "",
			wantDisplay: "gcc-13",
			wantString:  "CC: gcc-13",
		},
		{
			name:        "custom_scalar_entry",
			entry:       profile.NewCustomScalar("GOBIN", "/home/u/go/bin"),
			wantVar:     "GOBIN",
			wantSep:     "",
			wantDisplay: "/home/u/go/bin",
			wantString:  "GOBIN: /home/u/go/bin",
		},
		{
			name:        "custom_part_entry",
			entry:       profile.NewCustomPart("GOFLAGS", "-trimpath", " "),
			wantVar:     "GOFLAGS",
			wantSep:     " ",
			wantDisplay: "-trimpath",
			wantString:  "GOFLAGS: -trimpath",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantVar, tt.entry.VariableName())
			assert.Equal(t, tt.wantSep, tt.entry.Separator())
			assert.Equal(t, tt.wantDisplay, tt.entry.DisplayValue())
			assert.Equal(t, tt.wantString, tt.entry.String())
		})
	}
}

func TestNewPartEntryDispatch(t *testing.T) {
	catalog := vars.NewCatalog()
	catalog.Refresh([]vars.CustomDef{
		{Name: "GOBIN", Kind: vars.KindScalar},
		{Name: "GOFLAGS", Kind: vars.KindList, Separator: " "},
	})

	tests := []struct {
		name     string
		variable string
		value    string
		wantKind profile.EntryKind
		wantSep  string
	}{
		{"path_gets_structured_entry", "PATH", "/usr/local/bin", profile.EntryPath, ":"},
		{"builtin_gets_builtin_entry", "LDFLAGS", "-L/opt/lib", profile.EntryBuiltin, " "},
		{"custom_scalar_def", "GOBIN", "/go/bin", profile.EntryCustomScalar, ""},
		{"custom_list_def_carries_separator", "GOFLAGS", "-race", profile.EntryCustomPart, " "},
		{"unknown_falls_back_to_colon_part", "PKG_CONFIG_PATH", "/opt/pc", profile.EntryCustomPart, ":"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := profile.NewPartEntry(catalog, tt.variable, tt.value)
			assert.Equal(t, tt.wantKind, e.Kind)
			assert.Equal(t, tt.variable, e.VariableName())
			assert.Equal(t, tt.wantSep, e.Separator())
			assert.Equal(t, tt.value, e.DisplayValue())
		})
	}
}

func TestCustomPartKeepsRecordedSeparator(t *testing.T) {
	// The separator is frozen at creation time; later definition edits must
	// not change how historical parts join.
	e := profile.NewCustomPart("GOFLAGS", "-race", ";")
	assert.Equal(t, ";", e.Separator())
}

func TestEntryJSONRoundTrip(t *testing.T) {
	entries := []profile.Entry{
		profile.NewPathEntry("/opt/bin", "clang", "17"),
		profile.NewBuiltinEntry("CFLAGS", "-g"),
		profile.NewCustomScalar("GOBIN", "/go/bin"),
		profile.NewCustomPart("GOFLAGS", "-race", " "),
	}

	data, err := json.Marshal(entries)
	require.NoError(t, err)

	var back []profile.Entry
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, entries, back)
}

func TestItemEntry(t *testing.T) {
	it := profile.Item{Path: "/opt/gcc/bin", Program: "gcc", Version: "14.1", Tags: []string{"toolchain", "c"}}

	e := it.Entry()
	assert.Equal(t, profile.EntryPath, e.Kind)
	assert.Equal(t, "PATH: /opt/gcc/bin (gcc 14.1)", e.String())
	assert.Equal(t, "/opt/gcc/bin (gcc 14.1)", it.String())
	assert.Equal(t, "toolchain, c", it.TagLine())
}
