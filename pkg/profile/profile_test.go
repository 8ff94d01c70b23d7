// pkg/profile/profile_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test profile entry-sequence operations, in particular the
// splice semantics of ReplaceVarParts

package profile_test

import (
	"testing"

	"benv/pkg/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namesOf(p profile.Profile) []string {
	out := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		out[i] = e.VariableName() + "=" + e.DisplayValue()
	}
	return out
}

func TestVariableNamesFirstSeenOrder(t *testing.T) {
	p := profile.New("work")
	p.Entries = []profile.Entry{
		profile.NewBuiltinEntry("CFLAGS", "-O2"),
		profile.NewPathEntry("/a", "", ""),
		profile.NewBuiltinEntry("CFLAGS", "-g"),
		profile.NewPathEntry("/b", "", ""),
		profile.NewBuiltinEntry("CC", "gcc"),
	}

	assert.Equal(t, []string{"CFLAGS", "PATH", "CC"}, p.VariableNames())
	assert.Equal(t, []int{1, 3}, p.PartsOf("PATH"))
	assert.Nil(t, p.PartsOf("LDFLAGS"))
}

func TestReplaceVarPartsSplicesAtFirstIndex(t *testing.T) {
	p := profile.New("work")
	p.Entries = []profile.Entry{
		profile.NewBuiltinEntry("CFLAGS", "-O2"),
		profile.NewPathEntry("/old1", "", ""),
		profile.NewBuiltinEntry("CC", "gcc"),
		profile.NewPathEntry("/old2", "", ""),
	}

	p.ReplaceVarParts("PATH", []profile.Entry{
		profile.NewPathEntry("/new1", "", ""),
		profile.NewPathEntry("/new2", "", ""),
		profile.NewPathEntry("/new3", "", ""),
	})

	// New parts take the position of the first old part; entries of other
	// variables keep their relative order.
	assert.Equal(t, []string{
		"CFLAGS=-O2",
		"PATH=/new1",
		"PATH=/new2",
		"PATH=/new3",
		"CC=gcc",
	}, namesOf(p))
}

func TestReplaceVarPartsAppendsWhenAbsent(t *testing.T) {
	p := profile.New("work")
	p.Entries = []profile.Entry{profile.NewBuiltinEntry("CC", "gcc")}

	p.ReplaceVarParts("LDFLAGS", []profile.Entry{profile.NewBuiltinEntry("LDFLAGS", "-L/opt")})

	assert.Equal(t, []string{"CC=gcc", "LDFLAGS=-L/opt"}, namesOf(p))
}

func TestReplaceVarPartsWithEmptyRemoves(t *testing.T) {
	p := profile.New("work")
	p.Entries = []profile.Entry{
		profile.NewPathEntry("/a", "", ""),
		profile.NewBuiltinEntry("CC", "gcc"),
	}

	p.ReplaceVarParts("PATH", nil)

	assert.Equal(t, []string{"CC=gcc"}, namesOf(p))
}

func TestMoveEntry(t *testing.T) {
	mk := func() profile.Profile {
		p := profile.New("m")
		p.Entries = []profile.Entry{
			profile.NewPathEntry("/a", "", ""),
			profile.NewPathEntry("/b", "", ""),
			profile.NewPathEntry("/c", "", ""),
		}
		return p
	}

	down := mk()
	down.MoveEntry(0, 2)
	assert.Equal(t, []string{"PATH=/b", "PATH=/c", "PATH=/a"}, namesOf(down))

	up := mk()
	up.MoveEntry(2, 0)
	assert.Equal(t, []string{"PATH=/c", "PATH=/a", "PATH=/b"}, namesOf(up))

	noop := mk()
	noop.MoveEntry(1, 1)
	noop.MoveEntry(-1, 2)
	noop.MoveEntry(0, 9)
	assert.Equal(t, namesOf(mk()), namesOf(noop))
}

func TestInsertAndRemoveEntry(t *testing.T) {
	p := profile.New("m")
	p.InsertEntry(0, profile.NewPathEntry("/a", "", ""))
	p.InsertEntry(99, profile.NewPathEntry("/c", "", ""))
	p.InsertEntry(1, profile.NewPathEntry("/b", "", ""))
	assert.Equal(t, []string{"PATH=/a", "PATH=/b", "PATH=/c"}, namesOf(p))

	p.RemoveEntry(1)
	assert.Equal(t, []string{"PATH=/a", "PATH=/c"}, namesOf(p))
	p.RemoveEntry(5)
	assert.Equal(t, []string{"PATH=/a", "PATH=/c"}, namesOf(p))
}

func TestCloneIsIndependent(t *testing.T) {
	p := profile.New("orig")
	p.Entries = []profile.Entry{profile.NewPathEntry("/a", "", "")}

	c := p.Clone()
	require.Equal(t, p, c)

	c.Entries[0] = profile.NewPathEntry("/changed", "", "")
	assert.Equal(t, "/a", p.Entries[0].Path)
}
