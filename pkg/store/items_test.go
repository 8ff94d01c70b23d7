// pkg/store/items_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: Filesystem (temp-dir databases)
// PURPOSE: Test item catalog CRUD and id stability

package store_test

import (
	"testing"

	"benv/pkg/errors"
	"benv/pkg/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	added, err := s.AddItem(profile.Item{
		Path:    "/opt/bin",
		Program: "tool",
		Version: "1.0",
		Tags:    []string{"core"},
	})
	require.NoError(t, err)
	assert.NotZero(t, added.ID)

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, added, items[0])

	added.Path = "/usr/local/bin"
	added.Tags = append(added.Tags, "updated")
	require.NoError(t, s.UpdateItem(added))

	items, err = s.Items()
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin", items[0].Path)
	assert.Contains(t, items[0].Tags, "updated")

	require.NoError(t, s.DeleteItem(added.ID))
	items, err = s.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemsListedInCreationOrder(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddItem(profile.Item{Path: "/a", Program: "a", Version: "1"})
	require.NoError(t, err)
	second, err := s.AddItem(profile.Item{Path: "/b", Program: "b", Version: "2"})
	require.NoError(t, err)

	require.Greater(t, second.ID, first.ID)

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "/a", items[0].Path)
	assert.Equal(t, "/b", items[1].Path)
}

func TestItemIDsStayStableAfterDelete(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddItem(profile.Item{Path: "/a", Program: "a", Version: "1"})
	require.NoError(t, err)
	second, err := s.AddItem(profile.Item{Path: "/b", Program: "b", Version: "2"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteItem(first.ID))

	// A new item never reuses a freed id.
	third, err := s.AddItem(profile.Item{Path: "/c", Program: "c", Version: "3"})
	require.NoError(t, err)
	assert.Greater(t, third.ID, second.ID)

	items, err := s.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, third.ID, items[1].ID)
}

func TestUpdateAndDeleteMissingItem(t *testing.T) {
	s := newTestStore(t)

	err := s.UpdateItem(profile.Item{ID: 42, Path: "/nope"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrItemNotFound))

	err = s.DeleteItem(42)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrItemNotFound))
}

func TestItemStampsIntoProfileEntry(t *testing.T) {
	s := newTestStore(t)
	added, err := s.AddItem(profile.Item{Path: "/opt/gcc/bin", Program: "gcc", Version: "13.2"})
	require.NoError(t, err)

	entry := added.Entry()

	assert.Equal(t, profile.EntryPath, entry.Kind)
	assert.Equal(t, "PATH", entry.VariableName())
	assert.Equal(t, "/opt/gcc/bin", entry.Path)
	assert.Equal(t, "gcc", entry.Program)
	assert.Equal(t, "13.2", entry.Version)
}
