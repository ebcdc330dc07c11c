package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectWithProgress(t *testing.T, name string, done string) *Project {
	t.Helper()
	p := newTestProject(t, 10, []string{done}, nil)
	p.SetName(name)
	return p
}

func names(ps []*Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name()
	}
	return out
}

func TestCollection_AddRemove(t *testing.T) {
	c := NewCollection(SortByProgress, Ascending)
	a := projectWithProgress(t, "a", "1")
	b := projectWithProgress(t, "b", "2")

	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))
	assert.ErrorIs(t, c.Add(a), ErrDuplicateProject)
	assert.Equal(t, 2, c.Len())

	got, err := c.Get(b.ID())
	require.NoError(t, err)
	assert.Same(t, b, got)

	require.NoError(t, c.Remove(a.ID()))
	assert.Equal(t, []string{"b"}, names(c.Projects()))
	assert.ErrorIs(t, c.Remove(a.ID()), ErrProjectNotFound)

	_, err = c.Get(uuid.New())
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestCollection_SortedDescendingByProgress(t *testing.T) {
	c := NewCollection(SortByProgress, Descending)
	low := projectWithProgress(t, "low", "3")
	high := projectWithProgress(t, "high", "7")
	require.NoError(t, c.Add(low))
	require.NoError(t, c.Add(high))

	assert.Equal(t, []string{"high", "low"}, names(c.Sorted()))
	assert.Equal(t, []string{"low", "high"}, names(c.Projects()), "storage order untouched")
}

func TestCollection_SortedByRemaining(t *testing.T) {
	c := NewCollection(SortByRemaining, Ascending)
	for _, p := range []*Project{
		projectWithProgress(t, "r8", "2"),
		projectWithProgress(t, "r1", "9"),
		projectWithProgress(t, "r5", "5"),
	} {
		require.NoError(t, c.Add(p))
	}

	assert.Equal(t, []string{"r1", "r5", "r8"}, names(c.Sorted()))
	c.SetDirection(Descending)
	assert.Equal(t, []string{"r8", "r5", "r1"}, names(c.Sorted()))
}

func TestCollection_SortedConsistentWithComparator(t *testing.T) {
	c := NewCollection(SortByProgress, Ascending)
	for i, done := range []string{"4", "x", "10", "0", "7", "4", "2.5"} {
		require.NoError(t, c.Add(projectWithProgress(t, string(rune('a'+i)), done)))
	}

	sorted := c.Sorted()
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Progress(), sorted[i].Progress())
	}
}

func TestCollection_TiesKeepInsertionOrder(t *testing.T) {
	c := NewCollection(SortByProgress, Descending)
	for _, n := range []string{"first", "second", "third"} {
		require.NoError(t, c.Add(projectWithProgress(t, n, "5")))
	}
	assert.Equal(t, []string{"first", "second", "third"}, names(c.Sorted()))
}

func TestCollection_SelectSortKey(t *testing.T) {
	c := NewCollection(SortByProgress, Ascending)

	c.SelectSortKey(SortByProgress)
	assert.Equal(t, Descending, c.Direction())

	c.SelectSortKey(SortByProgress)
	assert.Equal(t, Ascending, c.Direction())

	c.SelectSortKey(SortByRemaining)
	assert.Equal(t, SortByRemaining, c.SortKey())
	assert.Equal(t, Ascending, c.Direction())
}

func TestCollection_Notifies(t *testing.T) {
	c := NewCollection(SortByProgress, Ascending)
	var got []Change
	c.Subscribe(func(ch Change) { got = append(got, ch) })

	p := NewProject(day0)
	require.NoError(t, c.Add(p))
	c.SelectSortKey(SortByRemaining)
	require.NoError(t, c.Remove(p.ID()))

	assert.Equal(t, []Change{ChangeProjectAdded, ChangeSort, ChangeProjectRemoved}, got)
}

func TestParseSortKeyAndDirection(t *testing.T) {
	k, err := ParseSortKey("Remaining")
	require.NoError(t, err)
	assert.Equal(t, SortByRemaining, k)

	_, err = ParseSortKey("name")
	assert.Error(t, err)

	d, err := ParseDirection("desc")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
