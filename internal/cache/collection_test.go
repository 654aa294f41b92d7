package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbird-app/quickbird-go/internal/domain"
)

func taskCollection() *Collection[domain.Task] {
	return NewCollection(func(t domain.Task) int64 { return t.ID })
}

func TestConfirm_LeavesExactlyOneRecord(t *testing.T) {
	c := taskCollection()
	c.SetAll([]domain.Task{{ID: 1, Title: "existing"}})

	tempID := c.BeginPending(domain.Task{Title: "draft"})
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.PendingCount())

	c.Confirm(tempID, domain.Task{ID: 2, Title: "draft", Status: domain.TaskPending})

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 0, c.PendingCount())
	got, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, "draft", got.Title)
	assert.Equal(t, domain.TaskPending, got.Status, "confirmed entry carries the server record")
}

func TestRollback_DropsOnlyThePendingEntry(t *testing.T) {
	c := taskCollection()
	c.SetAll([]domain.Task{{ID: 1, Title: "existing"}})

	tempID := c.BeginPending(domain.Task{Title: "doomed"})
	require.Equal(t, 2, c.Len())

	c.Rollback(tempID)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0, c.PendingCount())
	_, ok := c.Get(1)
	assert.True(t, ok)
}

func TestReplace_AdoptsServerStateWholesale(t *testing.T) {
	desc := "local description"
	c := taskCollection()
	c.SetAll([]domain.Task{{ID: 1, Title: "old title", Description: &desc, Priority: domain.PriorityHigh}})

	// The server record has no description; after Replace neither does the
	// cache. Replacement is not a merge.
	ok := c.Replace(domain.Task{ID: 1, Title: "new title", Priority: domain.PriorityLow})
	require.True(t, ok)

	got, found := c.Get(1)
	require.True(t, found)
	assert.Equal(t, "new title", got.Title)
	assert.Nil(t, got.Description)
	assert.Equal(t, domain.PriorityLow, got.Priority)
}

func TestReplace_UnknownIDReportsFalse(t *testing.T) {
	c := taskCollection()
	assert.False(t, c.Replace(domain.Task{ID: 99}))
}

func TestRemove(t *testing.T) {
	c := taskCollection()
	c.SetAll([]domain.Task{{ID: 1}, {ID: 2}, {ID: 3}})

	assert.True(t, c.Remove(2))
	assert.False(t, c.Remove(2))
	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(2)
	assert.False(t, ok)
}

func TestSnapshot_ConfirmedThenPending(t *testing.T) {
	c := taskCollection()
	c.SetAll([]domain.Task{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})
	c.BeginPending(domain.Task{Title: "draft"})

	snap := c.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "a", snap[0].Title)
	assert.Equal(t, "b", snap[1].Title)
	assert.Equal(t, "draft", snap[2].Title)
	assert.Zero(t, snap[2].ID, "pending records never carry a fabricated server id")
}

func TestSetAll_ReplacesConfirmedContents(t *testing.T) {
	c := taskCollection()
	c.SetAll([]domain.Task{{ID: 1}, {ID: 2}})
	c.SetAll([]domain.Task{{ID: 3}})

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestUpsert(t *testing.T) {
	c := taskCollection()
	c.Upsert(domain.Task{ID: 1, Title: "v1"})
	c.Upsert(domain.Task{ID: 1, Title: "v2"})
	c.Upsert(domain.Task{ID: 2, Title: "other"})

	assert.Equal(t, 2, c.Len())
	got, _ := c.Get(1)
	assert.Equal(t, "v2", got.Title)
}
