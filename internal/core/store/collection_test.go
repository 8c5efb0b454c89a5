package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string
	Body string
	Done bool
}

func (n note) GetID() string { return n.ID }

func (n note) WithID(id string) note {
	n.ID = id
	return n
}

func newNotes(t *testing.T) *Collection[note] {
	t.Helper()
	seq := 0
	return OpenCollection(NewMaster(), Key[[]note]("notes"), WithIDFunc(func() string {
		seq++
		return fmt.Sprintf("n%d", seq)
	}))
}

func TestCollection_AddItem(t *testing.T) {
	c := newNotes(t)

	created := c.AddItem(note{ID: "caller-supplied", Body: "first"})

	assert.Equal(t, "n1", created.ID)
	assert.Equal(t, []note{{ID: "n1", Body: "first"}}, c.Items())
}

func TestCollection_DefaultIDsAreUnique(t *testing.T) {
	c := OpenCollection(NewMaster(), Key[[]note]("notes"))

	seen := map[string]bool{}
	for range 50 {
		n := c.AddItem(note{Body: "x"})
		require.NotEmpty(t, n.ID)
		require.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
}

func TestCollection_EmptyItemsIsNotNil(t *testing.T) {
	c := newNotes(t)
	items := c.Items()
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Equal(t, 0, c.Len())
}

func TestCollection_UpdateItem(t *testing.T) {
	c := newNotes(t)
	n := c.AddItem(note{Body: "a"})

	notified := 0
	c.Subscribe(func([]note) { notified++ })

	ok := c.UpdateItem("missing", func(n note) note { n.Done = true; return n })
	assert.False(t, ok)
	assert.Equal(t, 0, notified, "unknown id must not notify")

	ok = c.UpdateItem(n.ID, func(n note) note { n.Done = true; return n })
	assert.True(t, ok)
	assert.Equal(t, 1, notified)

	got, found := c.Item(n.ID)
	require.True(t, found)
	assert.True(t, got.Done)
}

func TestCollection_RemoveItemAlwaysNotifies(t *testing.T) {
	c := newNotes(t)
	n := c.AddItem(note{Body: "a"})

	notified := 0
	c.Subscribe(func([]note) { notified++ })

	assert.False(t, c.RemoveItem("missing"))
	assert.Equal(t, 1, notified)
	assert.Equal(t, 1, c.Len())

	assert.True(t, c.RemoveItem(n.ID))
	assert.Equal(t, 2, notified)
	assert.Equal(t, 0, c.Len())
}

func TestCollection_RemoveWhere(t *testing.T) {
	c := newNotes(t)
	c.AddItem(note{Body: "a", Done: true})
	c.AddItem(note{Body: "b"})
	c.AddItem(note{Body: "c", Done: true})

	removed := c.RemoveWhere(func(n note) bool { return n.Done })

	assert.Equal(t, 2, removed)
	assert.Equal(t, []note{{ID: "n2", Body: "b"}}, c.Items())
}

func TestCollection_ItemsFilteredAndDetached(t *testing.T) {
	c := newNotes(t)
	c.AddItem(note{Body: "a"})
	c.AddItem(note{Body: "b", Done: true})

	done := c.Items(func(n note) bool { return n.Done })
	require.Len(t, done, 1)
	assert.Equal(t, "b", done[0].Body)

	all := c.Items()
	all[0].Body = "mutated"
	assert.Equal(t, "a", c.Items()[0].Body, "callers must not alias store state")
}

func TestCollection_FindItem(t *testing.T) {
	c := newNotes(t)
	c.AddItem(note{Body: "a"})
	c.AddItem(note{Body: "b"})

	got, ok := c.FindItem(func(n note) bool { return n.Body == "b" })
	require.True(t, ok)
	assert.Equal(t, "n2", got.ID)

	_, ok = c.FindItem(func(n note) bool { return n.Body == "z" })
	assert.False(t, ok)
}

func TestCollection_SetItemsAndSubscribe(t *testing.T) {
	c := newNotes(t)

	var got []note
	unsub := c.Subscribe(func(items []note) { got = items })

	c.SetItems([]note{{ID: "x", Body: "seeded"}})
	assert.Equal(t, []note{{ID: "x", Body: "seeded"}}, got)

	got[0].Body = "mutated"
	assert.Equal(t, "seeded", c.Items()[0].Body)

	unsub()
	c.SetItems(nil)
	assert.Len(t, got, 1)
}

func TestOpenCollection_Cached(t *testing.T) {
	m := NewMaster()
	a := OpenCollection(m, Key[[]note]("notes"))
	b := OpenCollection(m, Key[[]note]("notes"))
	require.Same(t, a, b)

	a.AddItem(note{Body: "x"})
	assert.Len(t, Open(m, Key[[]note]("notes"), nil).Get(), 1)
}
