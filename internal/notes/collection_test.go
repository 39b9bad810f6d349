package notes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() Collection {
	return Collection{
		{ID: 1, Title: "Milk", Content: "Buy milk", Category: Shopping},
		{ID: 2, Title: "Standup", Content: "10am", Category: Work},
		{ID: 3, Title: "Call mum", Content: "Sunday", Category: Personal},
	}
}

func TestCollectionOpsLeaveReceiverAlone(t *testing.T) {
	orig := sample()
	keep := sample()

	added := orig.Add(Note{ID: 4, Title: "x", Content: "y", Category: Work})
	edited, ok := orig.Edit(2, "Retro", "3pm")
	require.True(t, ok)
	deleted, ok := orig.Delete(1)
	require.True(t, ok)

	assert.Equal(t, keep, orig)
	assert.Len(t, added, 4)
	assert.Equal(t, "Retro", edited[1].Title)
	assert.Equal(t, Work, edited[1].Category)
	assert.Equal(t, Collection{keep[1], keep[2]}, deleted)
}

func TestCollectionMissingID(t *testing.T) {
	c := sample()

	got, ok := c.Delete(42)
	assert.False(t, ok)
	assert.Equal(t, c, got)

	got, ok = c.Edit(42, "a", "b")
	assert.False(t, ok)
	assert.Equal(t, c, got)

	_, ok = c.Find(42)
	assert.False(t, ok)
}

func TestFilterByCategory(t *testing.T) {
	c := sample()
	assert.Equal(t, c, c.Filter(All))
	assert.Equal(t, c, c.Filter(""))
	assert.Equal(t, Collection{c[1]}, c.Filter(Filter(Work)))
	assert.Empty(t, Collection{}.Filter(Filter(Shopping)))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    Category
		wantErr bool
	}{
		{"personal", Personal, false},
		{" Work ", Work, false},
		{"SHOPPING", Shopping, false},
		{"", "", true},
		{"groceries", "", true},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidCategory, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, All, f)

	f, err = ParseFilter("Shopping")
	require.NoError(t, err)
	assert.Equal(t, Filter(Shopping), f)

	_, err = ParseFilter("later")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	assert.Equal(t, []Filter{All, "personal", "work", "shopping"}, Filters())
}

func TestLabelsAndColors(t *testing.T) {
	assert.Equal(t, "Personal", Personal.Label())
	assert.Equal(t, "All", All.Label())
	assert.Equal(t, "Work", Filter(Work).Label())
	assert.NotEqual(t, Personal.Color(), Work.Color())
	assert.NotEqual(t, Work.Color(), Shopping.Color())
	assert.Equal(t, "245", Category("other").Color())
}
