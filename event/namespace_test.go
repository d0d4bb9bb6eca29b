package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yaoapp/emitter/event"
)

func TestParent(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		ok     bool
	}{
		{"a.b.c", "a.b", true},
		{"a.b", "a", true},
		{"a", "", false},
		{"", "", false},
		{"a.", "a", true},
		{".a", "", true},
		{"a..b", "a.", true},
	}
	for _, tt := range tests {
		parent, ok := event.Parent(tt.name)
		assert.Equal(t, tt.parent, parent, tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
	}
}

func TestIsDescendant(t *testing.T) {
	assert.True(t, event.IsDescendant("a.b", "a"))
	assert.True(t, event.IsDescendant("a.b.c", "a"))
	assert.True(t, event.IsDescendant("a.b.c", "a.b"))
	assert.True(t, event.IsDescendant(".a", ""))

	assert.False(t, event.IsDescendant("a", "a"))
	assert.False(t, event.IsDescendant("ab", "a"))
	assert.False(t, event.IsDescendant("a.", "a"), "suffix must be non-empty")
	assert.False(t, event.IsDescendant("a", "a.b"))
	assert.False(t, event.IsDescendant("x.a.b", "a"))
}

func TestLineage(t *testing.T) {
	assert.Equal(t, []string{"a.b.c", "a.b", "a"}, event.Lineage("a.b.c"))
	assert.Equal(t, []string{"a"}, event.Lineage("a"))
	assert.Equal(t, []string{""}, event.Lineage(""))
	assert.Equal(t, []string{"a.", "a"}, event.Lineage("a."))
}
