package view

import (
	"testing"

	"github.com/alexanderramin/bibletrack/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestExpansion_ZeroValue(t *testing.T) {
	var e Expansion
	assert.False(t, e.IsExpanded("Genesis"))
	assert.Equal(t, 0, e.Len())
	e.CollapseAll()
}

func TestExpansion_Toggle(t *testing.T) {
	var e Expansion
	assert.True(t, e.Toggle("Ruth"))
	assert.True(t, e.IsExpanded("Ruth"))
	assert.False(t, e.Toggle("Ruth"))
	assert.False(t, e.IsExpanded("Ruth"))
}

func TestExpansion_ExpandCollapseAll(t *testing.T) {
	var e Expansion
	books := catalog.ByTestament("NEW")
	e.ExpandAll(books)
	assert.Equal(t, len(books), e.Len())
	assert.True(t, e.IsExpanded("Revelation"))
	assert.False(t, e.IsExpanded("Genesis"))

	e.CollapseAll()
	assert.Equal(t, 0, e.Len())
}
