package bookmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagList(t *testing.T) {
	tests := []struct {
		name     string
		tags     string
		expected []string
	}{
		{"Empty string", "", nil},
		{"Single tag", "go", []string{"go"}},
		{"Multiple tags", "go,web,cli", []string{"go", "web", "cli"}},
		{"Whitespace trimmed", " go , web ", []string{"go", "web"}},
		{"Empty segments dropped", "go,,web,", []string{"go", "web"}},
		{"Only separators", ", ,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bookmark{Tags: tt.tags}
			assert.Equal(t, tt.expected, b.TagList())
		})
	}
}

func TestHasTag(t *testing.T) {
	b := &Bookmark{Tags: "go, web-dev"}

	assert.True(t, b.HasTag("go"))
	assert.True(t, b.HasTag("web-dev"))
	// Exact match only: no substring or case folding
	assert.False(t, b.HasTag("golang"))
	assert.False(t, b.HasTag("Go"))
	assert.False(t, b.HasTag("web"))
}
