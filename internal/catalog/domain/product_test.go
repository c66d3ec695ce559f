package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayTitle(t *testing.T) {
	t.Run("short title is untouched", func(t *testing.T) {
		p := Product{Title: "Mens Casual T-Shirt"}
		assert.Equal(t, "Mens Casual T-Shirt", p.DisplayTitle())
	})

	t.Run("exactly 50 characters is untouched", func(t *testing.T) {
		title := strings.Repeat("a", 50)
		p := Product{Title: title}
		assert.Equal(t, title, p.DisplayTitle())
	})

	t.Run("51 characters truncates to 47 plus ellipsis", func(t *testing.T) {
		p := Product{Title: strings.Repeat("a", 51)}

		got := p.DisplayTitle()
		assert.Equal(t, strings.Repeat("a", 47)+"...", got)
		assert.Len(t, []rune(got), 50)
	})

	t.Run("stored title is never mutated", func(t *testing.T) {
		title := strings.Repeat("b", 80)
		p := Product{Title: title}

		_ = p.DisplayTitle()
		assert.Equal(t, title, p.Title)
	})
}
