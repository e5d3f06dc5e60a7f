package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fmtkit/pkg/normalize"
)

func TestApply(t *testing.T) {
	t.Run("runs transforms in order", func(t *testing.T) {
		result := normalize.Apply("  @ ferretpapa  ",
			normalize.Whitespace,
			normalize.Handle,
		)
		assert.Equal(t, "ferretpapa", result)
	})

	t.Run("no transforms returns input", func(t *testing.T) {
		assert.Equal(t, "unchanged", normalize.Apply("unchanged"))
	})
}

func TestCompose(t *testing.T) {
	clean := normalize.Compose(normalize.Whitespace, normalize.Phone)

	assert.Equal(t, "5551112222", clean("  1 (555) 111-2222  "))
	assert.Equal(t, "", clean("---"))
}

func TestPtr(t *testing.T) {
	clean := normalize.Ptr(normalize.Compose(normalize.Whitespace, normalize.Handle))

	t.Run("nil passthrough", func(t *testing.T) {
		assert.Nil(t, clean(nil))
	})

	t.Run("applies wrapped pipeline", func(t *testing.T) {
		input := " @ ferretpapa "
		result := clean(&input)
		if assert.NotNil(t, result) {
			assert.Equal(t, "ferretpapa", *result)
		}
	})
}

func TestWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", normalize.Whitespace("  a\t b \n c  "))
	assert.Equal(t, "", normalize.Whitespace("   "))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "20250831", normalize.Digits("2025-08-31"))
	assert.Equal(t, "", normalize.Digits("no digits"))
}
