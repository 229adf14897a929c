package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol(t *testing.T) {
	for _, b := range []Bit{Zero, One} {
		got, ok := BitOf(Symbol(b))
		assert.True(t, ok)
		assert.Equal(t, b, got)
	}
	assert.Equal(t, '\u200b', Symbol(Zero))
	assert.Equal(t, '\u200c', Symbol(One))

	test := []rune{' ', 'a', '\n', '\u200d', '\ufeff', 'あ'}
	for _, r := range test {
		_, ok := BitOf(r)
		assert.False(t, ok, "%U", r)
		assert.False(t, IsMarker(r))
	}
}
