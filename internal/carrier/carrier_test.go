package carrier

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsAndCapacity(t *testing.T) {
	test := []struct {
		text     string
		words    int
		capacity int
	}{
		{"", 1, 0},
		{"one", 1, 0},
		{"one two", 2, 1},
		{"one  two", 3, 2},
		{" lead and trail ", 5, 4},
		{"line one\nline two", 3, 2},
		{"tab\tseparated words", 2, 1},
	}
	for _, tt := range test {
		assert.Len(t, Words(tt.text), tt.words, tt.text)
		assert.Equal(t, tt.capacity, Capacity(tt.text), tt.text)
	}
}

func TestEmbed(t *testing.T) {
	const zws, zwnj = "\u200b", "\u200c"
	test := []struct {
		name string
		text string
		bits []bool
		p    Placement
		exp  string
	}{
		{"after", "a b c d", []bool{true, false}, AfterSpace, "a " + zwnj + "b " + zws + "c d"},
		{"before", "a b c d", []bool{true, false}, BeforeSpace, "a" + zwnj + " b" + zws + " c d"},
		{"full", "a b c", []bool{false, true}, AfterSpace, "a " + zws + "b " + zwnj + "c"},
		{"no bits", "a b c", nil, AfterSpace, "a b c"},
		{"empty words", "a  b", []bool{true, true}, AfterSpace, "a " + zwnj + " " + zwnj + "b"},
		{"newlines kept", "x\ny z", []bool{false}, AfterSpace, "x\ny " + zws + "z"},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Embed(tt.text, tt.bits, tt.p)
			assert.NoError(t, err)
			assert.Equal(t, tt.exp, got)
			assert.Equal(t, tt.text, Strip(got))
			assert.Equal(t, tt.bits, nilIfEmpty(slices.Collect(Bits(got))))
		})
	}
}

func TestEmbedCapacity(t *testing.T) {
	test := []struct {
		text string
		bits int
	}{
		{"", 1},
		{"single", 1},
		{"a b", 2},
		{strings.Repeat("w ", 10) + "w", 11},
	}
	for _, tt := range test {
		_, err := Embed(tt.text, make([]bool, tt.bits), AfterSpace)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrCapacity))
	}
	_, err := Embed(strings.Repeat("w ", 10)+"w", make([]bool, 10), AfterSpace)
	assert.NoError(t, err)
}

func TestBitsStopsEarly(t *testing.T) {
	text, err := Embed("a b c d e", []bool{true, true, false, true}, AfterSpace)
	assert.NoError(t, err)

	var got []bool
	for b := range Bits(text) {
		got = append(got, b)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []bool{true, true}, got)
}

func TestStripKeepsInvalidUTF8(t *testing.T) {
	text := "a \xff\u200bb"
	assert.Equal(t, "a \xffb", Strip(text))
}

func TestPlacementString(t *testing.T) {
	assert.Equal(t, "after", AfterSpace.String())
	assert.Equal(t, "before", BeforeSpace.String())
	assert.Equal(t, "Placement(9)", Placement(9).String())
}

func nilIfEmpty(b []bool) []bool {
	if len(b) == 0 {
		return nil
	}
	return b
}
