// Package carrier interleaves marker runes with the words of a carrier text.
package carrier

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/yyyoichi/invisitext/internal/symbol"
)

// Separator is the only rune that delimits words.
const Separator = " "

var (
	ErrCapacity = errors.New("carrier has fewer slots than bits")
)

// Placement selects on which side of the separating space a marker is written.
type Placement uint8

const (
	// AfterSpace writes "word<space><marker>word".
	AfterSpace Placement = iota
	// BeforeSpace writes "word<marker><space>word".
	BeforeSpace
)

func (p Placement) String() string {
	switch p {
	case AfterSpace:
		return "after"
	case BeforeSpace:
		return "before"
	}
	return fmt.Sprintf("Placement(%d)", p)
}

// Words splits text on single spaces. Consecutive spaces yield empty words.
func Words(text string) []string {
	return strings.Split(text, Separator)
}

// Capacity returns the number of inter-word slots in text.
func Capacity(text string) int {
	return strings.Count(text, Separator)
}

// Embed writes one marker per bit into the first len(bits) slots of text.
// Slots beyond len(bits) keep only the plain space.
func Embed(text string, bits []bool, p Placement) (string, error) {
	words := Words(text)
	slots := len(words) - 1
	if len(bits) > slots {
		return "", fmt.Errorf("%w: capacity %d, required %d", ErrCapacity, slots, len(bits))
	}

	var b strings.Builder
	b.Grow(len(text) + len(bits)*3)
	for i, word := range words {
		if i > 0 {
			if i-1 < len(bits) {
				marker := symbol.Symbol(symbol.Bit(bits[i-1]))
				if p == BeforeSpace {
					b.WriteRune(marker)
					b.WriteString(Separator)
				} else {
					b.WriteString(Separator)
					b.WriteRune(marker)
				}
			} else {
				b.WriteString(Separator)
			}
		}
		b.WriteString(word)
	}
	return b.String(), nil
}

// Bits yields the bit of every marker rune in text, in order.
// All other runes are skipped.
func Bits(text string) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for _, r := range text {
			bit, ok := symbol.BitOf(r)
			if !ok {
				continue
			}
			if !yield(bool(bit)) {
				return
			}
		}
	}
}

// Strip removes every marker rune from text. Other bytes, including
// invalid UTF-8, are copied unchanged.
func Strip(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if !symbol.IsMarker(r) {
			b.WriteString(text[:size])
		}
		text = text[size:]
	}
	return b.String()
}
