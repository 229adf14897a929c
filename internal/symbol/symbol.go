// Package symbol maps bits to the invisible code points that carry them.
package symbol

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)

const (
	// ZeroWidthSpace carries a 0 bit.
	ZeroWidthSpace rune = '\u200b'
	// ZeroWidthNonJoiner carries a 1 bit.
	ZeroWidthNonJoiner rune = '\u200c'
)

// Symbol returns the marker rune for b.
func Symbol(b Bit) rune {
	if b == One {
		return ZeroWidthNonJoiner
	}
	return ZeroWidthSpace
}

// BitOf returns the bit carried by r. ok is false when r is not a marker.
func BitOf(r rune) (b Bit, ok bool) {
	switch r {
	case ZeroWidthSpace:
		return Zero, true
	case ZeroWidthNonJoiner:
		return One, true
	}
	return Zero, false
}

func IsMarker(r rune) bool {
	_, ok := BitOf(r)
	return ok
}
