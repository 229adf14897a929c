// Package mark prepares the bit sequence written into a carrier.
//
// A Layer sits between the framed payload and the carrier slots. Plain writes
// the frame as-is; Golay adds error correction so that a few flipped markers
// can still be decoded.
package mark

import "iter"

var (
	DefaultShuffleSeed int64 = 1234567890
)

// Layer encodes a framed bit stream into the markers written to a carrier
// and decodes the markers read back from it.
type Layer interface {
	// Encode returns the bits to embed for the framed bits.
	Encode(bits []bool) ([]bool, error)
	// Decode returns the framed bits carried by the extracted markers.
	Decode(bits iter.Seq[bool]) iter.Seq[bool]
	// EncodedLen returns len(Encode(bits)) for a frame of size bits.
	EncodedLen(size int) int
}

// Plain returns a Layer that does not use error correction codes.
func Plain() Layer {
	return withoutecc{}
}

// Golay returns a Layer that uses the Golay code for error correction.
// seed is the seed value for shuffling the encoded bits, which spreads
// the codewords over the whole carrier.
func Golay(seed int64) Layer {
	return shuffledgolay(seed)
}
