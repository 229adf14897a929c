// Package bitconv converts between bytes and MSB-first bit slices.
package bitconv

// BytesToBools expands every byte of b into 8 bits, most significant bit first.
func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		bits = AppendByte(bits, bb)
	}
	return bits
}

// AppendByte appends the 8 bits of b to bits, most significant bit first.
func AppendByte(bits []bool, b byte) []bool {
	for i := 7; i >= 0; i-- {
		bits = append(bits, ((b>>uint(i))&1) == 1)
	}
	return bits
}

// BoolsToBytes packs bits into bytes. A trailing partial group is padded with zero bits.
func BoolsToBytes(bits []bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// Byte packs the first 8 bits of bits into a byte.
func Byte(bits []bool) byte {
	var v byte
	for j := 0; j < 8 && j < len(bits); j++ {
		if bits[j] {
			v |= 1 << uint(7-j)
		}
	}
	return v
}
