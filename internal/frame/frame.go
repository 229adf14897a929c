// Package frame delimits a payload bit stream with a terminator byte.
//
// A frame is the payload expanded to bits, most significant bit first,
// followed by the 8 bits of Terminator. There is no header or length prefix;
// the first 8-bit group equal to Terminator ends the frame.
package frame

import "github.com/yyyoichi/invisitext/internal/bitconv"

// Terminator is the ASCII EOT code.
const Terminator byte = 0x04

// Len returns the number of bits in the frame of a payload of n bytes.
func Len(n int) int {
	return 8*n + 8
}

// Encode returns the framed bit stream of payload.
func Encode(payload []byte) []bool {
	bits := make([]bool, 0, Len(len(payload)))
	for _, b := range payload {
		bits = bitconv.AppendByte(bits, b)
	}
	return bitconv.AppendByte(bits, Terminator)
}

// Decode scans bits in 8-bit groups until the terminator.
// consumed is the number of bits read up to and including the terminator.
// ok is false when no terminator is found before the stream ends.
func Decode(bits []bool) (payload []byte, consumed int, ok bool) {
	var d Decoder
	for _, b := range bits {
		if d.Push(b) {
			return d.Payload(), d.Consumed(), true
		}
	}
	return nil, 0, false
}

// Decoder decodes a frame one bit at a time.
type Decoder struct {
	payload  []byte
	cur      byte
	n        int
	consumed int
	done     bool
}

// Push feeds the next bit and reports whether the terminator has been read.
// Bits pushed after that are ignored.
func (d *Decoder) Push(bit bool) (done bool) {
	if d.done {
		return true
	}
	d.consumed++
	d.cur <<= 1
	if bit {
		d.cur |= 1
	}
	d.n++
	if d.n < 8 {
		return false
	}
	if d.cur == Terminator {
		d.done = true
		if d.payload == nil {
			d.payload = []byte{}
		}
		return true
	}
	d.payload = append(d.payload, d.cur)
	d.cur, d.n = 0, 0
	return false
}

// Done reports whether a complete frame has been read.
func (d *Decoder) Done() bool {
	return d.done
}

// Payload returns the bytes before the terminator. It is nil until Done.
func (d *Decoder) Payload() []byte {
	if !d.done {
		return nil
	}
	return d.payload
}

// Consumed returns the number of bits pushed before and including the terminator.
func (d *Decoder) Consumed() int {
	return d.consumed
}
