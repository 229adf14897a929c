// Package invisitext hides a byte payload between the words of a carrier text.
//
// One invisible marker is written next to the space between two words:
// U+200B ZERO WIDTH SPACE for a 0 bit and U+200C ZERO WIDTH NON-JOINER for a 1 bit.
// The payload is expanded most significant bit first and followed by the
// terminator byte 0x04. The marked text renders exactly like the carrier.
package invisitext

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/yyyoichi/invisitext/internal/carrier"
	"github.com/yyyoichi/invisitext/internal/frame"
	"github.com/yyyoichi/invisitext/mark"
)

// Terminator marks the end of the payload in the embedded bit stream.
const Terminator = frame.Terminator

var (
	ErrTooShortCarrier     = errors.New("carrier text is not long enough to hold the payload")
	ErrNoMessage           = errors.New("no hidden message found")
	ErrTerminatorInPayload = errors.New("payload contains the terminator byte")
	ErrInvalidOption       = errors.New("invalid option")
)

// CapacityError reports a carrier with fewer slots than the bits required.
// It matches ErrTooShortCarrier with errors.Is.
type CapacityError struct {
	Capacity int
	Required int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: capacity %d bits, required %d bits", ErrTooShortCarrier, e.Capacity, e.Required)
}

func (e *CapacityError) Unwrap() error {
	return ErrTooShortCarrier
}

// Encode hides payload in carrierText with the specified options.
// This is a convenience function that creates a Codec and calls its Encode method.
func Encode(carrierText string, payload []byte, opts ...Option) (string, error) {
	c, err := New(opts...)
	if err != nil {
		return "", err
	}
	return c.Encode(carrierText, payload)
}

// Decode extracts the payload hidden in text with the specified options.
// This is a convenience function that creates a Codec and calls its Decode method.
func Decode(text string, opts ...Option) ([]byte, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Decode(text)
}

// Capacity returns the number of bit slots in carrierText.
func Capacity(carrierText string) int {
	return carrier.Capacity(carrierText)
}

// Strip removes every marker from text, leaving the carrier.
func Strip(text string) string {
	return carrier.Strip(text)
}

// Codec encodes and decodes marked text. It holds no mutable state and is
// safe for concurrent use.
type Codec struct {
	placement Placement
	layer     mark.Layer
}

// New initializes a Codec.
// Without options markers are placed after the space and no error
// correction is used, which is the format read by every other decoder.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Codec) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.layer == nil {
		c.layer = mark.Plain()
	}
	return nil
}

// Encode hides payload in carrierText.
//
// Process:
//  1. Splits carrierText into words on single spaces.
//  2. Expands payload to bits and appends the terminator.
//  3. Checks that the carrier has a slot for every bit.
//  4. Writes one marker per bit next to the space of each slot, in order.
//
// Returns a *CapacityError if the carrier is too short; nothing is written in that case.
// Returns ErrTerminatorInPayload if payload contains the terminator byte, since
// the decoder would stop there.
func (c *Codec) Encode(carrierText string, payload []byte) (string, error) {
	if i := bytes.IndexByte(payload, Terminator); i >= 0 {
		return "", fmt.Errorf("%w: 0x%02x at offset %d", ErrTerminatorInPayload, Terminator, i)
	}
	bits, err := c.layer.Encode(frame.Encode(payload))
	if err != nil {
		return "", err
	}
	if capacity := carrier.Capacity(carrierText); len(bits) > capacity {
		return "", &CapacityError{Capacity: capacity, Required: len(bits)}
	}
	return carrier.Embed(carrierText, bits, c.placement)
}

// Decode extracts the payload hidden in text.
//
// Every marker in text is read in order; all other characters are ignored.
// Reading stops at the terminator and markers after it are not part of the message.
// Returns ErrNoMessage if no terminator is found.
func (c *Codec) Decode(text string) ([]byte, error) {
	var d frame.Decoder
	for bit := range c.layer.Decode(carrier.Bits(text)) {
		if d.Push(bit) {
			break
		}
	}
	if !d.Done() {
		return nil, ErrNoMessage
	}
	return d.Payload(), nil
}

// Capacity returns the number of bit slots in carrierText.
func (c *Codec) Capacity(carrierText string) int {
	return carrier.Capacity(carrierText)
}

// Required returns the number of slots needed for a payload of n bytes.
func (c *Codec) Required(n int) int {
	return c.layer.EncodedLen(frame.Len(n))
}

// MaxPayload returns the largest payload size, in bytes, that fits in carrierText,
// or -1 if not even an empty payload fits.
func (c *Codec) MaxPayload(carrierText string) int {
	capacity := c.Capacity(carrierText)
	if c.Required(0) > capacity {
		return -1
	}
	n := (capacity - 8) / 8
	for n > 0 && c.Required(n) > capacity {
		n--
	}
	return n
}
