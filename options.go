package invisitext

import (
	"fmt"

	"github.com/yyyoichi/invisitext/internal/carrier"
	"github.com/yyyoichi/invisitext/mark"
)

type Option func(*Codec) error

// Placement selects on which side of the separating space a marker is written.
// Decoding does not depend on it.
type Placement = carrier.Placement

const (
	AfterSpace  = carrier.AfterSpace
	BeforeSpace = carrier.BeforeSpace
)

// WithPlacement writes every marker on the given side of the space.
// The default is AfterSpace.
func WithPlacement(p Placement) Option {
	return func(c *Codec) error {
		switch p {
		case AfterSpace, BeforeSpace:
			c.placement = p
			return nil
		}
		return fmt.Errorf("%w: %s", ErrInvalidOption, p)
	}
}

// WithoutECC embeds the framed payload as-is, one bit per slot.
// This is the default.
func WithoutECC() Option {
	return func(c *Codec) error {
		c.layer = mark.Plain()
		return nil
	}
}

// WithGolay protects the framed payload with the Golay code.
// The encoded bits are shuffled with seed; decoding requires the same seed.
// It needs roughly twice as many slots as WithoutECC, and every marker in the
// text is taken as part of the message.
func WithGolay(seed int64) Option {
	return func(c *Codec) error {
		c.layer = mark.Golay(seed)
		return nil
	}
}
