package mark_test

import (
	"fmt"
	"slices"

	"github.com/yyyoichi/invisitext/mark"
)

// ExampleGolay demonstrates that the Golay layer recovers a frame with a flipped bit.
func ExampleGolay() {
	frame := []bool{
		false, true, false, false, true, false, false, false, // 'H'
		false, false, false, false, false, true, false, false, // terminator
	}
	layer := mark.Golay(mark.DefaultShuffleSeed)

	encoded, err := layer.Encode(frame)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(encoded) == layer.EncodedLen(len(frame)))

	encoded[3] = !encoded[3]
	decoded := slices.Collect(layer.Decode(slices.Values(encoded)))
	fmt.Println(slices.Equal(frame, decoded[:len(frame)]))
	// Output:
	// true
	// true
}

// ExamplePlain demonstrates that the plain layer embeds the frame as-is.
func ExamplePlain() {
	frame := []bool{true, false, true}
	encoded, _ := mark.Plain().Encode(frame)
	fmt.Println(encoded)
	// Output:
	// [true false true]
}
