package invisitext_test

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/invisitext"
)

func Example_invisitext() {
	carrier := "This is a very long carrier text that we will use to hide a short secret message " +
		"inside of it without changing how it looks on the screen, because every single gap between " +
		"two words can hold exactly one invisible bit of the hidden message right here and now."

	fmt.Printf("capacity: %d bits\n", invisitext.Capacity(carrier))

	// Hide a payload
	encoded, err := invisitext.Encode(carrier, []byte("Hello"))
	if err != nil {
		fmt.Printf("Error encoding: %v\n", err)
		return
	}
	fmt.Println(invisitext.Strip(encoded) == carrier)

	// Recover it
	secret, err := invisitext.Decode(encoded)
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}
	fmt.Println(string(secret))

	// Output:
	// capacity: 48 bits
	// true
	// Hello
}

func ExampleCapacityError() {
	_, err := invisitext.Encode("too short for anything", []byte("Hi"))

	var ce *invisitext.CapacityError
	if errors.As(err, &ce) {
		fmt.Printf("capacity %d, required %d\n", ce.Capacity, ce.Required)
	}
	fmt.Println(errors.Is(err, invisitext.ErrTooShortCarrier))
	// Output:
	// capacity 3, required 24
	// true
}

func ExampleDecode() {
	_, err := invisitext.Decode("nothing hidden here")
	fmt.Println(err)
	// Output:
	// no hidden message found
}
