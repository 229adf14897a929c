package mark

import (
	"fmt"
	"iter"
	"math/rand"
	"slices"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var _ Layer = (*shuffledgolay)(nil)

type shuffledgolay int64

func (sg shuffledgolay) Encode(bits []bool) ([]bool, error) {
	if len(bits) == 0 {
		return nil, nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	if err := enc.Encode(w.Data(), len(bits)); err != nil {
		return nil, fmt.Errorf("golay encode: %w", err)
	}
	encodedLen := enc.Bits()

	// shuffle
	index := sg.generatePermutation(encodedLen)
	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, encodedLen)
	for i := range encodedLen {
		out[i], _ = r.ReadBitAt(index[i])
	}
	return out, nil
}

func (sg shuffledgolay) Decode(bits iter.Seq[bool]) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		data := slices.Collect(bits)
		if len(data) == 0 {
			return
		}
		// reverse shuffle: create same permutation then apply inverse
		index := sg.generatePermutation(len(data))
		unshuffled := make([]bool, len(data))
		for i, v := range data {
			unshuffled[index[i]] = v
		}

		w := bitstream.NewBitWriter[uint64](0, 0)
		for _, v := range unshuffled {
			w.WriteBool(v)
		}
		var decoded []uint64
		dec := golay.NewDecoder(w.Data(), w.Bits())
		if err := dec.Decode(&decoded); err != nil {
			return
		}

		size := len(decoded) * 64
		r := bitstream.NewBitReader(decoded, 0, 0)
		r.SetBits(size)
		for i := range size {
			bit, err := r.ReadBitAt(i)
			if err != nil || !yield(bit) {
				return
			}
		}
	}
}

func (sg shuffledgolay) EncodedLen(size int) int {
	if size == 0 {
		return 0
	}
	return golay.EncodedBits(size)
}

func (sg shuffledgolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	seed := int64(sg)
	rd := rand.New(rand.NewSource(seed))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}

var _ Layer = (*withoutecc)(nil)

type withoutecc struct{}

func (we withoutecc) Encode(bits []bool) ([]bool, error) {
	return bits, nil
}

func (we withoutecc) Decode(bits iter.Seq[bool]) iter.Seq[bool] {
	return bits
}

func (we withoutecc) EncodedLen(size int) int {
	return size
}
