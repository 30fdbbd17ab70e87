package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestUnpackSeptets_Hello(t *testing.T) {
	// "hello" packed as GSM 7-bit septets.
	packed := []byte{0xe8, 0x32, 0x9b, 0xfd, 0x06}
	got := UnpackSeptets(packed, 5)
	assert.Equal(t, "hello", MapChars(got))
}

func TestUnpackSeptets_TruncatesToRequestedCount(t *testing.T) {
	packed := []byte{0x31, 0x32, 0x33}
	got := UnpackSeptets(packed, 3)
	assert.Len(t, got, 3)
}

func TestUnpackSeptets_EmptyInputs(t *testing.T) {
	assert.Nil(t, UnpackSeptets(nil, 5))
	assert.Nil(t, UnpackSeptets([]byte{0x01}, 0))
}

func TestSeptetRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 40).Draw(t, "n")
		septets := make([]byte, n)
		for i := range septets {
			septets[i] = byte(rapid.IntRange(0, 0x7f).Draw(t, "s"))
		}

		packed := PackSeptets(septets)
		got := UnpackSeptets(packed, n)

		assert.Equal(t, septets, got)
	})
}
