package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDecodeBCD_BasicDigitsLittleEndian(t *testing.T) {
	got := DecodeBCD([]byte{0x21, 0x43}, true, false, false)
	assert.Equal(t, "1234", got)
}

func TestDecodeBCD_BigEndianNoSwap(t *testing.T) {
	got := DecodeBCD([]byte{0x12, 0x34}, false, false, false)
	assert.Equal(t, "1234", got)
}

func TestDecodeBCD_StripsSignFlagNibble(t *testing.T) {
	got := DecodeBCD([]byte{0x21, 0xf3}, true, true, false)
	assert.Equal(t, "123", got)
}

func TestDecodeBCD_TelecomDigits(t *testing.T) {
	got := DecodeBCD([]byte{0xa1}, true, false, true)
	assert.Equal(t, "1*", got)
}

func TestDecodeBCD_Empty(t *testing.T) {
	assert.Equal(t, "", DecodeBCD(nil, true, false, false))
}

func TestBCDRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 8).Draw(t, "n")
		digits := ""
		for i := 0; i < n*2; i++ {
			digits += string(rune('0' + rapid.IntRange(0, 9).Draw(t, "d")))
		}

		packed := EncodeBCD(digits, true, false)
		got := DecodeBCD(packed, true, false, false)

		assert.Equal(t, digits, got)
	})
}
