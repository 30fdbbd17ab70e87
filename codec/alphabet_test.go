package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestMapChars_BasicLatin(t *testing.T) {
	src := []byte{'H', 'I'}
	assert.Equal(t, "HI", MapChars(src))
}

func TestMapChars_EscapeExtension(t *testing.T) {
	// escape followed by 0x28 maps to '{' in the extension table.
	src := []byte{escapeChar, 0x28}
	assert.Equal(t, "{", MapChars(src))
}

func TestMapChars_StopsAtUnusedSentinel(t *testing.T) {
	src := []byte{'A', 0xff, 'B'}
	assert.Equal(t, "A", MapChars(src))
}

func TestMapChars_StopsAtOutOfRangeByte(t *testing.T) {
	src := []byte{'A', 0x80, 'B'}
	assert.Equal(t, "A", MapChars(src))
}

func TestMapChars_Empty(t *testing.T) {
	assert.Equal(t, "", MapChars(nil))
}

func TestMapChars_BasicTableEntries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.IntRange(0, 0x7f).Draw(t, "b")
		if b == escapeChar {
			return
		}
		got := MapChars([]byte{byte(b)})
		assert.Equal(t, basicCharset[b], got)
	})
}

func TestMapChars_ExtensionTableEntries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.IntRange(0, 0x7f).Draw(t, "b")
		got := MapChars([]byte{escapeChar, byte(b)})
		assert.Equal(t, basicCharsetExtension[b], got)
	})
}
