package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"simscsi/errs"
)

func TestParseADN_Unused(t *testing.T) {
	record := make([]byte, 15)
	record[0] = 0xff
	got, err := ParseADN(record)
	assert.NoError(t, err)
	assert.True(t, got.Unused)
}

func TestParseADN_NameAndNumber(t *testing.T) {
	record := append([]byte("Bob"), make([]byte, 14)...)
	numberBuf := record[3:]
	numberBuf[0] = 0x02 // 1 BCD byte (2 digits) + TON/NPI byte
	numberBuf[1] = 0x81 // TON/NPI, ignored
	numberBuf[2] = 0x21 // BCD "12"

	got, err := ParseADN(record)
	assert.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)
	assert.Equal(t, "12", got.Number)
}

func TestParseADN_TooShort(t *testing.T) {
	_, err := ParseADN(make([]byte, 10))
	assert.Equal(t, errs.GsmInvalidAdnRecord, err)
}

func TestParseADN_InvalidNumberLenClampsToMax(t *testing.T) {
	record := append([]byte("X"), make([]byte, 14)...)
	numberBuf := record[1:]
	numberBuf[0] = 0x00 // invalid length, clamps to adnMaxNumberLen (10 bytes)
	got, err := ParseADN(record)
	assert.NoError(t, err)
	// 10 clamped digit bytes, all zero, decode to 20 '0' characters; no
	// trailing sign nibble to strip since the last nibble isn't 'f'.
	assert.Equal(t, strings.Repeat("0", 20), got.Number)
}
