// Package codec implements the pure byte-buffer transforms used to decode
// SIM file contents: packed-BCD digit strings, packed GSM 7-bit septets,
// the GSM 03.38 alphabet, and a debug hex dump.
package codec

import "strings"

const basicDigits = "0123456789abcdef"
const telecomDigits = "0123456789*#,--f"

// DecodeBCD unpacks a packed-BCD byte buffer into its digit string.
//
// Each byte contributes two characters, split into low nibble (bits 0-3)
// and high nibble (bits 4-7). littleEndianNibbles selects whether the low
// or high nibble is emitted first; useTelecomDigits selects the telecom
// digit table (*, #, comma) over the plain hex table. When stripSignFlag
// is set and the last emitted character is 'f', that trailing character is
// dropped rather than appended.
func DecodeBCD(bcd []byte, littleEndianNibbles, stripSignFlag, useTelecomDigits bool) string {
	if len(bcd) == 0 {
		return ""
	}

	table := basicDigits
	if useTelecomDigits {
		table = telecomDigits
	}

	var out strings.Builder
	out.Grow(len(bcd) * 2)

	for _, b := range bcd {
		lo := table[b&0x0f]
		hi := table[b>>4]
		if littleEndianNibbles {
			out.WriteByte(lo)
			out.WriteByte(hi)
		} else {
			out.WriteByte(hi)
			out.WriteByte(lo)
		}
	}

	s := out.String()
	if stripSignFlag && len(s) > 0 && s[len(s)-1] == 'f' {
		s = s[:len(s)-1]
	}
	return s
}

// EncodeBCD is the inverse of DecodeBCD on digits drawn from the chosen
// table: it packs an even-length (padded with a trailing 'f' sign nibble
// if needed) ASCII digit string back into packed-BCD bytes. It is not
// exercised by any on-device UPDATE path in this build (writing to a SIM
// is a non-goal end-to-end) but completes the codec for the round-trip
// properties that packing is expected to satisfy.
func EncodeBCD(digits string, littleEndianNibbles, useTelecomDigits bool) []byte {
	if len(digits) == 0 {
		return nil
	}
	if len(digits)%2 != 0 {
		digits += "f"
	}

	table := basicDigits
	if useTelecomDigits {
		table = telecomDigits
	}

	nibble := func(c byte) byte {
		for i := 0; i < len(table); i++ {
			if table[i] == c {
				return byte(i)
			}
		}
		return 0x0f
	}

	out := make([]byte, len(digits)/2)
	for i := 0; i < len(out); i++ {
		c0 := nibble(digits[i*2])
		c1 := nibble(digits[i*2+1])
		if littleEndianNibbles {
			out[i] = c0 | c1<<4
		} else {
			out[i] = c1 | c0<<4
		}
	}
	return out
}
