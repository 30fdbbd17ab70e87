package codec

const escapeChar = 0x1b

// MapChars maps a buffer of unpacked GSM 03.38 septets (one per byte, in
// the low 7 bits) to their text representation. It stops at the first
// byte outside 0x00-0x7f: 0xff marks an unused trailing slot in a fixed
// buffer and is the expected way a scan ends, anything else above 0x7f
// is treated the same way (hard stop, no error). A 0x1b byte is not
// itself emitted: it switches the next byte's lookup to the extension
// table.
func MapChars(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	var out []byte
	escaped := false

	for _, b := range src {
		if b > 0x7f {
			break
		}

		if escaped {
			out = append(out, basicCharsetExtension[b]...)
			escaped = false
			continue
		}

		if b == escapeChar {
			escaped = true
			continue
		}

		out = append(out, basicCharset[b]...)
	}

	return string(out)
}
