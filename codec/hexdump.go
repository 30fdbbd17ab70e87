package codec

import (
	"fmt"
	"strings"
)

const hexDumpRowSize = 16

// HexDump renders buf as a `hexdump -C`-style dump: 16 bytes per row, two
// hex digits per byte followed by a space, then the printable-ASCII
// rendering of that row (non-printable bytes shown as '.').
func HexDump(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}

	var out strings.Builder
	var ascii strings.Builder

	for i, b := range buf {
		if i%hexDumpRowSize == 0 && i != 0 {
			fmt.Fprintf(&out, "\t%s\n", ascii.String())
			ascii.Reset()
		}

		fmt.Fprintf(&out, "%02x ", b)

		if b >= 0x20 && b < 0x7f {
			ascii.WriteByte(b)
		} else {
			ascii.WriteByte('.')
		}
	}

	for i := len(buf); i%hexDumpRowSize != 0; i++ {
		out.WriteString("   ")
	}
	fmt.Fprintf(&out, "\t%s\n", ascii.String())

	return out.String()
}
