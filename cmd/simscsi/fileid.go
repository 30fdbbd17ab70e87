package simscsi

import (
	"fmt"
	"strconv"
	"strings"
)

// parseFileID parses a two-byte GSM file ID given as hex, with or
// without a leading "0x" (e.g. "6f3a" or "0x6F3A").
func parseFileID(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid file ID %q: %w", s, err)
	}
	return uint16(n), nil
}
