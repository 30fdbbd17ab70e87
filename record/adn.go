// Package record decodes the two GSM elementary-file record layouts this
// library understands: ADN (phonebook) and SMS (TPDU).
package record

import (
	"simscsi/codec"
	"simscsi/errs"
)

const (
	adnNumberBufferLen = 14
	adnMaxNumberLen    = 10
)

// ADNEntry is a decoded EF-ADN (phonebook) record.
type ADNEntry struct {
	Unused bool
	Name   string
	Number string
}

// ParseADN decodes one EF-ADN record: record is `[name (N bytes) |
// number-buffer (14 bytes fixed)]` with N = len(record) - 14. A record
// whose first byte is 0xff is free space and is reported as Unused, not
// an error. Name bytes are alphabet-mapped directly (no septet
// unpacking: ADN names are already one byte per character). The number
// block starts with a length byte counting the TON/NPI byte plus the
// packed-BCD digit bytes; minus 1 it gives the digit byte count, and a
// count outside [1, adnMaxNumberLen] is replaced by adnMaxNumberLen. The
// TON/NPI byte is skipped, then the digit bytes are decoded as telecom
// digits with the trailing sign nibble stripped.
func ParseADN(record []byte) (ADNEntry, error) {
	if len(record) < adnNumberBufferLen+1 {
		return ADNEntry{}, errs.GsmInvalidAdnRecord
	}

	if record[0] == 0xff {
		return ADNEntry{Unused: true}, nil
	}

	nameLen := len(record) - adnNumberBufferLen
	name := codec.MapChars(record[:nameLen])

	numberBuf := record[nameLen:]
	numberLen := int(numberBuf[0]) - 1
	if numberLen <= 0 || numberLen > adnMaxNumberLen {
		numberLen = adnMaxNumberLen
	}

	// numberBuf[1] is TON/NPI, skipped.
	digits := numberBuf[2 : 2+numberLen]
	number := codec.DecodeBCD(digits, true, true, true)

	return ADNEntry{Name: name, Number: number}, nil
}
