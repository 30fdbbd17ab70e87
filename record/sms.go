package record

import (
	"fmt"
	"simscsi/codec"
	"simscsi/errs"
)

const (
	smsRecordLen  = 176
	maxSMSCLen    = 10
	minAddressLen = 2
	maxAddressLen = 12
)

var smsStatusTable = [8]string{
	"Unused space",
	"Message received and read",
	"[Undefined]",
	"Message received but unread",
	"[Undefined]",
	"Message sent",
	"[Undefined]",
	"Message not sent",
}

// TPDUKind is the low two bits of the TPDU type octet.
type TPDUKind int

const (
	TPDUDeliver TPDUKind = 0
	TPDUSubmit  TPDUKind = 1
)

// SMSMessage is a decoded EF-SMS TPDU record.
type SMSMessage struct {
	Status      string
	SMSC        string
	Kind        TPDUKind
	Address     string
	IsDeliver   bool
	Date        string // MM/DD/20YY, SMS-DELIVER only
	Time        string // HH:MM:SS, SMS-DELIVER only
	Timezone    uint8
	Text        string
	Unsupported bool // charset not decoded (8-bit / UCS-2 / reserved)
	Empty       bool
}

// cursor is a bounds-checked walk over a fixed-size SMS record, mirroring
// the pointer arithmetic in the original parser but refusing to read or
// advance past the record's end.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) remaining() int { return len(c.buf) - c.pos }

func (c *cursor) readByte() (byte, bool) {
	if c.remaining() < 1 {
		return 0, false
	}
	b := c.buf[c.pos]
	c.pos++
	return b, true
}

func (c *cursor) skip(n int) bool {
	if c.remaining() < n {
		return false
	}
	c.pos += n
	return true
}

func (c *cursor) take(n int) ([]byte, bool) {
	if c.remaining() < n {
		return nil, false
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

// ParseSMS decodes one EF-SMS record. record must be exactly 176 bytes
// (smsRecordLen); any other length is errs.InvalidParam.
func ParseSMS(record []byte) (SMSMessage, error) {
	if len(record) != smsRecordLen {
		return SMSMessage{}, errs.InvalidParam
	}

	c := &cursor{buf: record}
	var msg SMSMessage

	statusByte, _ := c.readByte()
	if int(statusByte) > len(smsStatusTable)-1 {
		return SMSMessage{}, errs.SmsInvalidStatus
	}
	msg.Status = smsStatusTable[statusByte]

	smscLenByte, _ := c.readByte()
	smscLen := int(smscLenByte) - 1
	if smscLen <= 0 || smscLen > maxSMSCLen {
		smscLen = maxSMSCLen
	}

	// TON byte, ignored.
	if _, ok := c.readByte(); !ok {
		return SMSMessage{}, errs.InvalidParam
	}

	smscDigits, ok := c.take(smscLen)
	if !ok {
		return SMSMessage{}, errs.InvalidParam
	}
	if smscDigits[0] == 0xff {
		return SMSMessage{}, errs.SmsInvalidSmsc
	}
	msg.SMSC = codec.DecodeBCD(smscDigits, true, true, false)

	tpduType, ok := c.readByte()
	if !ok {
		return SMSMessage{}, errs.InvalidParam
	}
	kind := TPDUKind(tpduType & 0x03)
	msg.Kind = kind

	switch kind {
	case TPDUDeliver, TPDUSubmit:
		msg.IsDeliver = kind == TPDUDeliver

		if kind == TPDUSubmit {
			if !c.skip(1) { // TP-MR
				return SMSMessage{}, errs.InvalidParam
			}
		}

		nibbles, ok := c.readByte()
		if !ok {
			return SMSMessage{}, errs.InvalidParam
		}
		addressBytes := (int(nibbles) + 1) / 2
		if addressBytes < minAddressLen || addressBytes > maxAddressLen {
			return SMSMessage{}, errs.SmsInvalidAddress
		}

		tonNpi, ok := c.readByte()
		if !ok {
			return SMSMessage{}, errs.InvalidParam
		}
		isAlphanumeric := tonNpi&0x70 == 0x50

		addrBuf, ok := c.take(addressBytes)
		if !ok {
			return SMSMessage{}, errs.InvalidParam
		}
		if isAlphanumeric {
			numSeptets := addressBytes * 8 / 7
			msg.Address = codec.MapChars(codec.UnpackSeptets(addrBuf, numSeptets))
		} else {
			msg.Address = codec.DecodeBCD(addrBuf, true, true, false)
		}

		if !c.skip(1) { // TP-PID
			return SMSMessage{}, errs.InvalidParam
		}

		dcs, ok := c.readByte()
		if !ok {
			return SMSMessage{}, errs.InvalidParam
		}
		charset := (dcs & 0x0c) >> 2

		if kind == TPDUSubmit {
			if !c.skip(1) { // TP-VP, relative form
				return SMSMessage{}, errs.InvalidParam
			}
		} else {
			year, ok1 := c.readByte()
			month, ok2 := c.readByte()
			day, ok3 := c.readByte()
			if !ok1 || !ok2 || !ok3 {
				return SMSMessage{}, errs.InvalidParam
			}
			msg.Date = fmt.Sprintf("%s/%s/20%s",
				codec.DecodeBCD([]byte{month}, true, false, false),
				codec.DecodeBCD([]byte{day}, true, false, false),
				codec.DecodeBCD([]byte{year}, true, false, false))

			hours, ok1 := c.readByte()
			minutes, ok2 := c.readByte()
			seconds, ok3 := c.readByte()
			if !ok1 || !ok2 || !ok3 {
				return SMSMessage{}, errs.InvalidParam
			}
			msg.Time = fmt.Sprintf("%s:%s:%s",
				codec.DecodeBCD([]byte{hours}, true, false, false),
				codec.DecodeBCD([]byte{minutes}, true, false, false),
				codec.DecodeBCD([]byte{seconds}, true, false, false))

			tz, ok := c.readByte()
			if !ok {
				return SMSMessage{}, errs.InvalidParam
			}
			msg.Timezone = tz
		}

		numSeptetsByte, ok := c.readByte()
		if !ok {
			return SMSMessage{}, errs.InvalidParam
		}
		numSeptets := int(numSeptetsByte)
		msgLen := (numSeptets*7 + 7) / 8

		remaining := c.remaining()
		if msgLen > remaining {
			msgLen = remaining
		}

		if msgLen <= 0 {
			msg.Empty = true
			return msg, nil
		}

		textBuf, ok := c.take(msgLen)
		if !ok {
			return SMSMessage{}, errs.InvalidParam
		}

		switch charset {
		case 0: // GSM 7-bit
			msg.Text = codec.MapChars(codec.UnpackSeptets(textBuf, numSeptets))
		default: // 8-bit data, UCS-2, reserved
			msg.Unsupported = true
		}

	default:
		// SMS-COMMAND, SMS-STATUS-REPORT, and reserved kinds are not
		// decoded.
	}

	return msg, nil
}
