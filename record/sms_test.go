package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simscsi/codec"
	"simscsi/errs"
)

func buildDeliverRecord(t *testing.T, text string) []byte {
	t.Helper()
	record := make([]byte, smsRecordLen)
	i := 0
	record[i] = 0x01 // status: received and read
	i++
	record[i] = 0x02 // SMSC len = 1 (2-1)
	i++
	record[i] = 0x91 // TON
	i++
	record[i] = 0x55 // SMSC digit byte (not 0xff)
	i++
	record[i] = 0x00 // TPDU type: SMS-DELIVER
	i++
	record[i] = 0x04 // address length nibbles -> (4+1)/2 = 2 bytes
	i++
	record[i] = 0x81 // TON/NPI, not alphanumeric
	i++
	record[i] = 0x21 // address digits "12"
	record[i+1] = 0x43
	i += 2
	i++          // TP-PID
	record[i] = 0 // TP-DCS: charset 0 (GSM 7-bit)
	i++
	record[i] = 0x01 // year
	record[i+1] = 0x02
	record[i+2] = 0x03
	i += 3
	record[i] = 0x04 // hours
	record[i+1] = 0x05
	record[i+2] = 0x06
	i += 3
	record[i] = 0x07 // timezone
	i++

	septets := make([]byte, len(text))
	for j := 0; j < len(text); j++ {
		septets[j] = text[j]
	}
	packed := codec.PackSeptets(septets)
	record[i] = byte(len(septets))
	i++
	copy(record[i:], packed)

	return record
}

func TestParseSMS_Deliver(t *testing.T) {
	record := buildDeliverRecord(t, "hi")
	got, err := ParseSMS(record)
	assert.NoError(t, err)
	assert.True(t, got.IsDeliver)
	assert.Equal(t, "hi", got.Text)
	assert.Equal(t, "20/30/2010", got.Date)
}

func TestParseSMS_WrongLength(t *testing.T) {
	_, err := ParseSMS(make([]byte, 100))
	assert.Equal(t, errs.InvalidParam, err)
}

func TestParseSMS_InvalidStatus(t *testing.T) {
	record := make([]byte, smsRecordLen)
	record[0] = 0xff
	_, err := ParseSMS(record)
	assert.Equal(t, errs.SmsInvalidStatus, err)
}

func TestParseSMS_InvalidSmsc(t *testing.T) {
	record := make([]byte, smsRecordLen)
	record[0] = 0x00
	record[1] = 0x02
	record[2] = 0x91
	record[3] = 0xff
	_, err := ParseSMS(record)
	assert.Equal(t, errs.SmsInvalidSmsc, err)
}

func TestParseSMS_InvalidAddressLength(t *testing.T) {
	record := make([]byte, smsRecordLen)
	record[0] = 0x00
	record[1] = 0x02
	record[2] = 0x91
	record[3] = 0x55
	record[4] = 0x00 // TPDU type DELIVER
	record[5] = 0x00 // address length nibbles -> 0 bytes, invalid
	_, err := ParseSMS(record)
	assert.Equal(t, errs.SmsInvalidAddress, err)
}

func TestParseSMS_EmptyMessage(t *testing.T) {
	record := buildDeliverRecord(t, "")
	got, err := ParseSMS(record)
	assert.NoError(t, err)
	assert.True(t, got.Empty)
}
