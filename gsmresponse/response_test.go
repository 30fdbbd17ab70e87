package gsmresponse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simscsi/errs"
)

func TestParse_MFDF(t *testing.T) {
	resp := make([]byte, 23)
	resp[13] = 0x80
	resp[14] = 2
	resp[15] = 5
	resp[18] = 0x83

	got, err := Parse(resp, SelectMFDF)
	assert.NoError(t, err)
	assert.False(t, got.MFDF.CHV1Enabled)
	assert.EqualValues(t, 2, got.MFDF.DFChildren)
	assert.EqualValues(t, 5, got.MFDF.EFChildren)
	assert.True(t, got.MFDF.CHV1Initialized)
	assert.EqualValues(t, 3, got.MFDF.CHV1AttemptsRemaining)
}

func TestParse_EF(t *testing.T) {
	resp := make([]byte, 15)
	resp[2], resp[3] = 0x00, 0x0a
	resp[4], resp[5] = 0x6f, 0x3a
	resp[6] = 4
	resp[13] = 1
	resp[14] = 20

	got, err := Parse(resp, SelectEF)
	assert.NoError(t, err)
	assert.EqualValues(t, 10, got.EF.FileSize)
	assert.EqualValues(t, 0x6f3a, got.EF.FileID)
	assert.Equal(t, FileTypeEF, got.EF.FileType)
	assert.Equal(t, StructureLinearFixed, got.EF.Structure)
	assert.EqualValues(t, 20, got.EF.RecordLen)
}

func TestParse_TooShort(t *testing.T) {
	_, err := Parse(make([]byte, 10), SelectEF)
	assert.Equal(t, errs.InvalidGsmResponse, err)
}

func TestParse_UnknownCommand(t *testing.T) {
	_, err := Parse(make([]byte, 30), Command(99))
	assert.Equal(t, errs.InvalidGsmResponse, err)
}
