package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"simscsi/device"
	"simscsi/errs"
	"simscsi/gsmresponse"
	"simscsi/transport"
)

// scriptedTransport replays a fixed sequence of (data, sense) responses,
// one per Execute call, mirroring the single-threaded, strictly ordered
// nature of a real SIM session.
type scriptedTransport struct {
	steps    []step
	calls    int
	lastData []byte
}

type step struct {
	data  []byte
	sense []byte
	err   error
}

func (s *scriptedTransport) Execute(dir transport.Direction, cdb, data, sense []byte) (int, int, error) {
	st := s.steps[s.calls]
	s.calls++
	s.lastData = append([]byte(nil), data...)
	if st.err != nil {
		return 0, 0, st.err
	}
	n := copy(data, st.data)
	m := copy(sense, st.sense)
	return n, m, nil
}

func newHandle(t *testing.T, steps []step) *Handle {
	t.Helper()
	tr := &scriptedTransport{steps: steps}
	h, err := device.Open("sg0", tr, 0)
	assert.NoError(t, err)
	return New(h)
}

func TestSelectFile_PendingBytes(t *testing.T) {
	h := newHandle(t, []step{
		{sense: []byte{0x70, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x9f, 0x16}},
	})
	result := h.SelectFile(0x3f00)
	assert.True(t, result.OK())
	assert.Equal(t, 22, result.Pending)
}

func TestSelectFile_NoSenseDataIsFailure(t *testing.T) {
	h := newHandle(t, []step{{}})
	result := h.SelectFile(0x3f00)
	assert.Equal(t, errs.NoSenseData, result.Err)
}

func TestGetResponse_ParsesEF(t *testing.T) {
	resp := make([]byte, 15)
	resp[2], resp[3] = 0x00, 0x0a
	resp[6] = 4
	resp[14] = 20

	h := newHandle(t, []step{{data: resp}})
	got, result := h.GetResponse(make([]byte, 15), 15, gsmresponse.SelectEF)
	assert.True(t, result.OK())
	assert.EqualValues(t, 10, got.EF.FileSize)
	assert.EqualValues(t, 20, got.EF.RecordLen)
}

func TestGetResponse_SenseOverridesParseSuccess(t *testing.T) {
	resp := make([]byte, 15)
	resp[6] = 4

	h := newHandle(t, []step{
		{data: resp, sense: []byte{0x70, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x98, 0x40}},
	})
	_, result := h.GetResponse(make([]byte, 15), 15, gsmresponse.SelectEF)
	assert.Equal(t, errs.GsmChvBlocked, result.Err)
}

func TestSelectAndGetResponse(t *testing.T) {
	resp := make([]byte, 15)
	resp[6] = 4

	h := newHandle(t, []step{
		{sense: []byte{0x70, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0x9f, 0x0f}},
		{data: resp},
	})
	_, result := h.SelectAndGetResponse(0x6f07, make([]byte, 15), gsmresponse.SelectEF)
	assert.True(t, result.OK())
}

func TestReadRecord_ZeroRecordInvalid(t *testing.T) {
	h := newHandle(t, []step{{}})
	result := h.ReadRecord(0, make([]byte, 10))
	assert.Equal(t, errs.InvalidParam, result.Err)
}

func TestVerifyCHV_RejectsNonDigitPin(t *testing.T) {
	h := newHandle(t, []step{{}})
	result := h.VerifyCHV(1, "12ab")
	assert.Equal(t, errs.InvalidPin, result.Err)
}

func TestVerifyCHV_RejectsTooLongPin(t *testing.T) {
	h := newHandle(t, []step{{}})
	result := h.VerifyCHV(1, "123456789")
	assert.Equal(t, errs.GsmErrorParam3, result.Err)
}

func TestVerifyCHV_SendsAsciiPaddedWith0xff(t *testing.T) {
	tr := &scriptedTransport{steps: []step{{}}}
	h, err := device.Open("sg0", tr, 0)
	assert.NoError(t, err)
	eng := New(h)

	result := eng.VerifyCHV(1, "1234")
	assert.True(t, result.OK())
	assert.Equal(t, []byte{'1', '2', '3', '4', 0xff, 0xff, 0xff, 0xff}, tr.lastData)
}

func TestClosedHandle_OperationsFail(t *testing.T) {
	tr := &scriptedTransport{steps: []step{{}}}
	dh, err := device.Open("sg0", tr, 0)
	assert.NoError(t, err)
	assert.NoError(t, dh.Close())

	eng := New(dh)
	result := eng.ReadBinary(0, make([]byte, 5))
	assert.Equal(t, errs.InvalidFileDescriptor, result.Err)
}
