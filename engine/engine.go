// Package engine implements the GSM-over-SCSI command set: SELECT, GET
// RESPONSE, READ BINARY, READ RECORD, UPDATE BINARY, UPDATE RECORD,
// VERIFY CHV, and raw pass-through. Each command builds a CDB from the
// device's profile template, patches in its specific fields, executes it
// over the transport, and translates the returned sense bytes.
package engine

import (
	"simscsi/codec"
	"simscsi/device"
	"simscsi/errs"
	"simscsi/gsmresponse"
	"simscsi/sense"
	"simscsi/transport"
)

const verifyCHVDataLen = 8

// Result is the public return shape every engine operation shares: the
// same "int" channel the original library used for both error codes and
// positive byte counts, expressed here as a small sum type so callers
// can switch on it without magic-number comparisons. Pending carries the
// bytes-pending count on the SELECT family; Err carries any failure.
type Result struct {
	Pending int
	Err     error
}

func (r Result) OK() bool { return r.Err == nil }

func senseOffsets(p device.Profile) sense.Offsets {
	return sense.Offsets{
		TypeOffset: p.SenseTypeOffset,
		ASCOffset:  p.SenseASCOffset,
		ASCQOffset: p.SenseASCQOffset,
	}
}

func fromSense(r sense.Result) Result {
	if r.Err != nil {
		return Result{Err: r.Err}
	}
	return Result{Pending: r.Pending}
}

// rawExecute runs one transport call and returns whatever sense bytes
// came back, without interpreting them. GetResponse needs this: GSM
// response parsing must run unconditionally, with any sense bytes
// overriding the parse result afterward, rather than preempting it.
func rawExecute(h *Handle, dir transport.Direction, cdb, data []byte) (senseBytes []byte, err error) {
	t, err := h.handle.Transport()
	if err != nil {
		return nil, err
	}

	senseBuf := make([]byte, h.handle.Profile().SenseLen)
	_, senseLen, err := t.Execute(dir, cdb, data, senseBuf)
	if err != nil {
		return nil, errs.ScsiSendError
	}
	return senseBuf[:senseLen], nil
}

// execute runs one transport call and, if any sense bytes came back,
// translates them into the returned Result; otherwise it reports ok
// with no pending count, matching the original library's "only
// overwrite the return code if sense data was transferred" rule. When
// requireSense is set (SELECT only: "there should ALWAYS be sense data
// after selecting a file"), an empty sense buffer is itself a failure.
func execute(h *Handle, dir transport.Direction, cdb, data []byte, requireSense bool) Result {
	t, err := h.handle.Transport()
	if err != nil {
		return Result{Err: err}
	}

	senseBuf := make([]byte, h.handle.Profile().SenseLen)
	_, senseLen, err := t.Execute(dir, cdb, data, senseBuf)
	if err != nil {
		return Result{Err: errs.ScsiSendError}
	}

	if senseLen > 0 {
		return fromSense(sense.Translate(senseBuf[:senseLen], senseOffsets(h.handle.Profile())))
	}
	if requireSense {
		return Result{Err: errs.NoSenseData}
	}
	return Result{}
}

// Handle wraps a device.Handle with the GSM command operations. All
// commands are issued strictly in order on one handle: the SIM itself is
// a serial state machine (one "currently selected file", one
// authentication state), so concurrent access to a single Handle is a
// caller error, not something the engine guards against.
type Handle struct {
	handle *device.Handle
}

// New wraps an opened device.Handle for GSM command use.
func New(h *device.Handle) *Handle {
	return &Handle{handle: h}
}

// SelectFile selects the given two-byte file ID. On success the result's
// Pending field carries the number of bytes the subsequent GET RESPONSE
// should request — there is always sense data after a SELECT.
func (h *Handle) SelectFile(file uint16) Result {
	p := h.handle.Profile()
	cdb := append([]byte(nil), p.CDBSelectFile...)

	data := []byte{byte(file >> 8), byte(file & 0xff)}

	return execute(h, transport.Write, cdb, data, true)
}

// GetResponse requests len bytes of GET RESPONSE data and parses it
// according to cmd.
func (h *Handle) GetResponse(data []byte, length int, cmd gsmresponse.Command) (gsmresponse.Response, Result) {
	p := h.handle.Profile()
	cdb := append([]byte(nil), p.CDBGetResponse...)
	cdb[p.GetResponseLenOffset] = byte(length)

	buf := data[:length]
	senseBytes, err := rawExecute(h, transport.Read, cdb, buf)
	if err != nil {
		return gsmresponse.Response{}, Result{Err: err}
	}

	resp, parseErr := gsmresponse.Parse(buf, cmd)
	result := Result{Err: parseErr}

	// Sense data, when present, is authoritative over the parse result:
	// it both signals success/failure and (for SELECT-family ASCQ
	// values) carries the normal-response-data length that propagates
	// out of this call.
	if len(senseBytes) > 0 {
		result = fromSense(sense.Translate(senseBytes, senseOffsets(p)))
	}

	return resp, result
}

// SelectAndGetResponse composes SelectFile and GetResponse: if SELECT
// reports n bytes pending, GET RESPONSE is issued for min(n, len(buf)).
func (h *Handle) SelectAndGetResponse(file uint16, buf []byte, cmd gsmresponse.Command) (gsmresponse.Response, Result) {
	sel := h.SelectFile(file)
	if sel.Err != nil {
		return gsmresponse.Response{}, sel
	}
	if sel.Pending <= 0 {
		return gsmresponse.Response{}, Result{Err: errs.NoSenseData}
	}

	length := sel.Pending
	if length > len(buf) {
		length = len(buf)
	}
	return h.GetResponse(buf, length, cmd)
}

// ReadRecord reads record number recno (one-indexed; 0 is invalid) into
// data[:len(data)].
func (h *Handle) ReadRecord(recno uint8, data []byte) Result {
	if recno == 0 {
		return Result{Err: errs.InvalidParam}
	}

	p := h.handle.Profile()
	cdb := append([]byte(nil), p.CDBReadRecord...)
	cdb[p.ReadRecordRecOffset] = recno
	cdb[p.ReadRecordLenOffset] = byte(len(data))

	return execute(h, transport.Read, cdb, data, false)
}

// ReadBinary reads len(data) bytes starting at offset.
func (h *Handle) ReadBinary(offset uint16, data []byte) Result {
	p := h.handle.Profile()
	cdb := append([]byte(nil), p.CDBReadBinary...)
	cdb[p.ReadBinaryHiOffset] = byte(offset >> 8)
	cdb[p.ReadBinaryLoOffset] = byte(offset & 0xff)
	cdb[p.ReadBinaryLenOffset] = byte(len(data))

	return execute(h, transport.Read, cdb, data, false)
}

// UpdateRecord writes data to record number recno.
func (h *Handle) UpdateRecord(recno uint8, data []byte) Result {
	if recno == 0 {
		return Result{Err: errs.InvalidParam}
	}

	p := h.handle.Profile()
	cdb := append([]byte(nil), p.CDBUpdateRecord...)
	cdb[p.UpdateRecordRecOffset] = recno
	cdb[p.UpdateRecordLenOffset] = byte(len(data))

	return execute(h, transport.Write, cdb, data, false)
}

// UpdateBinary writes data starting at offset.
func (h *Handle) UpdateBinary(offset uint16, data []byte) Result {
	p := h.handle.Profile()
	cdb := append([]byte(nil), p.CDBUpdateBinary...)
	cdb[p.UpdateBinaryHiOffset] = byte(offset >> 8)
	cdb[p.UpdateBinaryLoOffset] = byte(offset & 0xff)
	cdb[p.UpdateBinaryLenOffset] = byte(len(data))

	return execute(h, transport.Write, cdb, data, false)
}

func isDigitString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// VerifyCHV verifies pin against CHV index chv (1 or 2). pin must be all
// ASCII decimal digits (errs.InvalidPin otherwise) of length at most 8
// (errs.GsmErrorParam3 otherwise). The SIM expects the PIN's ASCII
// codepoints padded with 0xff, not packed BCD.
func (h *Handle) VerifyCHV(chv uint8, pin string) Result {
	if !isDigitString(pin) {
		return Result{Err: errs.InvalidPin}
	}
	if len(pin) > verifyCHVDataLen {
		return Result{Err: errs.GsmErrorParam3}
	}

	p := h.handle.Profile()
	cdb := append([]byte(nil), p.CDBVerifyCHV...)
	cdb[p.VerifyCHVNumOffset] = chv

	data := make([]byte, verifyCHVDataLen)
	for i := range data {
		data[i] = 0xff
	}
	copy(data, pin)

	return execute(h, transport.Write, cdb, data, false)
}

// RawCommand builds a CDB from dir, command, p1, p2, p3 with no semantic
// checking and passes data straight through, for callers that need a
// GSM command this engine doesn't otherwise expose.
func (h *Handle) RawCommand(dir transport.Direction, command, p1, p2, p3 byte, data []byte) Result {
	p := h.handle.Profile()
	cdb := append([]byte(nil), p.CDBRawCommand...)

	if dir == transport.Write {
		cdb[p.RawCmdDirectionOffset] = p.ScsiCmdWrite
	} else {
		cdb[p.RawCmdDirectionOffset] = p.ScsiCmdRead
	}
	cdb[p.RawCmdCommandOffset] = command
	cdb[p.RawCmdP1Offset] = p1
	cdb[p.RawCmdP2Offset] = p2
	cdb[p.RawCmdP3Offset] = p3

	return execute(h, dir, cdb, data, false)
}

// HexDump is a thin re-export so callers of this package don't need a
// separate import just to log a CDB or data buffer.
func HexDump(buf []byte) string { return codec.HexDump(buf) }
