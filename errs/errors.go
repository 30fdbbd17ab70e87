// Package errs collects the flat result-code taxonomy shared by the
// transport, engine, and record-parser layers: a small integer enum that
// covers library, transport, and GSM failures in one error type, plus
// strerror/perror-style helpers for diagnostics.
package errs

import (
	"fmt"
	"io"
)

// Code is the flat ~40-variant error enumeration. It implements the error
// interface directly so a Code can travel any function's normal error
// return. Engine operations that also report a positive byte count
// return an engine.Result struct, with the count in its Pending field
// and any Code in its Err field; no engine operation returns a plain int.
type Code int

const (
	Success Code = iota

	// Library errors.
	DeviceOpenFailed
	DeviceCloseFailed
	DeviceNotSupported
	InvalidFileDescriptor
	SysfsChdirFailed
	UsbVendorOpenFailed
	UsbProductOpenFailed
	ScsiSendError
	NoSenseData
	UnknownSenseData
	InvalidPin
	MemoryAllocationError
	InvalidParam
	InvalidGsmResponse
	InvalidDeviceName
	SmsInvalidStatus
	SmsInvalidSmsc
	SmsInvalidAddress

	reserved19 // unused, mirrors the original library's reserved slot 19

	// GSM errors, mirroring the sense-word translator table.
	GsmErrorParam3
	GsmErrorParam1Or2
	GsmUnknownInstruction
	GsmWrongInstructionClass
	GsmTechnicalProblem
	GsmMemoryError
	GsmBusy
	GsmNoEfSelected
	GsmInvalidAddress
	GsmFileNotFound
	GsmFileInconsistentWithCommand
	GsmUnknownSw1
	GsmUnknownSw2
	GsmNoChvInitialized
	GsmChvVerificationFailed
	GsmChvStatusContradiction
	GsmInvalidationStatusContradiction
	GsmChvBlocked
	GsmIncreaseFailed
	GsmSecurityError
	GsmInvalidAdnRecord
)

var messages = map[Code]string{
	Success:                            "Operation succeeded",
	DeviceOpenFailed:                   "Device open failed",
	DeviceCloseFailed:                  "Device close failed",
	DeviceNotSupported:                 "Device not supported",
	InvalidFileDescriptor:              "Invalid file descriptor",
	SysfsChdirFailed:                   "sysfs directory traversal failed",
	UsbVendorOpenFailed:                "USB vendor file open failed",
	UsbProductOpenFailed:               "USB product file open failed",
	ScsiSendError:                      "ioctl() for SCSI send failed",
	NoSenseData:                        "No SCSI sense data",
	UnknownSenseData:                   "Unknown SCSI sense data",
	InvalidPin:                         "Invalid PIN",
	MemoryAllocationError:              "Memory allocation error",
	InvalidParam:                       "Invalid parameter",
	InvalidGsmResponse:                 "Invalid GSM response",
	InvalidDeviceName:                  "Invalid device name",
	SmsInvalidStatus:                   "Invalid SMS status",
	SmsInvalidSmsc:                     "Invalid SMS Center number",
	SmsInvalidAddress:                  "Invalid SMS address",
	GsmErrorParam3:                     "GSM: Incorrect parameter P3",
	GsmErrorParam1Or2:                  "GSM: Incorrect parameter P1 or P2",
	GsmUnknownInstruction:              "GSM: Unknown instruction code in command",
	GsmWrongInstructionClass:           "GSM: Wrong instruction class in command",
	GsmTechnicalProblem:                "GSM: Technical problem with no diagnostic given",
	GsmMemoryError:                     "GSM: Memory problem",
	GsmBusy:                            "GSM: SIM Application Toolkit busy",
	GsmNoEfSelected:                    "GSM: No EF selected",
	GsmInvalidAddress:                  "GSM: Out of range (invalid address)",
	GsmFileNotFound:                    "GSM: File ID or pattern not found",
	GsmFileInconsistentWithCommand:     "GSM: File inconsistent with command",
	GsmUnknownSw1:                      "GSM: Unknown status word SW1",
	GsmUnknownSw2:                      "GSM: Unknown status word SW2",
	GsmNoChvInitialized:                "GSM: No CHV initialized",
	GsmChvVerificationFailed:           "GSM: CHV verification failed",
	GsmChvStatusContradiction:          "GSM: CHV status contradiction",
	GsmInvalidationStatusContradiction: "GSM: Invalidation status contradiction",
	GsmChvBlocked:                      "GSM: CHV blocked",
	GsmIncreaseFailed:                  "GSM: Increase cannot be performed (max value reached)",
	GsmSecurityError:                   "GSM: Security error",
	GsmInvalidAdnRecord:                "GSM: Invalid ADN record",
}

// Error implements the error interface.
func (c Code) Error() string {
	return Strerror(c)
}

// Strerror maps a code to its human-readable string, falling back to
// "Unknown error N" for anything outside the table (including the
// reserved slot 19).
func Strerror(c Code) string {
	if msg, ok := messages[c]; ok {
		return msg
	}
	return fmt.Sprintf("Unknown error %d", int(c))
}

// Perror writes a perror(3)-style diagnostic line to w: "[ERROR: <str>:
// <msg>]", or with an empty prefix, just "[ERROR: <msg>]".
func Perror(w io.Writer, str string, c Code) {
	if str == "" {
		fmt.Fprintf(w, "[ERROR: %s]\n", Strerror(c))
		return
	}
	fmt.Fprintf(w, "[ERROR: %s: %s]\n", str, Strerror(c))
}
