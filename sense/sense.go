// Package sense translates SCSI sense bytes (ASC/ASCQ) into GSM SW1/SW2
// semantics, per GSM TS 100 977 section 9.4.
package sense

import "simscsi/errs"

// Offsets locates the sense-type, ASC, and ASCQ bytes within a device's
// sense buffer; these vary per reader model and come from the active
// device profile.
type Offsets struct {
	TypeOffset int
	ASCOffset  int
	ASCQOffset int
}

// Result is either a plain success, a positive "bytes pending" count (the
// 0x91/0x9e/0x9f family), or an errs.Code failure.
type Result struct {
	Pending int
	Err     error
}

// OK reports whether the translation succeeded (including a pending
// byte count).
func (r Result) OK() bool {
	return r.Err == nil
}

func ok() Result              { return Result{} }
func pending(n byte) Result   { return Result{Pending: int(n)} }
func fail(c errs.Code) Result { return Result{Err: c} }

// Translate parses sense according to off and returns the corresponding
// Result. A sense buffer too short to hold the ASCQ byte is
// errs.NoSenseData; a sense-type byte other than 0x70 (fixed-format,
// current sense) is errs.UnknownSenseData.
func Translate(sense []byte, off Offsets) Result {
	if len(sense) < off.ASCQOffset+1 {
		return fail(errs.NoSenseData)
	}

	if sense[off.TypeOffset] != 0x70 {
		return fail(errs.UnknownSenseData)
	}

	asc := sense[off.ASCOffset]
	ascq := sense[off.ASCQOffset]

	switch asc {
	case 0x67:
		return fail(errs.GsmErrorParam3)
	case 0x6b:
		return fail(errs.GsmErrorParam1Or2)
	case 0x6d:
		return fail(errs.GsmUnknownInstruction)
	case 0x6e:
		return fail(errs.GsmWrongInstructionClass)
	case 0x6f:
		return fail(errs.GsmTechnicalProblem)

	case 0x90: // responses to commands correctly executed
		if ascq == 0x00 {
			return ok()
		}
		return fail(errs.GsmUnknownSw2)

	case 0x92: // memory management
		if ascq == 0x40 {
			return fail(errs.GsmMemoryError)
		}
		// "Command successful but after using an internal update
		// retry routine."
		return ok()

	case 0x93: // responses to commands which are postponed
		return fail(errs.GsmBusy)

	case 0x94: // referencing management
		switch ascq {
		case 0x00:
			return fail(errs.GsmNoEfSelected)
		case 0x02:
			return fail(errs.GsmInvalidAddress)
		case 0x04:
			return fail(errs.GsmFileNotFound)
		case 0x08:
			return fail(errs.GsmFileInconsistentWithCommand)
		default:
			return fail(errs.GsmUnknownSw2)
		}

	case 0x98: // security management, GSM spec section 9.4.5
		switch ascq {
		case 0x02:
			return fail(errs.GsmNoChvInitialized)
		case 0x04:
			return fail(errs.GsmChvVerificationFailed)
		case 0x08:
			return fail(errs.GsmChvStatusContradiction)
		case 0x10:
			return fail(errs.GsmInvalidationStatusContradiction)
		case 0x40:
			return fail(errs.GsmChvBlocked)
		case 0x50:
			return fail(errs.GsmIncreaseFailed)
		default:
			return fail(errs.GsmSecurityError)
		}

	case 0x91, 0x9e, 0x9f: // ME command / SIM download error / normal response data
		return pending(ascq)

	default:
		return fail(errs.GsmUnknownSw1)
	}
}
