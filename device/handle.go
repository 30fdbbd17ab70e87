package device

import (
	"simscsi/errs"
	"simscsi/transport"
)

// Handle is an opaque handle to one opened reader: a transport, a copy of
// the profile (chosen by index at Open) holding its CDB templates and
// sense offsets, and a
// human-readable name. Operations fail fast once the handle is closed.
type Handle struct {
	name      string
	transport transport.Transport
	profile   Profile
	closed    bool
}

// Open wraps t as a device handle using the profile at profileIndex.
// An invalid profileIndex is a programming error signalled as
// errs.DeviceNotSupported, mirroring the original library's refusal to
// drive an unrecognized reader model.
func Open(name string, t transport.Transport, profileIndex int) (*Handle, error) {
	p, ok := Lookup(profileIndex)
	if !ok {
		return nil, errs.DeviceNotSupported
	}
	return &Handle{name: name, transport: t, profile: p}, nil
}

// Close marks the handle closed. Further operations against it fail with
// errs.InvalidFileDescriptor.
func (h *Handle) Close() error {
	if h.closed {
		return errs.DeviceCloseFailed
	}
	h.closed = true
	return nil
}

func (h *Handle) Name() string { return h.name }

// Profile returns the device's CDB-template / sense-offset profile.
func (h *Handle) Profile() Profile { return h.profile }

// Transport returns the underlying transport, or errs.InvalidFileDescriptor
// if the handle has been closed.
func (h *Handle) Transport() (transport.Transport, error) {
	if h.closed {
		return nil, errs.InvalidFileDescriptor
	}
	return h.transport, nil
}

// Closed reports whether Close has been called on this handle.
func (h *Handle) Closed() bool { return h.closed }
