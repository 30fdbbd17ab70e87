// Package scsigeneric binds the transport.Transport interface to a real
// /dev/sgN node via the Linux SCSI generic (sg) driver's SG_IO ioctl.
package scsigeneric

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"simscsi/errs"
	"simscsi/transport"
)

const (
	sgIoIoctl = 0x2285 // SG_IO, per <scsi/sg.h>

	sgDxferNone     = -1
	sgDxferToDev    = -2
	sgDxferFromDev  = -3
	sgInfoOkMask    = 0x1
	sgInfoOk        = 0x0
	defaultTimeoutMs = 1000
)

// sgIoHdr mirrors struct sg_io_hdr from <scsi/sg.h>. Field order and
// widths must match the kernel ABI exactly; this is the same shape used
// throughout the sg3-utils ecosystem.
type sgIoHdr struct {
	interfaceID    int32
	dxferDirection int32
	cmdLen         uint8
	mxSbLen        uint8
	iovecCount     uint16
	dxferLen       uint32
	dxferp         uintptr
	cmdp           uintptr
	sbp            uintptr
	timeout        uint32
	flags          uint32
	packID         int32
	usrPtr         uintptr
	status         uint8
	maskedStatus   uint8
	msgStatus      uint8
	sbLenWr        uint8
	hostStatus     uint16
	driverStatus   uint16
	resid          int32
	duration       uint32
	info           uint32
}

// SGDevice is a transport.Transport backed by an open /dev/sgN file
// descriptor.
type SGDevice struct {
	name string
	fd   int
}

// Open opens the given sg device node (e.g. "/dev/sg0") for SG_IO use. A
// bare sg name with no slash (e.g. "sg0") is opened under /dev.
func Open(path string) (*SGDevice, error) {
	if !strings.Contains(path, "/") {
		path = "/dev/" + path
	}
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &SGDevice{name: path, fd: fd}, nil
}

// Close closes the underlying file descriptor.
func (d *SGDevice) Close() error {
	return unix.Close(d.fd)
}

// Name returns the device node path this transport was opened against.
func (d *SGDevice) Name() string { return d.name }

// Execute implements transport.Transport by issuing one SG_IO ioctl.
// The dxfer direction is derived from dir; for transport.NoTransfer (the
// raw CDB escape hatch) no data buffer is attached at all.
func (d *SGDevice) Execute(dir transport.Direction, cdb, data, sense []byte) (int, int, error) {
	if len(cdb) == 0 {
		return 0, 0, errs.InvalidParam
	}

	hdr := sgIoHdr{
		interfaceID: 'S',
		timeout:     defaultTimeoutMs,
		cmdLen:      uint8(len(cdb)),
		cmdp:        uintptr(unsafe.Pointer(&cdb[0])),
	}

	switch dir {
	case transport.Write:
		hdr.dxferDirection = sgDxferToDev
	case transport.Read:
		hdr.dxferDirection = sgDxferFromDev
	default:
		hdr.dxferDirection = sgDxferNone
	}

	if len(data) > 0 && dir != transport.NoTransfer {
		hdr.dxferLen = uint32(len(data))
		hdr.dxferp = uintptr(unsafe.Pointer(&data[0]))
	}
	if len(sense) > 0 {
		hdr.mxSbLen = uint8(len(sense))
		hdr.sbp = uintptr(unsafe.Pointer(&sense[0]))
	}

	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), sgIoIoctl, uintptr(unsafe.Pointer(&hdr))); errno != 0 {
		return 0, 0, errs.ScsiSendError
	}

	dataXfered := int(hdr.dxferLen) - int(hdr.resid)
	senseXfered := int(hdr.sbLenWr)

	if hdr.info&sgInfoOkMask != sgInfoOk && senseXfered == 0 {
		return dataXfered, senseXfered, errs.ScsiSendError
	}

	return dataXfered, senseXfered, nil
}
