package scsigeneric

import (
	"strconv"

	"github.com/jochenvg/go-udev"

	"simscsi/device"
	"simscsi/errs"
)

// Discovered describes one scsi_generic node found on the system, along
// with the USB vendor/product IDs of the device it belongs to.
type Discovered struct {
	Devnode   string
	VendorID  uint16
	ProductID uint16
}

// Discover enumerates every scsi_generic (/dev/sgN) node via udev and
// reads the idVendor/idProduct sysfs attributes of its parent USB
// device, replacing the original library's manual "cd -P
// /sys/class/scsi_generic/sgN, then cd ../../../../../.." sysfs walk
// with the equivalent udev parent-device lookup.
func Discover() ([]Discovered, error) {
	u := udev.Udev{}
	enum := u.NewEnumerateFromUdev(&u)
	if err := enum.AddMatchSubsystem("scsi_generic"); err != nil {
		return nil, errs.SysfsChdirFailed
	}

	devices, err := enum.Devices()
	if err != nil {
		return nil, errs.SysfsChdirFailed
	}

	var out []Discovered
	for _, d := range devices {
		devnode := d.Devnode()
		if devnode == "" {
			continue
		}

		parent := d.ParentWithSubsystemDevtype("usb", "usb_device")
		if parent == nil {
			continue
		}

		vendor, err := parseHexAttr(parent.SysattrValue("idVendor"))
		if err != nil {
			continue
		}
		product, err := parseHexAttr(parent.SysattrValue("idProduct"))
		if err != nil {
			continue
		}

		out = append(out, Discovered{Devnode: devnode, VendorID: vendor, ProductID: product})
	}

	return out, nil
}

func parseHexAttr(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}

// FindSupported runs Discover and returns the first scsi_generic node
// whose USB vendor/product pair matches a registered device.Profile,
// alongside that profile's index.
func FindSupported() (Discovered, int, error) {
	found, err := Discover()
	if err != nil {
		return Discovered{}, 0, err
	}

	for _, d := range found {
		if idx, ok := device.FindByVendorProduct(d.VendorID, d.ProductID); ok {
			return d, idx, nil
		}
	}

	return Discovered{}, 0, errs.DeviceNotSupported
}
