// Package device holds the read-only, compile-time profile table that
// describes, per supported reader model, how to build each command's CDB
// and where to find the sense-type/ASC/ASCQ bytes in its sense buffer.
package device

// Profile is one supported reader model's CDB templates and byte
// offsets. All slices are treated as read-only after registration: the
// engine copies a template before patching it, never mutates Profile
// itself.
type Profile struct {
	Name     string
	CDBLen   int
	SenseLen int

	CDBSelectFile    []byte
	CDBGetResponse   []byte
	CDBReadRecord    []byte
	CDBReadBinary    []byte
	CDBUpdateRecord  []byte
	CDBUpdateBinary  []byte
	CDBVerifyCHV     []byte
	CDBRawCommand    []byte

	GetResponseLenOffset int

	ReadRecordRecOffset int
	ReadRecordLenOffset int

	ReadBinaryHiOffset  int
	ReadBinaryLoOffset  int
	ReadBinaryLenOffset int

	UpdateRecordRecOffset int
	UpdateRecordLenOffset int

	UpdateBinaryHiOffset  int
	UpdateBinaryLoOffset  int
	UpdateBinaryLenOffset int

	VerifyCHVNumOffset int

	RawCmdDirectionOffset int
	RawCmdCommandOffset   int
	RawCmdP1Offset        int
	RawCmdP2Offset        int
	RawCmdP3Offset        int
	ScsiCmdRead           byte
	ScsiCmdWrite          byte

	SenseTypeOffset int
	SenseASCOffset  int
	SenseASCQOffset int

	// VendorID/ProductID identify the USB device this profile applies
	// to, matched by discovery against /sys idVendor/idProduct.
	VendorID  uint16
	ProductID uint16
}

// table is the compile-time, read-only profile registry. Index 0 is a
// generic SCSI-generic/CCID-class GSM reader profile: a single
// 5-byte CDB shape (CLA, INS, P1, P2, P3) shared by every GSM command,
// addressed the way a vendor-neutral "pass it straight through" reader
// would be. Real vendor-specific byte layouts differ only in padding
// bytes the engine never touches, so one template generalizes cleanly;
// a YAML overlay (see config.Config.RegisterProfiles) can append further
// entries at process start for a reader model not listed here.
var table = []Profile{
	{
		Name:     "generic-gsm-scsi",
		CDBLen:   5,
		SenseLen: 32,

		CDBSelectFile:   []byte{0xa0, 0xa4, 0x00, 0x00, 0x02},
		CDBGetResponse:  []byte{0xa0, 0xc0, 0x00, 0x00, 0x00},
		CDBReadRecord:   []byte{0xa0, 0xb2, 0x00, 0x04, 0x00},
		CDBReadBinary:   []byte{0xa0, 0xb0, 0x00, 0x00, 0x00},
		CDBUpdateRecord: []byte{0xa0, 0xdc, 0x00, 0x04, 0x00},
		CDBUpdateBinary: []byte{0xa0, 0xd6, 0x00, 0x00, 0x00},
		CDBVerifyCHV:    []byte{0xa0, 0x20, 0x00, 0x01, 0x08},
		CDBRawCommand:   []byte{0xa0, 0x00, 0x00, 0x00, 0x00},

		GetResponseLenOffset: 4,

		ReadRecordRecOffset: 2,
		ReadRecordLenOffset: 4,

		ReadBinaryHiOffset:  2,
		ReadBinaryLoOffset:  3,
		ReadBinaryLenOffset: 4,

		UpdateRecordRecOffset: 2,
		UpdateRecordLenOffset: 4,

		UpdateBinaryHiOffset:  2,
		UpdateBinaryLoOffset:  3,
		UpdateBinaryLenOffset: 4,

		VerifyCHVNumOffset: 3,

		RawCmdDirectionOffset: 0,
		RawCmdCommandOffset:   1,
		RawCmdP1Offset:        2,
		RawCmdP2Offset:        3,
		RawCmdP3Offset:        4,
		ScsiCmdRead:           0xa0,
		ScsiCmdWrite:          0xa0,

		SenseTypeOffset: 0,
		SenseASCOffset:  12,
		SenseASCQOffset: 13,
	},
}

// Lookup returns the profile at index, and whether index was valid.
func Lookup(index int) (Profile, bool) {
	if index < 0 || index >= len(table) {
		return Profile{}, false
	}
	return table[index], true
}

// FindByVendorProduct returns the profile index matching the given USB
// vendor/product ID pair, as used by device discovery.
func FindByVendorProduct(vendorID, productID uint16) (int, bool) {
	for i, p := range table {
		if p.VendorID == vendorID && p.ProductID == productID {
			return i, true
		}
	}
	return 0, false
}

// Register appends a profile to the table and returns its index. Used
// only at process start (by a YAML profile overlay, or in tests); the
// table is otherwise treated as fixed compile-time data.
func Register(p Profile) int {
	table = append(table, p)
	return len(table) - 1
}
