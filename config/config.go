// Package config loads the CLI's YAML configuration: default device
// node, profile selection, and an optional overlay of additional
// device.Profile entries for reader models not built into the table.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"simscsi/device"
)

// Config is the top-level on-disk shape.
type Config struct {
	Device   DeviceConfig    `yaml:"device"`
	Profiles []ProfileConfig `yaml:"profiles"`
}

// DeviceConfig names the default reader to open and, optionally, which
// profile name to use when --profile is left at its default. The profile
// is chosen by name only; the reader's vendor/product ID is not consulted.
type DeviceConfig struct {
	Node    string `yaml:"node"`
	Profile string `yaml:"profile"`
}

// ProfileConfig is one YAML-defined device.Profile overlay entry. All
// CDB template fields are plain hex-byte lists; offsets are ints in the
// same units as device.Profile.
type ProfileConfig struct {
	Name      string `yaml:"name"`
	VendorID  uint16 `yaml:"vendor_id"`
	ProductID uint16 `yaml:"product_id"`
	SenseLen  int    `yaml:"sense_len"`

	CDBSelectFile   []byte `yaml:"cdb_select_file"`
	CDBGetResponse  []byte `yaml:"cdb_get_response"`
	CDBReadRecord   []byte `yaml:"cdb_read_record"`
	CDBReadBinary   []byte `yaml:"cdb_read_binary"`
	CDBUpdateRecord []byte `yaml:"cdb_update_record"`
	CDBUpdateBinary []byte `yaml:"cdb_update_binary"`
	CDBVerifyCHV    []byte `yaml:"cdb_verify_chv"`
	CDBRawCommand   []byte `yaml:"cdb_raw_command"`

	GetResponseLenOffset int `yaml:"get_response_len_offset"`

	ReadRecordRecOffset int `yaml:"read_record_rec_offset"`
	ReadRecordLenOffset int `yaml:"read_record_len_offset"`

	ReadBinaryHiOffset  int `yaml:"read_binary_hi_offset"`
	ReadBinaryLoOffset  int `yaml:"read_binary_lo_offset"`
	ReadBinaryLenOffset int `yaml:"read_binary_len_offset"`

	UpdateRecordRecOffset int `yaml:"update_record_rec_offset"`
	UpdateRecordLenOffset int `yaml:"update_record_len_offset"`

	UpdateBinaryHiOffset  int `yaml:"update_binary_hi_offset"`
	UpdateBinaryLoOffset  int `yaml:"update_binary_lo_offset"`
	UpdateBinaryLenOffset int `yaml:"update_binary_len_offset"`

	VerifyCHVNumOffset int `yaml:"verify_chv_num_offset"`

	RawCmdDirectionOffset int   `yaml:"raw_cmd_direction_offset"`
	RawCmdCommandOffset   int   `yaml:"raw_cmd_command_offset"`
	RawCmdP1Offset        int   `yaml:"raw_cmd_p1_offset"`
	RawCmdP2Offset        int   `yaml:"raw_cmd_p2_offset"`
	RawCmdP3Offset        int   `yaml:"raw_cmd_p3_offset"`
	ScsiCmdRead           uint8 `yaml:"scsi_cmd_read"`
	ScsiCmdWrite          uint8 `yaml:"scsi_cmd_write"`

	SenseTypeOffset int `yaml:"sense_type_offset"`
	SenseASCOffset  int `yaml:"sense_asc_offset"`
	SenseASCQOffset int `yaml:"sense_ascq_offset"`
}

// Load reads and parses the YAML file at path. Unknown fields are
// rejected, matching the config-loading convention used elsewhere in
// this project's ecosystem: a typo in the file should fail loudly
// rather than silently falling back to a default.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that device.node is set and that every profile overlay
// has a name and a non-empty cdb_select_file. The other CDB templates and
// the offsets are not checked.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Device.Node) == "" {
		return fmt.Errorf("config.device.node is required")
	}

	for i, p := range c.Profiles {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("config.profiles[%d].name is required", i)
		}
		if len(p.CDBSelectFile) == 0 {
			return fmt.Errorf("config.profiles[%d] (%s): cdb_select_file is required", i, p.Name)
		}
	}
	return nil
}

// RegisterProfiles appends every profile overlay entry to the
// device package's profile table and returns the resulting indices, in
// the same order as c.Profiles.
func (c *Config) RegisterProfiles() []int {
	indices := make([]int, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		indices = append(indices, device.Register(toDeviceProfile(p)))
	}
	return indices
}

func toDeviceProfile(p ProfileConfig) device.Profile {
	return device.Profile{
		Name:      p.Name,
		CDBLen:    len(p.CDBSelectFile),
		SenseLen:  p.SenseLen,
		VendorID:  p.VendorID,
		ProductID: p.ProductID,

		CDBSelectFile:   p.CDBSelectFile,
		CDBGetResponse:  p.CDBGetResponse,
		CDBReadRecord:   p.CDBReadRecord,
		CDBReadBinary:   p.CDBReadBinary,
		CDBUpdateRecord: p.CDBUpdateRecord,
		CDBUpdateBinary: p.CDBUpdateBinary,
		CDBVerifyCHV:    p.CDBVerifyCHV,
		CDBRawCommand:   p.CDBRawCommand,

		GetResponseLenOffset: p.GetResponseLenOffset,

		ReadRecordRecOffset: p.ReadRecordRecOffset,
		ReadRecordLenOffset: p.ReadRecordLenOffset,

		ReadBinaryHiOffset:  p.ReadBinaryHiOffset,
		ReadBinaryLoOffset:  p.ReadBinaryLoOffset,
		ReadBinaryLenOffset: p.ReadBinaryLenOffset,

		UpdateRecordRecOffset: p.UpdateRecordRecOffset,
		UpdateRecordLenOffset: p.UpdateRecordLenOffset,

		UpdateBinaryHiOffset:  p.UpdateBinaryHiOffset,
		UpdateBinaryLoOffset:  p.UpdateBinaryLoOffset,
		UpdateBinaryLenOffset: p.UpdateBinaryLenOffset,

		VerifyCHVNumOffset: p.VerifyCHVNumOffset,

		RawCmdDirectionOffset: p.RawCmdDirectionOffset,
		RawCmdCommandOffset:   p.RawCmdCommandOffset,
		RawCmdP1Offset:        p.RawCmdP1Offset,
		RawCmdP2Offset:        p.RawCmdP2Offset,
		RawCmdP3Offset:        p.RawCmdP3Offset,
		ScsiCmdRead:           p.ScsiCmdRead,
		ScsiCmdWrite:          p.ScsiCmdWrite,

		SenseTypeOffset: p.SenseTypeOffset,
		SenseASCOffset:  p.SenseASCOffset,
		SenseASCQOffset: p.SenseASCQOffset,
	}
}
