// Package simscsi implements the scsisim CLI: cobra subcommands wrapping
// the engine package's GSM command set against a real /dev/sgN reader.
package simscsi

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"simscsi/config"
	"simscsi/device"
	"simscsi/engine"
	"simscsi/scsigeneric"
)

const version = "1.0.0"

var (
	devicePath  string
	profileName string
	configPath  string
	pin         string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:     "simscsi",
	Short:   "GSM-over-SCSI SIM card command-line client",
	Version: version,
	Long: `simscsi v` + version + `

Drives the GSM 11.11 command set (SELECT, GET RESPONSE, READ/UPDATE
RECORD, READ/UPDATE BINARY, VERIFY CHV) against a SIM reader exposed as
a Linux SCSI generic (/dev/sgN) device.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&devicePath, "device", "d", "/dev/sg0",
		"SCSI generic device node")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "generic-gsm-scsi",
		"device profile name (see config file for overlay profiles)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML config file with device defaults and profile overlays")
	rootCmd.PersistentFlags().StringVarP(&pin, "pin", "p", "",
		"CHV1 PIN; if omitted where required, prompted for interactively")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging (device open, record read/parse failures); CDB and sense bytes are not logged")

	rootCmd.AddCommand(selectCmd, responseCmd, selectAndResponseCmd,
		readRecordCmd, readBinaryCmd, updateRecordCmd, updateBinaryCmd,
		phonebookCmd, smsCmd, verifyCHVCmd, rawCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
		Prefix:          "simscsi",
	})
}

// openEngine opens devicePath under the selected profile (applying any
// config-file profile overlay first) and wraps it in an engine.Handle.
func openEngine(logger *log.Logger) (*engine.Handle, func(), error) {
	profileIndex := 0

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg.RegisterProfiles()
		if devicePath == "/dev/sg0" && cfg.Device.Node != "" {
			devicePath = cfg.Device.Node
		}
		if profileName == "generic-gsm-scsi" && cfg.Device.Profile != "" {
			profileName = cfg.Device.Profile
		}
	}

	idx, ok := findProfileByName(profileName)
	if ok {
		profileIndex = idx
	}

	logger.Debug("opening device", "path", devicePath, "profile", profileName)

	sg, err := scsigeneric.Open(devicePath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", devicePath, err)
	}

	handle, err := device.Open(devicePath, sg, profileIndex)
	if err != nil {
		sg.Close()
		return nil, nil, fmt.Errorf("initialize device handle: %w", err)
	}

	cleanup := func() {
		handle.Close()
		sg.Close()
	}

	return engine.New(handle), cleanup, nil
}

func findProfileByName(name string) (int, bool) {
	for i := 0; ; i++ {
		p, ok := device.Lookup(i)
		if !ok {
			return 0, false
		}
		if p.Name == name {
			return i, true
		}
	}
}

// resolvePIN returns pin if set, otherwise reads it interactively from
// the controlling terminal without echoing it.
func resolvePIN() (string, error) {
	if pin != "" {
		return pin, nil
	}

	fmt.Fprint(os.Stderr, "Enter CHV1 PIN: ")
	data, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read PIN: %w", err)
	}
	return string(data), nil
}
