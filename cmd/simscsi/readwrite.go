package simscsi

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"simscsi/output"
)

var (
	recordLen  int
	binaryOff  int
	binaryLen  int
)

var readRecordCmd = &cobra.Command{
	Use:   "read-record <record-number>",
	Short: "READ RECORD against the currently selected linear/cyclic EF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recno, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return fmt.Errorf("invalid record number %q: %w", args[0], err)
		}

		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		data := make([]byte, recordLen)
		result := eng.ReadRecord(uint8(recno), data)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		output.PrintRawData(fmt.Sprintf("RECORD %d", recno), data)
		return nil
	},
}

var readBinaryCmd = &cobra.Command{
	Use:   "read-binary",
	Short: "READ BINARY against the currently selected transparent EF",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		data := make([]byte, binaryLen)
		result := eng.ReadBinary(uint16(binaryOff), data)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		output.PrintRawData(fmt.Sprintf("BINARY @ %04X", binaryOff), data)
		return nil
	},
}

var updateRecordCmd = &cobra.Command{
	Use:   "update-record <record-number> <hex-data>",
	Short: "UPDATE RECORD against the currently selected linear/cyclic EF",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		recno, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil {
			return fmt.Errorf("invalid record number %q: %w", args[0], err)
		}
		data, err := hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("invalid hex data: %w", err)
		}

		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		result := eng.UpdateRecord(uint8(recno), data)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		output.PrintSuccess(fmt.Sprintf("Updated record %d (%d bytes)", recno, len(data)))
		return nil
	},
}

var updateBinaryCmd = &cobra.Command{
	Use:   "update-binary <hex-data>",
	Short: "UPDATE BINARY against the currently selected transparent EF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("invalid hex data: %w", err)
		}

		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		result := eng.UpdateBinary(uint16(binaryOff), data)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		output.PrintSuccess(fmt.Sprintf("Updated %d bytes at offset %04X", len(data), binaryOff))
		return nil
	},
}

func init() {
	readRecordCmd.Flags().IntVarP(&recordLen, "length", "l", 32, "record length to read")

	readBinaryCmd.Flags().IntVarP(&binaryOff, "offset", "o", 0, "byte offset")
	readBinaryCmd.Flags().IntVarP(&binaryLen, "length", "l", 32, "number of bytes to read")

	updateBinaryCmd.Flags().IntVarP(&binaryOff, "offset", "o", 0, "byte offset")
}
