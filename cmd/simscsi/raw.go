package simscsi

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"simscsi/output"
	"simscsi/transport"
)

var (
	rawWrite        bool
	rawCommandByte  uint8
	rawP1, rawP2    uint8
	rawP3           uint8
	rawDataHex      string
	rawReadLen      int
)

var rawCmd = &cobra.Command{
	Use:   "raw",
	Short: "Issue a raw GSM command not otherwise exposed by this CLI",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		dir := transport.Read
		data := make([]byte, rawReadLen)
		if rawWrite {
			dir = transport.Write
			data, err = hex.DecodeString(rawDataHex)
			if err != nil {
				return fmt.Errorf("invalid hex data: %w", err)
			}
		}

		result := eng.RawCommand(dir, rawCommandByte, rawP1, rawP2, rawP3, data)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		if dir == transport.Read {
			output.PrintRawData("RAW RESPONSE", data)
		} else {
			output.PrintSuccess("raw write command succeeded")
		}
		return nil
	},
}

func init() {
	rawCmd.Flags().BoolVar(&rawWrite, "write", false, "send data to the card instead of reading from it")
	rawCmd.Flags().Uint8Var(&rawCommandByte, "cmd", 0, "GSM instruction byte")
	rawCmd.Flags().Uint8Var(&rawP1, "p1", 0, "P1 parameter byte")
	rawCmd.Flags().Uint8Var(&rawP2, "p2", 0, "P2 parameter byte")
	rawCmd.Flags().Uint8Var(&rawP3, "p3", 0, "P3 parameter byte")
	rawCmd.Flags().StringVar(&rawDataHex, "data", "", "hex-encoded data to write (with --write)")
	rawCmd.Flags().IntVar(&rawReadLen, "length", 32, "number of bytes to read (without --write)")
}
