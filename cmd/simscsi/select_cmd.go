package simscsi

import (
	"fmt"

	"github.com/spf13/cobra"

	"simscsi/output"
)

var selectCmd = &cobra.Command{
	Use:   "select <file-id>",
	Short: "Select a GSM file by its two-byte ID (e.g. 3f00, 7f10, 6f3a)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileID, err := parseFileID(args[0])
		if err != nil {
			return err
		}

		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		result := eng.SelectFile(fileID)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		output.PrintSuccess(fmt.Sprintf("Selected %04X, %d bytes pending", fileID, result.Pending))
		return nil
	},
}
