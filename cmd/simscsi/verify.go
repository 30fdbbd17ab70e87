package simscsi

import (
	"fmt"

	"github.com/spf13/cobra"

	"simscsi/output"
)

var verifyCHVNum uint8

var verifyCHVCmd = &cobra.Command{
	Use:   "verify-chv",
	Short: "VERIFY CHV1/CHV2 (PIN) against the currently selected directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		chvPin, err := resolvePIN()
		if err != nil {
			return err
		}

		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		result := eng.VerifyCHV(verifyCHVNum, chvPin)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		output.PrintSuccess(fmt.Sprintf("CHV%d verified", verifyCHVNum))
		return nil
	},
}

func init() {
	verifyCHVCmd.Flags().Uint8Var(&verifyCHVNum, "chv", 1, "CHV index to verify (1 or 2)")
}
