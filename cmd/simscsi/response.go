package simscsi

import (
	"github.com/spf13/cobra"

	"simscsi/gsmresponse"
	"simscsi/output"
)

var responseLen int
var responseIsMFDF bool

var responseCmd = &cobra.Command{
	Use:   "response",
	Short: "Issue a GET RESPONSE against the currently selected file",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		kind := gsmresponse.SelectEF
		if responseIsMFDF {
			kind = gsmresponse.SelectMFDF
		}

		resp, result := eng.GetResponse(make([]byte, responseLen), responseLen, kind)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		output.PrintSelectResponse(resp)
		return nil
	},
}

func init() {
	responseCmd.Flags().IntVarP(&responseLen, "length", "l", 15,
		"number of GET RESPONSE bytes to request")
	responseCmd.Flags().BoolVar(&responseIsMFDF, "mfdf", false,
		"parse the response as an MF/DF descriptor instead of an EF descriptor")
}

var selectAndResponseCmd = &cobra.Command{
	Use:   "select-response <file-id>",
	Short: "SELECT a file, then GET RESPONSE its descriptor in one step",
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

		kind := gsmresponse.SelectEF
		if responseIsMFDF {
			kind = gsmresponse.SelectMFDF
		}

		buf := make([]byte, responseLen)
		resp, result := eng.SelectAndGetResponse(fileID, buf, kind)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		output.PrintSelectResponse(resp)
		return nil
	},
}

func init() {
	selectAndResponseCmd.Flags().IntVarP(&responseLen, "length", "l", 15,
		"max GET RESPONSE bytes to request")
	selectAndResponseCmd.Flags().BoolVar(&responseIsMFDF, "mfdf", false,
		"parse the response as an MF/DF descriptor instead of an EF descriptor")
}
