package simscsi

import (
	"fmt"

	"github.com/spf13/cobra"

	"simscsi/gsmresponse"
	"simscsi/output"
	"simscsi/record"
)

const gsmFileEFADN = 0x6f3a

var phonebookCmd = &cobra.Command{
	Use:   "phonebook",
	Short: "Select EF_ADN and dump every used phonebook entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		resp, result := eng.SelectAndGetResponse(gsmFileEFADN, make([]byte, 15), gsmresponse.SelectEF)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		recordLen := int(resp.EF.RecordLen)
		if recordLen == 0 {
			return fmt.Errorf("EF_ADN reports a zero record length")
		}
		numRecords := int(resp.EF.FileSize) / recordLen

		var entries []record.ADNEntry
		for i := 1; i <= numRecords; i++ {
			buf := make([]byte, recordLen)
			readResult := eng.ReadRecord(uint8(i), buf)
			if !readResult.OK() {
				logger.Debug("read record failed", "record", i, "err", readResult.Err)
				continue
			}

			entry, err := record.ParseADN(buf)
			if err != nil {
				logger.Debug("parse ADN record failed", "record", i, "err", err)
				continue
			}
			if entry.Unused {
				continue
			}
			entries = append(entries, entry)
		}

		output.PrintPhonebook(entries)
		return nil
	},
}
