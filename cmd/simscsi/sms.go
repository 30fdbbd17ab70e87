package simscsi

import (
	"github.com/spf13/cobra"

	"simscsi/gsmresponse"
	"simscsi/output"
	"simscsi/record"
)

const gsmFileEFSMS = 0x6f3c

var smsCmd = &cobra.Command{
	Use:   "sms",
	Short: "Select EF_SMS and decode every non-empty message",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		eng, cleanup, err := openEngine(logger)
		if err != nil {
			return err
		}
		defer cleanup()

		resp, result := eng.SelectAndGetResponse(gsmFileEFSMS, make([]byte, 15), gsmresponse.SelectEF)
		if !result.OK() {
			output.PrintError(result.Err.Error())
			return result.Err
		}

		recordLen := int(resp.EF.RecordLen)
		numRecords := 0
		if recordLen > 0 {
			numRecords = int(resp.EF.FileSize) / recordLen
		}

		var messages []record.SMSMessage
		for i := 1; i <= numRecords; i++ {
			buf := make([]byte, recordLen)
			readResult := eng.ReadRecord(uint8(i), buf)
			if !readResult.OK() {
				logger.Debug("read record failed", "record", i, "err", readResult.Err)
				continue
			}

			msg, err := record.ParseSMS(buf)
			if err != nil {
				logger.Debug("parse SMS record failed", "record", i, "err", err)
				continue
			}
			if msg.Empty {
				continue
			}
			messages = append(messages, msg)
		}

		output.PrintSMS(messages)
		return nil
	},
}
