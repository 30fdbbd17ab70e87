// Package output renders command results as terminal tables, in the
// same go-pretty style used throughout this project's ecosystem.
package output

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"simscsi/gsmresponse"
	"simscsi/record"
)

// Color styles.
var (
	colorHeader  = text.Colors{text.FgCyan, text.Bold}
	colorLabel   = text.Colors{text.FgYellow}
	colorValue   = text.Colors{text.FgWhite}
	colorSuccess = text.Colors{text.FgGreen}
	colorError   = text.Colors{text.FgRed}
	colorWarn    = text.Colors{text.FgYellow}
)

// getTableStyle returns the default table style.
func getTableStyle() table.Style {
	style := table.StyleRounded
	style.Color.Header = colorHeader
	style.Color.Row = text.Colors{text.FgWhite}
	style.Color.RowAlternate = text.Colors{text.FgHiWhite}
	style.Options.SeparateRows = false
	return style
}

// newTable creates a new table writer with default settings.
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(getTableStyle())
	t.Style().Options.SeparateRows = false
	return t
}

// PrintSelectResponse prints a GET RESPONSE result for either an MF/DF
// or an EF selection.
func PrintSelectResponse(resp gsmresponse.Response) {
	fmt.Println()
	t := newTable()
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: colorLabel, WidthMin: 20},
		{Number: 2, Colors: colorValue, WidthMin: 40},
	})

	switch resp.Command {
	case gsmresponse.SelectMFDF:
		t.SetTitle("SELECT RESPONSE (MF/DF)")
		t.AppendRow(table.Row{"File ID", fmt.Sprintf("%04X", resp.MFDF.FileID)})
		t.AppendRow(table.Row{"File Type", resp.MFDF.FileType})
		t.AppendRow(table.Row{"File Memory", resp.MFDF.FileMemory})
		t.AppendRow(table.Row{"DF Children", resp.MFDF.DFChildren})
		t.AppendRow(table.Row{"EF Children", resp.MFDF.EFChildren})
		t.AppendRow(table.Row{"CHV1 Enabled", resp.MFDF.CHV1Enabled})
	case gsmresponse.SelectEF:
		t.SetTitle("SELECT RESPONSE (EF)")
		t.AppendRow(table.Row{"File ID", fmt.Sprintf("%04X", resp.EF.FileID)})
		t.AppendRow(table.Row{"File Size", resp.EF.FileSize})
		t.AppendRow(table.Row{"File Type", resp.EF.FileType})
		t.AppendRow(table.Row{"EF Structure", resp.EF.Structure})
		if resp.EF.Structure != gsmresponse.StructureTransparent {
			t.AppendRow(table.Row{"Record Length", resp.EF.RecordLen})
			numRecords := 0
			if resp.EF.RecordLen > 0 {
				numRecords = int(resp.EF.FileSize) / int(resp.EF.RecordLen)
			}
			t.AppendRow(table.Row{"Number of Records", numRecords})
		}
	}
	t.Render()
}

// PrintPhonebook prints a set of ADN phonebook entries.
func PrintPhonebook(entries []record.ADNEntry) {
	fmt.Println()
	t := newTable()
	t.SetTitle("PHONEBOOK (EF_ADN)")
	t.AppendHeader(table.Row{"#", "Name", "Number"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: colorLabel, WidthMin: 5},
		{Number: 2, Colors: colorValue, WidthMin: 30},
		{Number: 3, Colors: colorValue, WidthMin: 20},
	})

	if len(entries) == 0 {
		t.AppendRow(table.Row{"-", "(empty)", "-"})
	} else {
		for i, e := range entries {
			t.AppendRow(table.Row{i + 1, e.Name, e.Number})
		}
	}
	t.Render()
	fmt.Printf("\nTotal entries: %d\n", len(entries))
}

// PrintSMS prints a set of decoded SMS messages.
func PrintSMS(messages []record.SMSMessage) {
	fmt.Println()
	t := newTable()
	t.SetTitle("SMS MESSAGES (EF_SMS)")
	t.AppendHeader(table.Row{"#", "Kind", "Address", "Date", "Text"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: colorLabel, WidthMin: 5},
		{Number: 2, Colors: colorValue, WidthMin: 10},
		{Number: 3, Colors: colorValue, WidthMin: 15},
		{Number: 4, Colors: colorValue, WidthMin: 12},
		{Number: 5, Colors: colorValue, WidthMax: 50},
	})

	if len(messages) == 0 {
		t.AppendRow(table.Row{"-", "(empty)", "-", "-", "-"})
	} else {
		for i, m := range messages {
			text := m.Text
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			t.AppendRow(table.Row{i + 1, m.Kind, m.Address, m.Date, text})
		}
	}
	t.Render()
	fmt.Printf("\nTotal messages: %d\n", len(messages))
}

// PrintRawData prints a single buffer as a titled hex dump table.
func PrintRawData(title string, data []byte) {
	fmt.Println()
	t := newTable()
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Offset", "Bytes"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: colorLabel, WidthMin: 8},
		{Number: 2, Colors: colorValue, WidthMax: 60},
	})

	for off := 0; off < len(data); off += 16 {
		end := off + 16
		if end > len(data) {
			end = len(data)
		}
		t.AppendRow(table.Row{fmt.Sprintf("%04X", off), fmt.Sprintf("% X", data[off:end])})
	}
	t.Render()
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Println(colorError.Sprintf("✗ Error: %s", msg))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Println(colorSuccess.Sprintf("✓ %s", msg))
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Println(colorWarn.Sprintf("⚠ %s", msg))
}
