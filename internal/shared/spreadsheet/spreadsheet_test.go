package spreadsheet_test

import (
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenRead(t *testing.T) {
	data, err := spreadsheet.Write("Report", []string{"Email", "Net Payout"}, [][]any{
		{"asha@mail.com", "1500.00"},
		{"ravi@mail.com", "900.50"},
	})
	require.NoError(t, err)

	rows, err := spreadsheet.ReadRows(data, "report.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Email", "Net Payout"}, rows[0])
	assert.Equal(t, "ravi@mail.com", rows[2][0])
}

func TestWriteSheets(t *testing.T) {
	data, err := spreadsheet.WriteSheets(
		spreadsheet.Sheet{Name: "Summary", Headers: []string{"Employee"}, Rows: [][]any{{"Asha"}}},
		spreadsheet.Sheet{Name: "AE_Logs", Headers: []string{"Employee", "ae_siteLocation"}, Rows: [][]any{{"Ravi", "Site 4"}}},
	)
	require.NoError(t, err)

	first, err := spreadsheet.ReadRows(data, "logs.xlsx")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Employee"}, {"Asha"}}, first)

	ae, err := spreadsheet.ReadSheet(data, "AE_Logs")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ravi", "Site 4"}, ae[1])

	_, err = spreadsheet.ReadSheet(data, "FA_Logs")
	assert.Error(t, err)

	_, err = spreadsheet.WriteSheets()
	assert.ErrorIs(t, err, spreadsheet.ErrEmpty)
}

func TestReadRows_CSV(t *testing.T) {
	rows, err := spreadsheet.ReadRows([]byte("\ufeffEmail, NetPayout\nasha@mail.com,100\n"), "upload.CSV")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	idx := spreadsheet.HeaderIndex(rows[0])
	assert.Equal(t, 0, idx["email"])
	assert.Equal(t, 1, idx["netpayout"])
	assert.Equal(t, "100", spreadsheet.Cell(rows[1], idx["netpayout"]))
	assert.Equal(t, "", spreadsheet.Cell(rows[1], 7))
}

func TestReadRows_Empty(t *testing.T) {
	_, err := spreadsheet.ReadRows([]byte(""), "empty.csv")
	assert.ErrorIs(t, err, spreadsheet.ErrEmpty)
}
