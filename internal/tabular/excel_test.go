package tabular

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes an in-memory xlsx with the given sheets. Each sheet
// is a header row followed by data rows.
func buildWorkbook(t *testing.T, sheets map[string][][]any) *Workbook {
	t.Helper()
	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	wb, err := OpenWorkbook(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	return wb
}

func TestWorkbook_ReadSheet(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]any{
		"Data": {
			{" kecamatan ", "potensi"},
			{"Cibinong", 25000},
			{"Parung", 21000},
		},
	})

	tbl, err := wb.ReadSheet("Data")
	require.NoError(t, err)
	// Header labels are trimmed and upper-cased.
	require.Equal(t, []string{"KECAMATAN", "POTENSI"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	require.Equal(t, "Cibinong", tbl.Cell(0, 0))
	require.Equal(t, "25000", tbl.Cell(0, 1))
}

func TestWorkbook_FindSheetCaseInsensitive(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]any{
		"Potensi": {{"KECAMATAN"}, {"Cibinong"}},
	})

	name, ok := wb.FindSheet("POTENSI")
	require.True(t, ok)
	require.Equal(t, "Potensi", name)

	_, ok = wb.FindSheet("AKUISISI")
	require.False(t, ok)
}

func TestWorkbook_HasEventSheets(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]any{
		"POTENSI":  {{"KECAMATAN"}, {"Cibinong"}},
		"akuisisi": {{"KECAMATAN"}, {"Cibinong"}},
	})
	require.True(t, wb.HasEventSheets())

	single := buildWorkbook(t, map[string][][]any{
		"POTENSI": {{"KECAMATAN"}, {"Cibinong"}},
	})
	require.False(t, single.HasEventSheets())
}

func TestWorkbook_ReadSheetMissing(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]any{
		"Data": {{"KECAMATAN"}, {"Cibinong"}},
	})
	_, err := wb.ReadSheet("POTENSI")
	require.Error(t, err)
}
