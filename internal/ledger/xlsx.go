package ledger

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "ledger"

// WriteXLSX rebuilds the spreadsheet mirror from the provided entries. The
// mirror is a single sheet with the same logical columns as the CSV surface,
// header row first, replaced wholesale rather than edited in place.
func WriteXLSX(path string, entries []Entry) error {
	book := excelize.NewFile()
	defer func() { _ = book.Close() }()

	index, err := book.NewSheet(xlsxSheet)
	if err != nil {
		return fmt.Errorf("%w: create sheet: %w", ErrWrite, err)
	}
	book.SetActiveSheet(index)
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("%w: drop default sheet: %w", ErrWrite, err)
	}

	header := make([]any, len(csvHeader))
	for i, col := range csvHeader {
		header[i] = col
	}
	if err := book.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("%w: write header: %w", ErrWrite, err)
	}

	headerStyle, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(csvHeader))
		_ = book.SetCellStyle(xlsxSheet, "A1", lastCol+"1", headerStyle)
	}

	for i, entry := range entries {
		row := []any{
			entry.Title,
			entry.URL,
			FormatDuration(entry.DurationSeconds),
			entry.Uploader,
			string(entry.Status),
			entry.DownloadedAt.Format(csvTimeFormat),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: cell name: %w", ErrWrite, err)
		}
		if err := book.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("%w: write row %d: %w", ErrWrite, i+2, err)
		}
	}

	widths := []float64{60, 50, 12, 25, 12, 20}
	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = book.SetColWidth(xlsxSheet, col, col, width)
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %s: %w", ErrWrite, path, err)
	}
	return nil
}
