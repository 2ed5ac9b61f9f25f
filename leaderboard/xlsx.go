package leaderboard

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Leaderboard"

// WriteXLSX writes the board to a single-sheet workbook. Rank and score cells
// are numeric so the sheet can be re-sorted in a spreadsheet.
func WriteXLSX(w io.Writer, b Board) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, 0, 4)
	for _, h := range b.Header() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, e := range b.Entries {
		row := []any{e.Rank, e.Team, e.Score}
		if b.ShowDetail {
			row = append(row, e.Detail)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
