package pricetrack

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// this file contains functions to handle the export format.
// It should remain a single sheet, directly usable in a spreadsheet.

// trackedSheet is the sheet name of the tracked table in an export workbook.
const trackedSheet = "Price Tracker"

// ExportTrackedXLSX writes the tracked table to an xlsx workbook at path,
// one row per TrackedRow in the given (display) order, with the same column
// headers and display formatting as the CSV table.
func ExportTrackedXLSX(path string, rows []TrackedRow) error {
	if len(rows) == 0 {
		return &EmptyResultError{Table: path}
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(trackedSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for col, name := range TrackedColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(trackedSheet, cell, name); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for col, value := range encodeTrackedRow(row) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(trackedSheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("could not save export %q: %w", path, err)
	}
	return nil
}
