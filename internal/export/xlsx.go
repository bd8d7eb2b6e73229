package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/estatenexus/estate-backend/internal/inventory/domain"
)

const sheetName = "Sites"

// XLSX renders the same grid as CSV into a spreadsheet. Quote wrapping
// is dropped: cells carry the bare text, and numeric columns are written
// as numbers so the sheet stays sortable.
func XLSX(sites []domain.Site, f FieldSet) (*excelize.File, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for col, h := range f.Headers() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for i, s := range sites {
		for col, v := range f.Row(s) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheetName, cell, cellValue(v)); err != nil {
				return nil, err
			}
		}
	}

	return file, nil
}

// cellValue unwraps CSV quoting and restores numeric typing for the
// spreadsheet variant.
func cellValue(v string) interface{} {
	if strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) && len(v) >= 2 {
		return v[1 : len(v)-1]
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n
	}
	return v
}
