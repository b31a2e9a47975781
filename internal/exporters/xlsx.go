package exporters

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/view-imaging/measlist/internal/entities"
)

const sheetName = "Sheet1"

// XLSXExporter writes the measurement list as an Excel workbook, the
// on-disk flavor downstream analysis tooling opens directly.
type XLSXExporter struct{}

var _ TableExporter = XLSXExporter{}

func (XLSXExporter) Export(table *entities.Table, path string) (ExportResult, error) {
	f := excelize.NewFile()
	defer f.Close()

	columns := table.Columns()
	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return ExportResult{}, fmt.Errorf("writing header: %w", err)
	}

	for i, row := range table.Rows() {
		cells := make([]any, len(columns))
		for j, col := range columns {
			cells[j] = row[col]
		}
		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return ExportResult{}, err
		}
		if err := f.SetSheetRow(sheetName, start, &cells); err != nil {
			return ExportResult{}, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return ExportResult{}, fmt.Errorf("saving measurement list: %w", err)
	}
	return ExportResult{RowsWritten: table.Len(), Columns: len(columns)}, nil
}
