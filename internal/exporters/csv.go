package exporters

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/view-imaging/measlist/internal/entities"
)

// CSVExporter writes the measurement list as a comma-separated .lst
// file with a header row.
type CSVExporter struct{}

var _ TableExporter = CSVExporter{}

func (CSVExporter) Export(table *entities.Table, path string) (ExportResult, error) {
	f, err := os.Create(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("creating measurement list: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	columns := table.Columns()
	if err := w.Write(columns); err != nil {
		return ExportResult{}, fmt.Errorf("writing header: %w", err)
	}

	record := make([]string, len(columns))
	for _, row := range table.Rows() {
		for i, col := range columns {
			record[i] = formatCell(row[col])
		}
		if err := w.Write(record); err != nil {
			return ExportResult{}, fmt.Errorf("writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return ExportResult{}, fmt.Errorf("flushing measurement list: %w", err)
	}
	return ExportResult{RowsWritten: table.Len(), Columns: len(columns)}, nil
}
