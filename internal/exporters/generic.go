package exporters

import (
	"fmt"
	"strconv"

	"github.com/view-imaging/measlist/internal/entities"
)

// TableExporter writes a measurement list to disk.
type TableExporter interface {
	Export(table *entities.Table, path string) (ExportResult, error)
}

type ExportResult struct {
	RowsWritten int `json:"rows_written"`
	Columns     int `json:"columns"`
}

// ForFormat returns the exporter for a format name ("csv" or "xlsx").
func ForFormat(format string) (TableExporter, error) {
	switch format {
	case "csv":
		return CSVExporter{}, nil
	case "xlsx":
		return XLSXExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown measurement list format: %s", format)
	}
}

// formatCell renders a row value the way the measurement list expects:
// integers without an exponent, floats with minimal digits.
func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}
