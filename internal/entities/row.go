package entities

// Column names of the measurement list. The full schema is supplied by
// the caller as a default-row template; these are the columns the
// importers themselves populate.
const (
	ColMeasu   = "Measu"
	ColLabel   = "Label"
	ColCycle   = "Cycle"
	ColLambda  = "Lambda"
	ColUTC     = "UTC"
	ColMTime   = "MTime"
	ColDBB1    = "DBB1"
	ColDBB2    = "dbb2"
	ColAnalyze = "Analyze"
	ColPxSzX   = "PxSzX"
	ColPxSzY   = "PxSzY"
)

// Row is a single measurement-list line. Values are schema-defined and
// heterogeneous (numbers, labels, path sentinels), so the row is
// map-backed rather than a fixed struct.
type Row map[string]any

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Int returns the value of col coerced to int, or 0 when absent or
// non-numeric.
func (r Row) Int(col string) int {
	switch v := r[col].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	}
	return 0
}

// Float returns the value of col coerced to float64, or 0 when absent
// or non-numeric.
func (r Row) Float(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// String returns the value of col when it is a string, otherwise "".
func (r Row) String(col string) string {
	if s, ok := r[col].(string); ok {
		return s
	}
	return ""
}
