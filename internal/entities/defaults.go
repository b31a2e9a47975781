package entities

// ColumnDefault is one column of the default-row template: its name and
// the value a row starts out with.
type ColumnDefault struct {
	Name  string `mapstructure:"name"`
	Value any    `mapstructure:"value"`
}

// DefaultValues is the immutable default-row template every output row
// is built from. It also fixes the column order of the resulting table,
// so all declared columns are present even when an importer does not
// populate them.
type DefaultValues struct {
	columns []ColumnDefault
}

// NewDefaultValues builds a template from ordered column defaults.
func NewDefaultValues(columns []ColumnDefault) DefaultValues {
	cols := make([]ColumnDefault, len(columns))
	copy(cols, columns)
	return DefaultValues{columns: cols}
}

// StandardDefaults returns the built-in template covering the fixed
// measurement-list schema.
func StandardDefaults() DefaultValues {
	return NewDefaultValues([]ColumnDefault{
		{Name: ColMeasu, Value: 0},
		{Name: ColLabel, Value: ""},
		{Name: ColCycle, Value: -1.0},
		{Name: ColLambda, Value: 0.0},
		{Name: ColUTC, Value: 0.0},
		{Name: ColMTime, Value: ""},
		{Name: ColDBB1, Value: ""},
		{Name: ColDBB2, Value: ""},
		{Name: ColAnalyze, Value: 1},
		{Name: ColPxSzX, Value: 0.0},
		{Name: ColPxSzY, Value: 0.0},
	})
}

// Columns returns the template's column names in declaration order.
func (d DefaultValues) Columns() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Row returns a fresh row populated with the default values. The
// template itself is never handed out, so rows cannot alias each other.
func (d DefaultValues) Row() Row {
	row := make(Row, len(d.columns))
	for _, c := range d.columns {
		row[c.Name] = c.Value
	}
	return row
}
