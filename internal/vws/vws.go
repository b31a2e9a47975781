// Package vws defines the contract for reading measurement records
// extracted from Till Vision vws.log files. The vendor log parser
// itself is an external collaborator; this package only fixes the
// record shape the importers consume and ships a reader for records
// that have already been extracted to JSON.
package vws

// Record is one sub-measurement from a vws.log file, keyed by the
// vendor's field names. DT and Analyze are not present in the log;
// they are injected per record by an ExtraCols function.
type Record struct {
	// Index is the record's 0-based position within its file,
	// assigned before any filtering so it stays stable.
	Index           int
	Label           string
	TimingMS        string
	Location        string
	MonochromatorWL float64
	UTCTime         float64

	DT      float64
	Analyze int
}

// RecordFilter decides whether a record takes part in an import. A nil
// filter includes everything.
type RecordFilter func(Record) bool

// ExtraCols computes the injected dt and Analyze values for a record.
// It runs before the filter.
type ExtraCols func(Record) (dt float64, analyze int)

// DataManager is the raw metadata source for one vws.log file.
type DataManager interface {
	// AllRecords returns the file's records in log order with extra
	// columns injected and the filter applied.
	AllRecords(filter RecordFilter, extra ExtraCols) ([]Record, error)

	// TwoWavelengths splits the records into two sequences by
	// monochromator wavelength, paired by position.
	TwoWavelengths(wl1, wl2 float64, filter RecordFilter, extra ExtraCols) ([]Record, []Record, error)

	// EarliestUTC returns the smallest UTC timestamp across all of the
	// file's records, or 0 when the file has none.
	EarliestUTC() float64
}

// ManagerFactory opens the raw metadata source for a file path.
type ManagerFactory func(path string) (DataManager, error)
