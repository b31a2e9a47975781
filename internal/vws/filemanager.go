package vws

import (
	"encoding/json"
	"fmt"
	"os"
)

// measurementDoc is the JSON interchange format for pre-extracted
// vws.log records.
type measurementDoc struct {
	Measurements []measurementJSON `json:"measurements"`
}

type measurementJSON struct {
	Label           string  `json:"label"`
	TimingMS        string  `json:"timing_ms"`
	Location        string  `json:"location"`
	MonochromatorWL float64 `json:"monochromator_wl_nm"`
	UTCTime         float64 `json:"utc_time"`
}

// FileManager serves records that were extracted from a vws.log file
// into a JSON document, one object per sub-measurement in log order.
type FileManager struct {
	records []Record
}

var _ DataManager = (*FileManager)(nil)

// OpenFile reads a JSON measurement document from disk.
func OpenFile(path string) (*FileManager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vws measurements: %w", err)
	}
	var doc measurementDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing vws measurements from %s: %w", path, err)
	}

	m := &FileManager{records: make([]Record, len(doc.Measurements))}
	for i, raw := range doc.Measurements {
		m.records[i] = Record{
			Index:           i,
			Label:           raw.Label,
			TimingMS:        raw.TimingMS,
			Location:        raw.Location,
			MonochromatorWL: raw.MonochromatorWL,
			UTCTime:         raw.UTCTime,
		}
	}
	return m, nil
}

// NewFileManager wraps already-built records; indices are reassigned to
// their positions. Mostly useful in tests.
func NewFileManager(records []Record) *FileManager {
	recs := make([]Record, len(records))
	copy(recs, records)
	for i := range recs {
		recs[i].Index = i
	}
	return &FileManager{records: recs}
}

func (m *FileManager) AllRecords(filter RecordFilter, extra ExtraCols) ([]Record, error) {
	var out []Record
	for _, rec := range m.records {
		if extra != nil {
			rec.DT, rec.Analyze = extra(rec)
		}
		if filter != nil && !filter(rec) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (m *FileManager) TwoWavelengths(wl1, wl2 float64, filter RecordFilter, extra ExtraCols) ([]Record, []Record, error) {
	all, err := m.AllRecords(filter, extra)
	if err != nil {
		return nil, nil, err
	}
	var first, second []Record
	for _, rec := range all {
		switch rec.MonochromatorWL {
		case wl1:
			first = append(first, rec)
		case wl2:
			second = append(second, rec)
		}
	}
	return first, second, nil
}

func (m *FileManager) EarliestUTC() float64 {
	if len(m.records) == 0 {
		return 0
	}
	earliest := m.records[0].UTCTime
	for _, rec := range m.records[1:] {
		if rec.UTCTime < earliest {
			earliest = rec.UTCTime
		}
	}
	return earliest
}
