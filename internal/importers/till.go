package importers

import (
	"fmt"
	"math"
	"path"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/view-imaging/measlist/internal/entities"
	"github.com/view-imaging/measlist/internal/vws"
)

// Wavelength pair of the dual-wavelength (Fura) protocol, in nm.
const (
	dualWavelengthFirst  = 340
	dualWavelengthSecond = 380
)

// tillImporter carries what the Till Vision variants share: the
// default-row template, the vws.log source factory and the field
// mapping from vws nomenclature to measurement-list nomenclature.
type tillImporter struct {
	defaults entities.DefaultValues
	open     vws.ManagerFactory
}

func (t *tillImporter) AssociatedExtensions() []string { return []string{".vws.log"} }
func (t *tillImporter) AssociatedFileType() string     { return "VWS Log Files" }
func (t *tillImporter) MovieDataExtensions() []string  { return []string{".pst", ".ps"} }

// PathRelativeToDataDir keeps only the location's tail (parent
// directory plus file stem) as the canonical key, since the storage
// root may be reorganized. Locations without a recognized movie-data
// extension are not analyzable.
func (t *tillImporter) PathRelativeToDataDir(location string) (int, any) {
	for _, ext := range t.MovieDataExtensions() {
		if !strings.HasSuffix(location, ext) {
			continue
		}
		parts := splitLocation(location)
		if len(parts) < 2 {
			return 1, stem(parts[len(parts)-1])
		}
		return 1, path.Join(parts[len(parts)-2], stem(parts[len(parts)-1]))
	}
	return 0, "wrong extension"
}

// convertRecord maps one vws record onto a measurement-list row.
func (t *tillImporter) convertRecord(rec vws.Record) entities.Row {
	log.Infof("Parsing measurement with label %s", rec.Label)

	row := t.defaults.Row()
	row[entities.ColMeasu] = rec.Index + 1
	row[entities.ColLabel] = rec.Label

	expectedDataFile := rec.Location
	if strings.HasSuffix(expectedDataFile, "ps") {
		// one version of the tillVision macro eats the last t of the
		// file name
		log.Warn("adding a t to the .ps file name to make it .pst")
		expectedDataFile += "t"
	}

	analyze, dbb1 := t.PathRelativeToDataDir(expectedDataFile)
	if analyze == 0 {
		log.Warnf("Data file %s not found! Setting analyze=0 for this measurement", expectedDataFile)
	}
	defaultAnalyze := 1
	if _, ok := row[entities.ColAnalyze]; ok {
		defaultAnalyze = row.Int(entities.ColAnalyze)
	}
	row[entities.ColDBB1] = dbb1
	row[entities.ColAnalyze] = analyze * rec.Analyze * defaultAnalyze
	row[entities.ColCycle] = rec.DT
	row[entities.ColLambda] = rec.MonochromatorWL
	row[entities.ColUTC] = rec.UTCTime

	return row
}

// formatMTime renders the time elapsed since the file's earliest UTC
// timestamp as a zero-padded HH:MM:SS duration string, keeping
// fractional seconds when present. Whole days are dropped from the
// string.
func formatMTime(utc, firstUTC float64) string {
	elapsed := utc - firstUTC
	whole := int(math.Floor(elapsed)) % 86400
	frac := elapsed - math.Floor(elapsed)

	s := fmt.Sprintf("%02d:%02d:%02d", whole/3600, (whole%3600)/60, whole%60)
	if frac > 0 {
		s += strings.TrimPrefix(fmt.Sprintf("%.6f", frac), "0")
	}
	return s
}

// AnimalTagMapping groups Till files one per subject; the identifier
// is the file name up to the first period.
func (t *tillImporter) AnimalTagMapping(files []string) (map[string][]string, error) {
	mapping := make(map[string][]string, len(files))
	for _, fle := range files {
		parts := splitLocation(fle)
		name := parts[len(parts)-1]
		tag, _, _ := strings.Cut(name, ".")
		mapping[tag] = []string{fle}
	}
	return mapping, nil
}

// TillOneWavelength imports single-wavelength Till Vision acquisitions
// (experiment type 3). Each record of a vws.log file becomes one row.
type TillOneWavelength struct {
	tillImporter
}

var _ Importer = (*TillOneWavelength)(nil)

func NewTillOneWavelength(defaults entities.DefaultValues, open vws.ManagerFactory) *TillOneWavelength {
	return &TillOneWavelength{tillImporter{defaults: defaults, open: open}}
}

func (imp *TillOneWavelength) ExperimentType() int { return ExpTillOneWavelength }

func (imp *TillOneWavelength) ImportMetadata(files []string, filter vws.RecordFilter) (*entities.Table, error) {
	return runImport(files, filter, imp.defaults, imp.readSingle)
}

func (imp *TillOneWavelength) readSingle(fle string, _ int, filter vws.RecordFilter) ([]entities.Row, error) {
	manager, err := imp.open(fle)
	if err != nil {
		return nil, err
	}
	records, err := manager.AllRecords(filter, TimingExtraCols)
	if err != nil {
		return nil, err
	}
	firstUTC := manager.EarliestUTC()

	rows := make([]entities.Row, 0, len(records))
	for _, rec := range records {
		row := imp.convertRecord(rec)
		row[entities.ColMTime] = formatMTime(rec.UTCTime, firstUTC)
		rows = append(rows, row)
	}
	return rows, nil
}

// TillTwoWavelength imports dual-wavelength Till Vision acquisitions
// (experiment type 4). Records come in two sequences paired by
// position; each pair becomes two rows, channel 1 then channel 2. The
// second channel is a companion and never analyzed on its own.
type TillTwoWavelength struct {
	tillImporter
}

var _ Importer = (*TillTwoWavelength)(nil)

func NewTillTwoWavelength(defaults entities.DefaultValues, open vws.ManagerFactory) *TillTwoWavelength {
	return &TillTwoWavelength{tillImporter{defaults: defaults, open: open}}
}

func (imp *TillTwoWavelength) ExperimentType() int { return ExpTillTwoWavelength }

func (imp *TillTwoWavelength) ImportMetadata(files []string, filter vws.RecordFilter) (*entities.Table, error) {
	return runImport(files, filter, imp.defaults, imp.readSingle)
}

func (imp *TillTwoWavelength) readSingle(fle string, _ int, filter vws.RecordFilter) ([]entities.Row, error) {
	manager, err := imp.open(fle)
	if err != nil {
		return nil, err
	}
	first, second, err := manager.TwoWavelengths(dualWavelengthFirst, dualWavelengthSecond, filter, TimingExtraCols)
	if err != nil {
		return nil, err
	}
	firstUTC := manager.EarliestUTC()

	pairs := len(first)
	if len(second) < pairs {
		pairs = len(second)
	}

	rows := make([]entities.Row, 0, 2*pairs)
	for i := 0; i < pairs; i++ {
		row1 := imp.convertRecord(first[i])
		row2 := imp.convertRecord(second[i])

		row1[entities.ColDBB2] = row2[entities.ColDBB1]
		row1[entities.ColMTime] = formatMTime(first[i].UTCTime, firstUTC)
		row2[entities.ColAnalyze] = 0
		row2[entities.ColMTime] = formatMTime(second[i].UTCTime, firstUTC)

		rows = append(rows, row1, row2)
	}
	return rows, nil
}
