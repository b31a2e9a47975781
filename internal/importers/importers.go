package importers

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/view-imaging/measlist/internal/entities"
	"github.com/view-imaging/measlist/internal/lsm"
	"github.com/view-imaging/measlist/internal/vws"
)

// Experiment types selecting the importer variant.
const (
	ExpTillOneWavelength = 3
	ExpTillTwoWavelength = 4
	ExpZeissLSM          = 20
)

// ErrUnsupportedExperimentType is returned for experiment types no
// importer handles.
var ErrUnsupportedExperimentType = errors.New("unsupported experiment type")

// Importer converts the raw metadata of one acquisition mode into
// measurement-list rows.
type Importer interface {
	// ExperimentType returns the numeric code this importer handles.
	ExperimentType() int

	// AssociatedExtensions lists the raw-file extensions of this mode.
	AssociatedExtensions() []string

	// AssociatedFileType is the display name of the raw file type.
	AssociatedFileType() string

	// MovieDataExtensions lists the movie-data extensions recognized
	// when resolving the relative data path.
	MovieDataExtensions() []string

	// ImportMetadata reads every file in order, converts the surviving
	// records and returns the concatenated table. An empty file list
	// yields an empty table. A read or parse error on any file aborts
	// the import.
	ImportMetadata(files []string, filter vws.RecordFilter) (*entities.Table, error)

	// AnimalTagMapping groups chosen raw files by inferred subject
	// identifier.
	AnimalTagMapping(files []string) (map[string][]string, error)

	// PathRelativeToDataDir derives the analyzable flag and the
	// canonical relative movie-data path from a raw file reference.
	// The second return value is a path string, or a vendor-specific
	// sentinel when the reference has no recognized extension.
	PathRelativeToDataDir(location string) (int, any)
}

// Deps are the external raw-source collaborators. Zero-value fields
// fall back to the JSON-backed readers.
type Deps struct {
	VWS vws.ManagerFactory
	LSM lsm.Reader
}

func (d Deps) vwsFactory() vws.ManagerFactory {
	if d.VWS != nil {
		return d.VWS
	}
	return func(path string) (vws.DataManager, error) { return vws.OpenFile(path) }
}

func (d Deps) lsmReader() lsm.Reader {
	if d.LSM != nil {
		return d.LSM
	}
	return lsm.SidecarReader{}
}

// ForExperimentType returns the importer for the given experiment
// type. The mapping is explicit and exhaustive.
func ForExperimentType(expType int, defaults entities.DefaultValues, deps Deps) (Importer, error) {
	switch expType {
	case ExpTillOneWavelength:
		return NewTillOneWavelength(defaults, deps.vwsFactory()), nil
	case ExpTillTwoWavelength:
		return NewTillTwoWavelength(defaults, deps.vwsFactory()), nil
	case ExpZeissLSM:
		return NewLSM(defaults, deps.lsmReader()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedExperimentType, expType)
	}
}

// SetupExtensions returns the movie-data extensions associated with an
// experiment type.
func SetupExtensions(expType int) ([]string, error) {
	imp, err := ForExperimentType(expType, entities.StandardDefaults(), Deps{})
	if err != nil {
		return nil, err
	}
	return imp.MovieDataExtensions(), nil
}

// FiletypeInfo describes the raw files an importer reads, in the shape
// used by file pickers and usage text.
func FiletypeInfo(imp Importer) []string {
	var info []string
	for _, ext := range imp.AssociatedExtensions() {
		info = append(info, "*"+ext)
	}
	return append(info, imp.AssociatedFileType())
}

// runImport is the shared orchestration loop: for each file, read its
// rows and append them to the combined table in order.
func runImport(files []string, filter vws.RecordFilter, defaults entities.DefaultValues,
	readSingle func(fle string, fleInd int, filter vws.RecordFilter) ([]entities.Row, error)) (*entities.Table, error) {

	table := entities.NewTable(defaults.Columns())
	for fleInd, fle := range files {
		log.Infof("Parsing metadata from %s", fle)
		rows, err := readSingle(fle, fleInd, filter)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			log.Warnf("In %s: no usable measurements found for the given measurement filter", fle)
		}
		for _, row := range rows {
			table.Append(row)
		}
	}
	return table, nil
}
