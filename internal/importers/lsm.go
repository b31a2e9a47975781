package importers

import (
	"fmt"
	"path"
	"strings"

	"github.com/view-imaging/measlist/internal/entities"
	"github.com/view-imaging/measlist/internal/lsm"
	"github.com/view-imaging/measlist/internal/vws"
)

// LSM imports Zeiss LSM image series (experiment type 20). Each .lsm
// file carries a single nested metadata block and yields exactly one
// row; there is no per-record filter to apply.
type LSM struct {
	defaults entities.DefaultValues
	reader   lsm.Reader
}

var _ Importer = (*LSM)(nil)

func NewLSM(defaults entities.DefaultValues, reader lsm.Reader) *LSM {
	return &LSM{defaults: defaults, reader: reader}
}

func (imp *LSM) ExperimentType() int            { return ExpZeissLSM }
func (imp *LSM) AssociatedExtensions() []string { return []string{".lsm"} }
func (imp *LSM) AssociatedFileType() string     { return "Zeiss LSM files" }
func (imp *LSM) MovieDataExtensions() []string  { return []string{".lsm"} }

// PathRelativeToDataDir keeps the two innermost parent directories
// plus the file stem. Unrecognized extensions resolve to the integer
// sentinel -1 and are not analyzable.
func (imp *LSM) PathRelativeToDataDir(location string) (int, any) {
	for _, ext := range imp.MovieDataExtensions() {
		if !strings.HasSuffix(location, ext) {
			continue
		}
		parts := splitLocation(location)
		if len(parts) > 3 {
			parts = parts[len(parts)-3:]
		}
		comps := append([]string{}, parts[:len(parts)-1]...)
		comps = append(comps, stem(parts[len(parts)-1]))
		return 1, path.Join(comps...)
	}
	return 0, -1
}

func (imp *LSM) ImportMetadata(files []string, filter vws.RecordFilter) (*entities.Table, error) {
	return runImport(files, filter, imp.defaults, imp.readSingle)
}

func (imp *LSM) readSingle(fle string, fleInd int, _ vws.RecordFilter) ([]entities.Row, error) {
	metadata, err := imp.reader.Read(fle)
	if err != nil {
		return nil, err
	}
	row, err := imp.convertMetadata(fleInd+1, fle, metadata)
	if err != nil {
		return nil, err
	}
	return []entities.Row{row}, nil
}

// convertMetadata maps one LSM metadata block onto a measurement-list
// row.
func (imp *LSM) convertMetadata(measu int, fle string, metadata *lsm.Metadata) (entities.Row, error) {
	scan := metadata.ScanInformation
	if len(scan.Tracks) == 0 || len(scan.Tracks[0].IlluminationChannels) == 0 {
		return nil, fmt.Errorf("lsm metadata of %s has no illumination channels", fle)
	}

	row := imp.defaults.Row()
	row[entities.ColLabel] = scan.Name
	// seconds to milliseconds
	row[entities.ColCycle] = metadata.TimeInterval * 1000
	row[entities.ColLambda] = scan.Tracks[0].IlluminationChannels[0].Wavelength
	acquired := lsm.ExcelTime(scan.Sample0Time)
	row[entities.ColUTC] = float64(acquired.UnixNano()) / 1e9
	// meters to micrometers
	row[entities.ColPxSzX] = metadata.VoxelSizeX / 1e-6
	row[entities.ColPxSzY] = metadata.VoxelSizeY / 1e-6

	analyze, dbb1 := imp.PathRelativeToDataDir(fle)
	row[entities.ColDBB1] = dbb1
	row[entities.ColAnalyze] = analyze
	row[entities.ColMeasu] = measu

	return row, nil
}

// AnimalTagMapping requires every chosen .lsm file to live in the same
// directory; the subject identifier is that directory's parent name.
func (imp *LSM) AnimalTagMapping(files []string) (map[string][]string, error) {
	if len(files) == 0 {
		return map[string][]string{}, nil
	}

	parent := path.Dir(files[0])
	for _, fle := range files[1:] {
		if path.Dir(fle) != parent {
			return nil, fmt.Errorf(
				"lsm files specified for constructing a measurement list do not belong to the same directory: %v", files)
		}
	}
	return map[string][]string{path.Base(path.Dir(parent)): files}, nil
}
