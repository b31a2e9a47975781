package importers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/view-imaging/measlist/internal/entities"
	"github.com/view-imaging/measlist/internal/vws"
)

// fakeVWS serves canned records per file path.
func fakeVWS(files map[string][]vws.Record) vws.ManagerFactory {
	return func(path string) (vws.DataManager, error) {
		records, ok := files[path]
		if !ok {
			return nil, fmt.Errorf("no vws.log at %s", path)
		}
		return vws.NewFileManager(records), nil
	}
}

func singleWavelengthRecords() []vws.Record {
	return []vws.Record{
		{Label: "A_01", TimingMS: "0 100 200 300", Location: `C:\data\animal01\ms01.pst`, MonochromatorWL: 488, UTCTime: 1000},
		{Label: "A_02", TimingMS: "0 50 100", Location: `C:\data\animal01\ms02.pst`, MonochromatorWL: 488, UTCTime: 1100.5},
	}
}

func TestTillOneWavelength_ImportMetadata(t *testing.T) {
	imp := NewTillOneWavelength(entities.StandardDefaults(),
		fakeVWS(map[string][]vws.Record{"animal01.vws.log": singleWavelengthRecords()}))

	table, err := imp.ImportMetadata([]string{"animal01.vws.log"}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	first := table.Row(0)
	assert.Equal(t, 1, first.Int(entities.ColMeasu))
	assert.Equal(t, "A_01", first.String(entities.ColLabel))
	assert.Equal(t, 100.0, first.Float(entities.ColCycle))
	assert.Equal(t, 488.0, first.Float(entities.ColLambda))
	assert.Equal(t, 1000.0, first.Float(entities.ColUTC))
	assert.Equal(t, "animal01/ms01", first[entities.ColDBB1])
	assert.Equal(t, 1, first.Int(entities.ColAnalyze))
	assert.Equal(t, "00:00:00", first.String(entities.ColMTime))

	second := table.Row(1)
	assert.Equal(t, 2, second.Int(entities.ColMeasu))
	assert.Equal(t, 50.0, second.Float(entities.ColCycle))
	assert.Equal(t, "animal01/ms02", second[entities.ColDBB1])
	assert.Equal(t, "00:01:40.500000", second.String(entities.ColMTime))
}

func TestTillOneWavelength_TimingFailureKeepsRow(t *testing.T) {
	records := []vws.Record{
		{Label: "broken", TimingMS: "500", Location: `C:\data\animal01\ms01.pst`, MonochromatorWL: 488, UTCTime: 1000},
	}
	imp := NewTillOneWavelength(entities.StandardDefaults(),
		fakeVWS(map[string][]vws.Record{"a.vws.log": records}))

	table, err := imp.ImportMetadata([]string{"a.vws.log"}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	row := table.Row(0)
	assert.Equal(t, -1.0, row.Float(entities.ColCycle))
	assert.Equal(t, 0, row.Int(entities.ColAnalyze))
	// the path still resolved, the timing alone disables analysis
	assert.Equal(t, "animal01/ms01", row[entities.ColDBB1])
}

func TestTillOneWavelength_UnresolvedPathKeepsRow(t *testing.T) {
	records := []vws.Record{
		{Label: "odd", TimingMS: "0 100", Location: `C:\data\animal01\ms01.tif`, MonochromatorWL: 488, UTCTime: 1000},
	}
	imp := NewTillOneWavelength(entities.StandardDefaults(),
		fakeVWS(map[string][]vws.Record{"a.vws.log": records}))

	table, err := imp.ImportMetadata([]string{"a.vws.log"}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	row := table.Row(0)
	assert.Equal(t, "wrong extension", row[entities.ColDBB1])
	assert.Equal(t, 0, row.Int(entities.ColAnalyze))
}

func TestTillOneWavelength_Filter(t *testing.T) {
	imp := NewTillOneWavelength(entities.StandardDefaults(),
		fakeVWS(map[string][]vws.Record{"a.vws.log": singleWavelengthRecords()}))

	table, err := imp.ImportMetadata([]string{"a.vws.log"}, func(rec vws.Record) bool {
		return strings.HasSuffix(rec.Label, "_02")
	})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "A_02", table.Row(0).String(entities.ColLabel))
	// the record index survives filtering
	assert.Equal(t, 2, table.Row(0).Int(entities.ColMeasu))
}

func TestTillOneWavelength_EmptyFileList(t *testing.T) {
	imp := NewTillOneWavelength(entities.StandardDefaults(), fakeVWS(nil))

	table, err := imp.ImportMetadata(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.Equal(t, entities.StandardDefaults().Columns(), table.Columns())
}

func TestTillOneWavelength_Idempotent(t *testing.T) {
	imp := NewTillOneWavelength(entities.StandardDefaults(),
		fakeVWS(map[string][]vws.Record{"a.vws.log": singleWavelengthRecords()}))

	first, err := imp.ImportMetadata([]string{"a.vws.log"}, nil)
	require.NoError(t, err)
	second, err := imp.ImportMetadata([]string{"a.vws.log"}, nil)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestTillOneWavelength_ReadErrorAborts(t *testing.T) {
	imp := NewTillOneWavelength(entities.StandardDefaults(), fakeVWS(nil))

	_, err := imp.ImportMetadata([]string{"missing.vws.log"}, nil)
	require.Error(t, err)
}

func dualWavelengthRecords() []vws.Record {
	return []vws.Record{
		{Label: "B_01_340", TimingMS: "0 100 200", Location: `D:\exp\animal02\m01a.pst`, MonochromatorWL: 340, UTCTime: 2000},
		{Label: "B_01_380", TimingMS: "0 100 200", Location: `D:\exp\animal02\m01b.pst`, MonochromatorWL: 380, UTCTime: 2001},
		{Label: "B_02_340", TimingMS: "0 200 400", Location: `D:\exp\animal02\m02a.pst`, MonochromatorWL: 340, UTCTime: 2300},
		{Label: "B_02_380", TimingMS: "0 200 400", Location: `D:\exp\animal02\m02b.pst`, MonochromatorWL: 380, UTCTime: 2301},
	}
}

func TestTillTwoWavelength_ImportMetadata(t *testing.T) {
	imp := NewTillTwoWavelength(entities.StandardDefaults(),
		fakeVWS(map[string][]vws.Record{"animal02.vws.log": dualWavelengthRecords()}))

	table, err := imp.ImportMetadata([]string{"animal02.vws.log"}, nil)
	require.NoError(t, err)
	// two rows per pair
	require.Equal(t, 4, table.Len())

	row1 := table.Row(0)
	row2 := table.Row(1)
	assert.Equal(t, "animal02/m01a", row1[entities.ColDBB1])
	assert.Equal(t, "animal02/m01b", row1[entities.ColDBB2])
	assert.Equal(t, 1, row1.Int(entities.ColAnalyze))
	assert.Equal(t, "00:00:00", row1.String(entities.ColMTime))
	assert.Equal(t, "animal02/m01b", row2[entities.ColDBB1])
	assert.Equal(t, 0, row2.Int(entities.ColAnalyze))
	assert.Equal(t, "00:00:01", row2.String(entities.ColMTime))

	// Measu stays strictly increasing across the pairs
	previous := 0
	for i := 0; i < table.Len(); i++ {
		measu := table.Row(i).Int(entities.ColMeasu)
		assert.Greater(t, measu, previous)
		previous = measu
	}
}

func TestTillTwoWavelength_CompanionNeverAnalyzed(t *testing.T) {
	// make the companion's path resolvable while the primary fails;
	// the companion must still end up with Analyze=0
	records := []vws.Record{
		{Label: "C_340", TimingMS: "0 100", Location: `D:\exp\animal03\bad.tif`, MonochromatorWL: 340, UTCTime: 100},
		{Label: "C_380", TimingMS: "0 100", Location: `D:\exp\animal03\good.pst`, MonochromatorWL: 380, UTCTime: 101},
	}
	imp := NewTillTwoWavelength(entities.StandardDefaults(),
		fakeVWS(map[string][]vws.Record{"a.vws.log": records}))

	table, err := imp.ImportMetadata([]string{"a.vws.log"}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, 0, table.Row(0).Int(entities.ColAnalyze))
	assert.Equal(t, 0, table.Row(1).Int(entities.ColAnalyze))
	assert.Equal(t, "animal03/good", table.Row(0)[entities.ColDBB2])
}

func TestTillPathResolution(t *testing.T) {
	imp := NewTillOneWavelength(entities.StandardDefaults(), nil)

	tests := []struct {
		name        string
		location    string
		wantAnalyze int
		wantPath    any
	}{
		{name: "windows pst", location: `C:\data\animal01\ms01.pst`, wantAnalyze: 1, wantPath: "animal01/ms01"},
		{name: "posix pst", location: "/data/animal01/ms01.pst", wantAnalyze: 1, wantPath: "animal01/ms01"},
		{name: "truncated ps", location: `C:\data\animal01\ms01.ps`, wantAnalyze: 1, wantPath: "animal01/ms01"},
		{name: "wrong extension", location: `C:\data\animal01\ms01.tif`, wantAnalyze: 0, wantPath: "wrong extension"},
		{name: "bare file name", location: "ms01.pst", wantAnalyze: 1, wantPath: "ms01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyze, rel := imp.PathRelativeToDataDir(tt.location)
			assert.Equal(t, tt.wantAnalyze, analyze)
			assert.Equal(t, tt.wantPath, rel)
		})
	}
}

func TestTillPsQuirkBecomesPst(t *testing.T) {
	// a location truncated to .ps gets the trailing t restored before
	// resolution
	records := []vws.Record{
		{Label: "q", TimingMS: "0 100", Location: `C:\data\animal01\ms01.ps`, MonochromatorWL: 488, UTCTime: 10},
	}
	imp := NewTillOneWavelength(entities.StandardDefaults(),
		fakeVWS(map[string][]vws.Record{"a.vws.log": records}))

	table, err := imp.ImportMetadata([]string{"a.vws.log"}, nil)
	require.NoError(t, err)
	row := table.Row(0)
	assert.Equal(t, "animal01/ms01", row[entities.ColDBB1])
	assert.Equal(t, 1, row.Int(entities.ColAnalyze))
}

func TestFormatMTime(t *testing.T) {
	tests := []struct {
		utc, first float64
		want       string
	}{
		{1000, 1000, "00:00:00"},
		{1100, 1000, "00:01:40"},
		{1100.5, 1000, "00:01:40.500000"},
		{1000 + 3661, 1000, "01:01:01"},
		{1000 + 90000, 1000, "01:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMTime(tt.utc, tt.first))
	}
}
