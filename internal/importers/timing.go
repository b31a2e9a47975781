package importers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/view-imaging/measlist/internal/vws"
)

// CalculateDTFromTimingMS computes the inter-frame interval in
// milliseconds from a whitespace-separated list of per-frame
// timestamps: (last - first) / (frames - 1).
func CalculateDTFromTimingMS(timingMS string) (float64, error) {
	fields := strings.Fields(strings.TrimSpace(timingMS))
	if len(fields) < 2 {
		return 0, fmt.Errorf("need at least two frame times, got %d", len(fields))
	}
	times := make([]float64, len(fields))
	for i, f := range fields {
		t, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, fmt.Errorf("parsing frame time %q: %w", f, err)
		}
		times[i] = t
	}
	return (times[len(times)-1] - times[0]) / float64(len(times)-1), nil
}

// TimingExtraCols injects dt and Analyze into a raw record. A timing
// string that cannot be parsed is not fatal: the record keeps dt=-1
// and is marked as not to be analyzed.
func TimingExtraCols(rec vws.Record) (float64, int) {
	dt, err := CalculateDTFromTimingMS(rec.TimingMS)
	if err != nil {
		return -1, 0
	}
	// at least two frames, so there is a time worth analyzing
	return dt, 1
}
