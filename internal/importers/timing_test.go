package importers

import (
	"testing"

	"github.com/view-imaging/measlist/internal/vws"
)

func TestCalculateDTFromTimingMS(t *testing.T) {
	tests := []struct {
		name    string
		timing  string
		want    float64
		wantErr bool
	}{
		{name: "four frames", timing: "0 100 200 300", want: 100},
		{name: "uneven spacing", timing: "0 50 300", want: 150},
		{name: "leading and trailing space", timing: "  0 100 200 300  ", want: 100},
		{name: "multiple spaces between frames", timing: "0  100   200", want: 100},
		{name: "fractional times", timing: "0.5 1.5 2.5", want: 1},
		{name: "single frame", timing: "500", wantErr: true},
		{name: "empty", timing: "", wantErr: true},
		{name: "non numeric", timing: "0 abc 200", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateDTFromTimingMS(tt.timing)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got dt=%v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected dt=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestTimingExtraCols_RecoversParseFailures(t *testing.T) {
	dt, analyze := TimingExtraCols(vws.Record{TimingMS: "0 100 200 300"})
	if dt != 100 || analyze != 1 {
		t.Errorf("expected (100, 1), got (%v, %d)", dt, analyze)
	}

	dt, analyze = TimingExtraCols(vws.Record{TimingMS: "500"})
	if dt != -1 || analyze != 0 {
		t.Errorf("expected (-1, 0) for a single frame time, got (%v, %d)", dt, analyze)
	}
}
