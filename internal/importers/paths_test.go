package importers

import (
	"reflect"
	"testing"
)

func TestSplitLocation(t *testing.T) {
	tests := []struct {
		location string
		want     []string
	}{
		{`C:\data\animal01\ms01.pst`, []string{"C:", "data", "animal01", "ms01.pst"}},
		{"/data/animal01/ms01.pst", []string{"data", "animal01", "ms01.pst"}},
		{`mixed\style/path.pst`, []string{"mixed", "style", "path.pst"}},
		{"bare.pst", []string{"bare.pst"}},
	}
	for _, tt := range tests {
		if got := splitLocation(tt.location); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitLocation(%q) = %v, expected %v", tt.location, got, tt.want)
		}
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{"ms01.pst", "ms01"},
		{"animal01.vws.log", "animal01.vws"},
		{"noext", "noext"},
		{".hidden", ".hidden"},
	}
	for _, tt := range tests {
		if got := stem(tt.name); got != tt.want {
			t.Errorf("stem(%q) = %q, expected %q", tt.name, got, tt.want)
		}
	}
}
