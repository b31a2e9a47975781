// Package lsm defines the contract for reading the structured metadata
// block of Zeiss LSM acquisitions. The TIFF tag reader itself is an
// external collaborator; this package fixes the metadata shape the
// importer consumes and ships a reader for tag blocks that have
// already been extracted to JSON sidecar files.
package lsm

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// IlluminationChannel describes one illumination channel of a track.
type IlluminationChannel struct {
	Wavelength float64 `json:"Wavelength"`
}

// Track is one acquisition track with its illumination channels.
type Track struct {
	IlluminationChannels []IlluminationChannel `json:"IlluminationChannels"`
}

// ScanInformation is the scan sub-block of the LSM metadata.
type ScanInformation struct {
	Name string `json:"Name"`
	// Sample0Time is the acquisition start as an Excel serial date
	// (days since 1899-12-30).
	Sample0Time float64 `json:"Sample0time"`
	Tracks      []Track `json:"Tracks"`
}

// Metadata is the nested LSM tag block for one .lsm file. Field names
// follow the vendor's keys: TimeIntervall is in seconds, voxel sizes in
// meters.
type Metadata struct {
	ScanInformation ScanInformation `json:"ScanInformation"`
	TimeInterval    float64         `json:"TimeIntervall"`
	VoxelSizeX      float64         `json:"VoxelSizeX"`
	VoxelSizeY      float64         `json:"VoxelSizeY"`
}

// Reader yields the metadata block for an .lsm file path.
type Reader interface {
	Read(path string) (*Metadata, error)
}

// SidecarReader reads metadata from a "<file>.json" sidecar next to the
// .lsm file.
type SidecarReader struct{}

var _ Reader = SidecarReader{}

func (SidecarReader) Read(path string) (*Metadata, error) {
	data, err := os.ReadFile(path + ".json")
	if err != nil {
		return nil, fmt.Errorf("reading lsm metadata sidecar: %w", err)
	}
	var md Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("parsing lsm metadata for %s: %w", path, err)
	}
	return &md, nil
}

// excelEpoch is day zero of the Excel serial date system.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ExcelTime converts an Excel serial date to a time.Time in UTC.
func ExcelTime(serial float64) time.Time {
	return excelEpoch.Add(time.Duration(serial * float64(24*time.Hour)))
}
