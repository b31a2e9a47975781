// Package importers turns instrument-generated acquisition metadata
// into the normalized measurement list.
//
// # Architecture
//
// Raw files → DataManager / lsm.Reader → field mapping → entities.Row → entities.Table
//
// Each acquisition mode implements the Importer interface. The raw
// sources (Till Vision vws.log records, Zeiss LSM tag blocks) are
// external collaborators behind the vws.DataManager and lsm.Reader
// contracts; the importers only map their records onto the fixed
// measurement-list schema, resolve the relative movie-data path and
// decide analysis eligibility.
//
// # Variants
//
//   - TillOneWavelength (experiment type 3): one record sequence per
//     vws.log file, one output row per record.
//   - TillTwoWavelength (experiment type 4): two wavelength sequences
//     paired by position, two output rows per pair; the companion
//     channel is never analyzed on its own.
//   - LSM (experiment type 20): one metadata block per .lsm file, one
//     output row per file.
//
// ForExperimentType selects the variant from the numeric experiment
// type and fails on anything else.
package importers
