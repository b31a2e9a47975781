package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/view-imaging/measlist/internal/config"
	"github.com/view-imaging/measlist/internal/exporters"
	"github.com/view-imaging/measlist/internal/importers"
	"github.com/view-imaging/measlist/internal/vws"
)

// ImportMeasurementsCommand builds a measurement list from chosen raw
// metadata files and writes it out.
type ImportMeasurementsCommand struct {
	ExperimentType int
	DataDir        string
	OutputPath     string
	Format         string
	LabelPrefix    string
	Verbose        bool
	DryRun         bool
	Files          []string
}

func NewImportMeasurementsCommand() *ImportMeasurementsCommand {
	return &ImportMeasurementsCommand{}
}

func (cmd *ImportMeasurementsCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()

	fs := flag.NewFlagSet("import-measurements", flag.ExitOnError)
	fs.IntVar(&cmd.ExperimentType, "type", 0, "Experiment type code: 3 (Till single wavelength), 4 (Till dual wavelength) or 20 (Zeiss LSM) (required)")
	fs.StringVar(&cmd.DataDir, "data-dir", cfg.Data.Dir, "Root data directory the chosen files must live under")
	fs.StringVar(&cmd.OutputPath, "out", cfg.Output.Path, "Path of the measurement list to write")
	fs.StringVar(&cmd.Format, "format", cfg.Output.Format, "Measurement list format: csv or xlsx")
	fs.StringVar(&cmd.LabelPrefix, "label-prefix", "", "Only import measurements whose label starts with this prefix")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Build the table but do not write it")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-measurements -type <code> [options] <file> [file...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import instrument metadata into a normalized measurement list.\n\n")
		fmt.Fprintf(os.Stderr, "Files are grouped by subject and every group is imported into one\n")
		fmt.Fprintf(os.Stderr, "table. Till Vision records must be pre-extracted JSON documents;\n")
		fmt.Fprintf(os.Stderr, "LSM metadata is read from <file>.json sidecars.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Single-wavelength Till import:\n")
		fmt.Fprintf(os.Stderr, "  %s import-measurements -type 3 -data-dir /data animal01.vws.json\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # LSM series, written as Excel:\n")
		fmt.Fprintf(os.Stderr, "  %s import-measurements -type 20 -format xlsx -out fly07.lst /data/fly07/day1/*.lsm\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ExperimentType == 0 {
		return fmt.Errorf("required flag -type not provided")
	}
	cmd.Files = fs.Args()
	return nil
}

func (cmd *ImportMeasurementsCommand) Run() error {
	if cmd.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	defaults, err := config.LoadDefaultValues(config.NewConfig().Data.DefaultRowPath)
	if err != nil {
		return err
	}

	importer, err := importers.ForExperimentType(cmd.ExperimentType, defaults, importers.Deps{})
	if err != nil {
		return err
	}

	mapping, err := importers.GroupChosenFiles(importer, cmd.Files, cmd.DataDir)
	if err != nil {
		return err
	}

	filter := cmd.measurementFilter()

	var totalRows int
	for tag, files := range mapping {
		table, err := importer.ImportMetadata(files, filter)
		if err != nil {
			return fmt.Errorf("importing metadata for %s: %w", tag, err)
		}
		totalRows += table.Len()

		if cmd.DryRun {
			fmt.Printf("%s: %d measurements (dry run, nothing written)\n", tag, table.Len())
			continue
		}

		exporter, err := exporters.ForFormat(cmd.Format)
		if err != nil {
			return err
		}
		out := outputPathFor(cmd.OutputPath, tag, len(mapping))
		result, err := exporter.Export(table, out)
		if err != nil {
			return fmt.Errorf("writing measurement list for %s: %w", tag, err)
		}
		fmt.Printf("%s: wrote %d measurements (%d columns) to %s\n", tag, result.RowsWritten, result.Columns, out)
	}

	fmt.Printf("Imported %d measurements across %d subjects\n", totalRows, len(mapping))
	return nil
}

func (cmd *ImportMeasurementsCommand) measurementFilter() vws.RecordFilter {
	if cmd.LabelPrefix == "" {
		return nil
	}
	prefix := cmd.LabelPrefix
	return func(rec vws.Record) bool {
		return strings.HasPrefix(rec.Label, prefix)
	}
}

// outputPathFor prefixes the output file name with the subject tag
// when more than one subject was chosen, so lists do not overwrite
// each other.
func outputPathFor(out, tag string, subjects int) string {
	if subjects == 1 {
		return out
	}
	dir, file := "", out
	if i := strings.LastIndexByte(out, '/'); i >= 0 {
		dir, file = out[:i+1], out[i+1:]
	}
	return dir + tag + "_" + file
}
