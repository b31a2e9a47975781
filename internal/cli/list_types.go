package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/view-imaging/measlist/internal/entities"
	"github.com/view-imaging/measlist/internal/importers"
)

// ListTypesCommand prints the supported experiment types and their
// file associations.
type ListTypesCommand struct{}

func NewListTypesCommand() *ListTypesCommand {
	return &ListTypesCommand{}
}

func (cmd *ListTypesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("list-types", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list-types\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the supported experiment type codes.\n")
	}
	return fs.Parse(args)
}

func (cmd *ListTypesCommand) Run() error {
	codes := []int{
		importers.ExpTillOneWavelength,
		importers.ExpTillTwoWavelength,
		importers.ExpZeissLSM,
	}

	for _, code := range codes {
		imp, err := importers.ForExperimentType(code, entities.StandardDefaults(), importers.Deps{})
		if err != nil {
			return err
		}
		fmt.Printf("%3d  %-18s (%s; movie data: %s)\n",
			code,
			imp.AssociatedFileType(),
			strings.Join(importers.FiletypeInfo(imp), ", "),
			strings.Join(imp.MovieDataExtensions(), ", "))
	}
	return nil
}
