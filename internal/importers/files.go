package importers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ErrNoFilesChosen signals that the user aborted without choosing any
// raw files.
var ErrNoFilesChosen = errors.New("user abort while choosing files")

// GroupChosenFiles validates a user's file selection against the data
// directory of the current tree and groups it by subject identifier.
// Selections outside dataDir fail with a validation error naming the
// expected root.
func GroupChosenFiles(imp Importer, filesChosen []string, dataDir string) (map[string][]string, error) {
	if len(filesChosen) == 0 {
		return nil, ErrNoFilesChosen
	}
	for _, fle := range filesChosen {
		if !insideDir(fle, dataDir) {
			return nil, fmt.Errorf(
				"the data selected is not in the expected data directory of the current tree: %s. "+
					"Please copy your data there and try again (got %s)", dataDir, fle)
		}
	}

	mapping, err := imp.AnimalTagMapping(filesChosen)
	if err != nil {
		return nil, err
	}
	log.Infof("Working on the following animal tags and their corresponding files: %v", mapping)
	return mapping, nil
}

func insideDir(fle, dir string) bool {
	if dir == "" {
		return true
	}
	rel, err := filepath.Rel(dir, fle)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
