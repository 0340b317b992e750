package util

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-pixelgrid/images"
)

// GridFile is a decoded image file.
type GridFile struct {
	// Path is the path to the image file.
	Path string
	// Grid is the decoded pixel grid.
	Grid *images.Grid
	// Frame is the frame number parsed from the file name.
	Frame int
}

// LoadDirectoryGrids decodes every "frame-N.<ext>" image file in dir, ordered
// by frame number. Files with other extensions and subdirectories are skipped.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []GridFile: The decoded files, ascending by Frame.
// - error: Error if reading, decoding or frame number parsing fails.
func LoadDirectoryGrids(dir string) ([]GridFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "read dir")
	}

	var grids []GridFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if _, ok := images.FormatFromPath(file.Name()); !ok {
			continue
		}

		ext := filepath.Ext(file.Name())
		frame, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(file.Name(), "frame-"), ext))
		if err != nil {
			return nil, errors.Wrapf(err, "frame number of %s", file.Name())
		}

		path := filepath.Join(dir, file.Name())
		g, err := Load(path)
		if err != nil {
			return nil, err
		}
		grids = append(grids, GridFile{Path: path, Grid: g, Frame: frame})
	}

	sort.Slice(grids, func(i, j int) bool {
		return grids[i].Frame < grids[j].Frame
	})
	return grids, nil
}
