package source

import (
	"context"
	"fmt"
	"os"

	"github.com/SWOT-Confluence/extract-sos/types"
)

// Dir discovers raw item names by listing the files in a data directory.
//
// File names are returned as-is; reach derivation happens in plan.Build.
// Subdirectories are ignored.
type Dir struct {
	path string
}

var _ types.ReachSource = (*Dir)(nil)

// NewDir creates a directory-backed reach source.
//
// Parameters:
//   - path: The data directory to enumerate
//
// Returns:
//   - *Dir: Initialized source (the path is not checked until listing)
func NewDir(path string) *Dir {
	return &Dir{path: path}
}

// ListRawIDs returns the file names under the data directory.
//
// Returns:
//   - []string: File names, in directory order
//   - error: Wrapped read error when the directory is unreachable
func (d *Dir) ListRawIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", d.path, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}
