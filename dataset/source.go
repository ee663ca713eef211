package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/costar/collab"
)

// Source produces grouped membership records.
type Source interface {
	Load(ctx context.Context) ([]collab.Group, error)
	// Describe names the source for logs without exposing credentials.
	Describe() string
}

// FileSource loads groups from a dataset file.
type FileSource struct {
	Path string
}

// Load parses the file at Path.
func (s FileSource) Load(_ context.Context) ([]collab.Group, error) {
	return LoadFile(s.Path)
}

// Describe returns the file path.
func (s FileSource) Describe() string { return "file:" + s.Path }

// LoadFile opens and parses the dataset at path.
func LoadFile(path string) ([]collab.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	groups, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return groups, nil
}
