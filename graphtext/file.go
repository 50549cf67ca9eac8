package graphtext

import (
	"os"

	"github.com/katalvlaran/stepflow/core"
)

// ReadFile parses the graph file at path. OS failures come back as a
// *FileError; format failures come back as Decode returns them.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile renders g into the file at path, creating or truncating
// it. Every failure, including the final close, comes back as a
// *FileError.
func WriteFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	if err := Encode(f, g); err != nil {
		f.Close()

		return &FileError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Path: path, Err: err}
	}

	return nil
}
