package graphtext

import (
	"errors"
	"fmt"
)

// Sentinel errors of the text format and command surface. Graph rule
// violations are not redeclared here; they surface from core as-is.
var (
	// ErrArgumentCount indicates a command or body line with too few or
	// too many tokens.
	ErrArgumentCount = errors.New("graphtext: incorrect argument count")
	// ErrGraphNotExist indicates a command that needs a graph before one
	// was created or loaded.
	ErrGraphNotExist = errors.New("graphtext: graph does not exist")
	// ErrEmptyInput indicates a Decode input with no lines at all.
	ErrEmptyInput = errors.New("graphtext: empty input")
	// ErrVerticesHeader indicates a missing or misplaced "vertices" marker.
	ErrVerticesHeader = errors.New("graphtext: expected vertices marker")
	// ErrEdgesHeader indicates a missing or misplaced "edges" marker.
	ErrEdgesHeader = errors.New("graphtext: expected edges marker")
	// ErrUnknownCommand indicates a mnemonic outside the command table.
	ErrUnknownCommand = errors.New("graphtext: unknown command")
)

// ArgumentError reports a token that failed to parse, by its 1-based
// position within the command arguments or format line.
type ArgumentError struct {
	Index int
	Err   error
}

// Error renders the position and the underlying parse failure.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("graphtext: incorrect argument #%d: %v", e.Index, e.Err)
}

// Unwrap exposes the parse failure to errors.Is and errors.As.
func (e *ArgumentError) Unwrap() error { return e.Err }

// FileError wraps an OS-level read or write failure with the path it
// happened on. Format errors are never wrapped in a FileError.
type FileError struct {
	Path string
	Err  error
}

// Error renders the path and the underlying failure.
func (e *FileError) Error() string {
	return fmt.Sprintf("graphtext: file %q: %v", e.Path, e.Err)
}

// Unwrap exposes the OS failure to errors.Is and errors.As.
func (e *FileError) Unwrap() error { return e.Err }
