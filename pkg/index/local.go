package index

import (
	"context"
	"os"

	"github.com/matzehuels/debtree/pkg/errors"
)

// Local reads a package index from a file on disk.
type Local struct {
	path string
}

// NewLocal creates a Source backed by the file at path.
func NewLocal(path string) *Local {
	return &Local{path: path}
}

// Name returns the file path.
func (l *Local) Name() string { return l.path }

// Fetch reads the index file. The refresh flag is ignored; local files are
// always read fresh.
func (l *Local) Fetch(ctx context.Context, refresh bool) (string, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return "", errors.New(errors.ErrCodeFileNotFound, "index file not found: %s", l.path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "read index %s", l.path)
	}
	return string(data), nil
}
