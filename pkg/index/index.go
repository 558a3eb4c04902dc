// Package index supplies raw package-index text to the dependency core.
//
// A [Source] produces the decoded control-file blob from either a local file
// or a remote repository over HTTP. The core never performs I/O itself; all
// conventional failure modes (file absent, network unreachable, malformed
// URL) live here, surfaced before parsing ever runs.
package index

import (
	"context"
	"os"
	"time"

	"github.com/matzehuels/debtree/pkg/cache"
	"github.com/matzehuels/debtree/pkg/errors"
)

// Source supplies raw control-file text.
type Source interface {
	// Fetch returns the decoded index text. If refresh is true, any cached
	// copy is bypassed.
	Fetch(ctx context.Context, refresh bool) (string, error)
	// Name returns a human-readable identifier (path or URL).
	Name() string
}

// Detect picks a Source for the given argument: a path to an existing file
// becomes a [Local] source, anything else is treated as a repository URL.
func Detect(arg string, c cache.Cache, ttl time.Duration) (Source, error) {
	if arg == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "repository cannot be empty")
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return NewLocal(arg), nil
	}
	return NewRemote(arg, c, ttl)
}
