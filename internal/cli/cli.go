// Package cli implements the debtree command-line interface.
//
// This package provides commands for visualizing Debian package dependency
// trees from local or remote package indexes, exporting them as Graphviz
// diagrams, browsing an index interactively, and managing the index cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - tree: Print the dependency tree for a package
//   - graph: Export the dependency graph as DOT, SVG, or PNG
//   - browse: Pick a package interactively and print its tree
//   - cache: Manage the package index cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/debtree/internal/config"
	"github.com/matzehuels/debtree/pkg/cache"
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Parsed 63518 packages (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// newCache builds the cache backend selected by config. Backend failures
// degrade to a null cache rather than aborting the command.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache || c.Config.Cache.Backend == config.BackendNone {
		return cache.NewNullCache()
	}

	switch c.Config.Cache.Backend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, c.Config.Cache.RedisAddr, "debtree:")
		if err != nil {
			c.Logger.Warnf("redis cache unavailable, continuing without cache: %v", err)
			return cache.NewNullCache()
		}
		return rc
	default:
		dir, err := config.CacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warnf("file cache unavailable, continuing without cache: %v", err)
			return cache.NewNullCache()
		}
		return fc
	}
}

// cacheTTL returns the configured index TTL, falling back to the default on
// config errors (validated at load time, so this is belt and braces).
func (c *CLI) cacheTTL() time.Duration {
	ttl, err := c.Config.Cache.TTLDuration()
	if err != nil {
		return config.DefaultCacheTTL
	}
	return ttl
}
