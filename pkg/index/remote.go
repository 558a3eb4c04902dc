package index

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/debtree/pkg/cache"
	"github.com/matzehuels/debtree/pkg/errors"
	"github.com/matzehuels/debtree/pkg/httputil"
)

// indexFile is the conventional name of the package index within a
// repository, appended when the URL doesn't already point at one.
const indexFile = "Packages"

const fetchTimeout = 30 * time.Second

// Remote fetches a package index over HTTP with retry and caching.
// Raw index bytes are cached under the normalized URL so repeated runs
// against the same repository skip the network entirely until the TTL lapses.
type Remote struct {
	url    string
	client *http.Client
	cache  cache.Cache
	ttl    time.Duration
}

// NewRemote creates a Source for the repository at repoURL. The URL is used
// as-is when it already ends in "Packages"; otherwise the index filename is
// appended.
func NewRemote(repoURL string, c cache.Cache, ttl time.Duration) (*Remote, error) {
	if err := errors.ValidateURL(repoURL); err != nil {
		return nil, err
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Remote{
		url:    normalizeURL(repoURL),
		client: &http.Client{Timeout: fetchTimeout},
		cache:  c,
		ttl:    ttl,
	}, nil
}

func normalizeURL(repoURL string) string {
	if strings.HasSuffix(repoURL, indexFile) {
		return repoURL
	}
	return strings.TrimRight(repoURL, "/") + "/" + indexFile
}

// Name returns the normalized index URL.
func (r *Remote) Name() string { return r.url }

// Fetch downloads the index, transparently serving and populating the cache.
// Transient failures (connection errors, 5xx responses) are retried with
// exponential backoff; 404 and other client errors fail immediately.
func (r *Remote) Fetch(ctx context.Context, refresh bool) (string, error) {
	key := "index:" + r.url
	if !refresh {
		if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
			return string(data), nil
		}
	}

	var body []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", r.url)
		}

		resp, err := r.client.Do(req)
		if err != nil {
			return httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", r.url))
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			// fall through to read
		case resp.StatusCode == http.StatusNotFound:
			return errors.New(errors.ErrCodeIndexNotFound, "no package index at %s", r.url)
		case resp.StatusCode >= 500:
			return httputil.Retryable(errors.New(errors.ErrCodeNetwork, "%s fetching %s", resp.Status, r.url))
		default:
			return errors.New(errors.ErrCodeNetwork, "unexpected %s fetching %s", resp.Status, r.url)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "read index body"))
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	// Best effort: a failed cache write shouldn't fail the fetch.
	_ = r.cache.Set(ctx, key, body, r.ttl)

	return string(body), nil
}
