// internal/builder/cache.go
package builder

import (
	"fmt"
	"hash/fnv"

	lru "github.com/hashicorp/golang-lru/v2"

	"mtm/internal/compiler"
)

// Cache memoizes compiled artifacts across serve-mode rebuilds. Codegen is
// a pure function of (source, options), so a content-hash hit can reuse the
// previous artifact as-is; only the route registration side effect has to
// be replayed by the caller.
type Cache struct {
	entries *lru.Cache[string, cacheEntry]
}

type cacheEntry struct {
	hash     uint64
	artifact *compiler.Artifact
}

// NewCache returns a cache bounded to size entries.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached artifact for path if the content hash matches.
func (c *Cache) Get(path string, hash uint64) (*compiler.Artifact, bool) {
	if c == nil {
		return nil, false
	}
	e, ok := c.entries.Get(path)
	if !ok || e.hash != hash {
		return nil, false
	}
	return e.artifact, true
}

// Put stores an artifact under the path and content hash.
func (c *Cache) Put(path string, hash uint64, artifact *compiler.Artifact) {
	if c == nil {
		return
	}
	c.entries.Add(path, cacheEntry{hash: hash, artifact: artifact})
}

// contentHash keys a cache entry on the source text plus the option bits
// that change generated output.
func contentHash(content string, opts BuildOptions) uint64 {
	h := fnv.New64a()
	h.Write([]byte(content))
	fmt.Fprintf(h, "|dev=%t|prod=%t", opts.Development, opts.Production)
	return h.Sum64()
}
