package dataset

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Cache keeps the parse result of the default source keyed by path and
// modification time, so repeated interactions do not re-read the file.
// Invalidation replaces the stored Dataset; the old snapshot is never
// mutated, so callers holding it keep a consistent view.
type Cache struct {
	mu      sync.Mutex
	opt     Options
	path    string
	modTime time.Time
	size    int64
	ds      *Dataset
}

// NewCache creates a cache over the given source path.
func NewCache(path string, opt Options) *Cache {
	return &Cache{path: path, opt: opt}
}

// Get returns the cached Dataset, reloading the file when its modification
// time or size has changed since the last load.
func (c *Cache) Get() (*Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := os.Stat(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			c.ds = nil
			return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, c.path)
		}
		return nil, err
	}
	if c.ds != nil && info.ModTime().Equal(c.modTime) && info.Size() == c.size {
		return c.ds, nil
	}
	ds, err := Load(c.path, c.opt)
	if err != nil {
		return nil, err
	}
	c.ds = ds
	c.modTime = info.ModTime()
	c.size = info.Size()
	return ds, nil
}
