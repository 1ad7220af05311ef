package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// cacheSchemaVersion guards against decoding a payload from an older,
// incompatible shape; bump it whenever BodyRecord changes.
const cacheSchemaVersion uint16 = 1

// BodyRecord is the on-disk rebuild-cache payload for one hot-reload unit:
// the content hash W last emitted a shared object for. The watcher writes
// these records but does not read them back; its skip-unchanged check uses
// its in-memory known_patches map.
type BodyRecord struct {
	Schema    uint16
	Name      string
	Signature string
	BodyHash  string
}

// DiskCache is a msgpack-backed rebuild cache, one file per unit, keyed by
// unit name rather than by content-addressed digest: a unit's identity is
// its name for the lifetime of the process (R2/R3 forbid renaming it in
// place), so the name is already a stable key.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache creates the rebuild-cache directory under runDir.
func OpenDiskCache(runDir string) (*DiskCache, error) {
	dir := filepath.Join(runDir, "cache")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(name string) string {
	return filepath.Join(c.dir, name+".mp")
}

// Put atomically writes rec for name.
func (c *DiskCache) Put(name string, rec BodyRecord) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	rec.Schema = cacheSchemaVersion
	p := c.pathFor(name)
	tmp, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := msgpack.NewEncoder(tmp).Encode(&rec); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// Get reads the cached record for name, if any.
func (c *DiskCache) Get(name string) (BodyRecord, bool, error) {
	if c == nil {
		return BodyRecord{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return BodyRecord{}, false, nil
		}
		return BodyRecord{}, false, err
	}
	defer f.Close()

	var rec BodyRecord
	if err := msgpack.NewDecoder(f).Decode(&rec); err != nil {
		return BodyRecord{}, false, fmt.Errorf("artifact: decode cache entry for %q: %w", name, err)
	}
	if rec.Schema != cacheSchemaVersion {
		return BodyRecord{}, false, nil
	}
	return rec, true, nil
}
