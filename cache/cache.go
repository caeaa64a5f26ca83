// Package cache keeps Visvalingam-Whyatt importances for sequences a caller
// reduces more than once, such as one curve at several target sizes.
//
// Reduction never depends on the cache: a miss just computes importances
// from scratch, exactly as an uncached reduction would.
package cache

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/osuushi/datareduce/advanced"
	"github.com/pkg/errors"
)

const DefaultSize = 128

type entry struct {
	points      advanced.Sequence
	importances []advanced.Importance
}

// ImportanceCache maps sequences, by content, to their initial importances.
// It is safe for concurrent use.
type ImportanceCache struct {
	entries *lru.Cache[uint64, entry]

	mu           sync.Mutex
	hits, misses uint64
}

func New(size int) (*ImportanceCache, error) {
	if size <= 0 {
		return nil, errors.Errorf("cache size must be positive, got %d", size)
	}
	entries, err := lru.New[uint64, entry](size)
	if err != nil {
		return nil, errors.Wrap(err, "creating importance cache")
	}
	return &ImportanceCache{entries: entries}, nil
}

// Importances for points, computed on a miss. The returned slice is shared
// with the cache and must not be modified.
func (c *ImportanceCache) Importances(points advanced.Sequence) []advanced.Importance {
	key := Key(points)
	if cached, ok := c.entries.Get(key); ok && sameSequence(cached.points, points) {
		c.count(true)
		return cached.importances
	}
	c.count(false)
	importances := advanced.AllImportances(points)
	c.entries.Add(key, entry{points: points.Copy(), importances: importances})
	return importances
}

func (c *ImportanceCache) Len() int {
	return c.entries.Len()
}

func (c *ImportanceCache) Purge() {
	c.entries.Purge()
}

// Hit and miss counts since creation.
func (c *ImportanceCache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

func (c *ImportanceCache) count(hit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

// Key is a content hash of the coordinates, in order.
func Key(points advanced.Sequence) uint64 {
	digest := xxhash.New()
	var buf [16]byte
	for _, p := range points {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(p.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		digest.Write(buf[:])
	}
	return digest.Sum64()
}

// Hash collisions are possible, so a hit is only a hit if the points match.
func sameSequence(a, b advanced.Sequence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float64bits(a[i].X) != math.Float64bits(b[i].X) || math.Float64bits(a[i].Y) != math.Float64bits(b[i].Y) {
			return false
		}
	}
	return true
}

// VWReducer is a Visvalingam-Whyatt reducer that starts from cached
// importances. Results are identical to advanced.VWReducer.
type VWReducer struct {
	Cache *ImportanceCache
}

func (VWReducer) Strategy() advanced.Strategy {
	return advanced.VisvalingamWhyatt
}

func (r VWReducer) Reduce(points advanced.Sequence, n int) (*advanced.Reduction, error) {
	// Bad targets and no-ops don't need importances, so don't pollute the
	// cache with them.
	if n <= 2 || n >= len(points) {
		return advanced.VWReducer{}.Reduce(points, n)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, errors.Wrapf(advanced.ErrInvalidShape, "point %d (%g, %g) is not finite", i, p.X, p.Y)
		}
	}
	return advanced.VWReducer{}.ReduceWithImportances(points, n, r.Cache.Importances(points))
}

// NewReducer is advanced.NewReducer, except that Visvalingam-Whyatt goes
// through the cache.
func (c *ImportanceCache) NewReducer(strategy advanced.Strategy) (advanced.Reducer, error) {
	if strategy == advanced.VisvalingamWhyatt {
		return VWReducer{Cache: c}, nil
	}
	return advanced.NewReducer(strategy)
}
