package polyhedron

import (
	"math"

	"github.com/chazu/goldberg/pkg/vec"
)

// DefaultPrecision is the vertex cache quantization factor. Independent
// computations of the same geometric point (two subdivided triangles
// sharing an edge, both sides of a truncated edge) must agree to within
// 1/DefaultPrecision for the point to be shared.
const DefaultPrecision = 1e4

// cacheKey is a position quantized to the cache precision.
type cacheKey struct {
	x, y, z int64
}

// vertexCache maps quantized coordinates to position indices. It lives
// only as long as the Polyhedron under construction.
type vertexCache struct {
	precision float64
	index     map[cacheKey]int
}

func newVertexCache(precision float64) *vertexCache {
	return &vertexCache{
		precision: precision,
		index:     make(map[cacheKey]int),
	}
}

func (c *vertexCache) key(v vec.Vector3) cacheKey {
	return cacheKey{
		x: int64(math.Round(v.X * c.precision)),
		y: int64(math.Round(v.Y * c.precision)),
		z: int64(math.Round(v.Z * c.precision)),
	}
}

func (c *vertexCache) lookup(v vec.Vector3) (cacheKey, int, bool) {
	k := c.key(v)
	i, ok := c.index[k]
	return k, i, ok
}

func (c *vertexCache) store(k cacheKey, i int) {
	c.index[k] = i
}
