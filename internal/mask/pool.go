// Package mask provides reusable coverage masks for the software renderer.
package mask

import (
	"image"
	"sync"
)

// Pool is a thread-safe pool for reusing alpha masks.
//
// Pool groups masks by their dimensions. Renderers draw many commands
// against one target, so every command asks for masks of the same size.
type Pool struct {
	mu      sync.Mutex
	buckets map[image.Point][]*image.Alpha
	maxSize int // max masks per bucket
}

// NewPool creates a pool that keeps at most maxPerBucket masks of each size.
// A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[image.Point][]*image.Alpha),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed mask covering (0, 0)-(width, height).
func (p *Pool) Get(width, height int) *image.Alpha {
	key := image.Point{X: width, Y: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) > 0 {
		m := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()

		clear(m.Pix)
		return m
	}
	p.mu.Unlock()

	return image.NewAlpha(image.Rect(0, 0, width, height))
}

// Put returns m to the pool. Nil masks, masks not anchored at the origin and
// masks beyond the bucket capacity are discarded.
func (p *Pool) Put(m *image.Alpha) {
	if m == nil || m.Rect.Min != (image.Point{}) {
		return
	}
	key := m.Rect.Max

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, m)
}

// Len returns the number of pooled masks of the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[image.Point{X: width, Y: height}])
}
