package mask

import (
	"sync"
	"testing"
)

func TestPoolGetReturnsZeroedMask(t *testing.T) {
	p := NewPool(4)
	m := p.Get(8, 4)
	if got := m.Bounds().Dx(); got != 8 {
		t.Fatalf("width = %d, want 8", got)
	}
	if got := m.Bounds().Dy(); got != 4 {
		t.Fatalf("height = %d, want 4", got)
	}
	for i := range m.Pix {
		m.Pix[i] = 0xFF
	}
	p.Put(m)

	again := p.Get(8, 4)
	if again != m {
		t.Fatal("Get did not reuse the pooled mask")
	}
	for i, v := range again.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d after reuse, want 0", i, v)
		}
	}
}

func TestPoolBucketsBySize(t *testing.T) {
	p := NewPool(4)
	p.Put(p.Get(2, 2))
	if got := p.Len(2, 2); got != 1 {
		t.Errorf("Len(2, 2) = %d, want 1", got)
	}
	if got := p.Len(3, 3); got != 0 {
		t.Errorf("Len(3, 3) = %d, want 0", got)
	}

	m := p.Get(3, 3)
	if m.Bounds().Dx() != 3 {
		t.Errorf("Get(3, 3) width = %d, want 3", m.Bounds().Dx())
	}
	if got := p.Len(2, 2); got != 1 {
		t.Errorf("Len(2, 2) after other size Get = %d, want 1", got)
	}
}

func TestPoolCapacity(t *testing.T) {
	p := NewPool(2)
	a, b, c := p.Get(1, 1), p.Get(1, 1), p.Get(1, 1)
	p.Put(a)
	p.Put(b)
	p.Put(c)
	if got := p.Len(1, 1); got != 2 {
		t.Errorf("Len = %d, want capacity 2", got)
	}
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool(0)
	p.Put(nil)
}

func TestPoolConcurrent(t *testing.T) {
	p := NewPool(0)
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := p.Get(16, 16)
			m.Pix[0] = 1
			p.Put(m)
		}()
	}
	wg.Wait()
}
