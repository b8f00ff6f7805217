package service

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesRapidWrites(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Close()

	var mu sync.Mutex
	var committed []string

	for _, v := range []string{"1", "14", "145", "1450"} {
		v := v
		d.Schedule("rate_base:rate_1", func() {
			mu.Lock()
			committed = append(committed, v)
			mu.Unlock()
		})
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(committed) == 1 && committed[0] == "1450"
	}, time.Second, 5*time.Millisecond, "only the final value should commit")
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Close()

	var a, b atomic.Int32
	d.Schedule("rate_base:a", func() { a.Add(1) })
	d.Schedule("rate_base:b", func() { b.Add(1) })

	assert.Eventually(t, func() bool {
		return a.Load() == 1 && b.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncerFlush(t *testing.T) {
	d := NewDebouncer(time.Hour)
	defer d.Close()

	var n atomic.Int32
	d.Schedule("k", func() { n.Add(1) })

	d.Flush("k")
	assert.Equal(t, int32(1), n.Load())

	// Flushing again is a no-op.
	d.Flush("k")
	assert.Equal(t, int32(1), n.Load())
}

func TestDebouncerCloseFlushesPending(t *testing.T) {
	d := NewDebouncer(time.Hour)

	var n atomic.Int32
	d.Schedule("k1", func() { n.Add(1) })
	d.Schedule("k2", func() { n.Add(1) })

	d.Close()
	assert.Equal(t, int32(2), n.Load())

	// After Close, schedules commit synchronously.
	d.Schedule("k3", func() { n.Add(1) })
	assert.Equal(t, int32(3), n.Load())
}
