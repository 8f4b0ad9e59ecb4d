package renderer

import (
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsEveryTile(t *testing.T) {
	var processed int64
	pool := NewWorkerPool(4, func(tile Tile) {
		atomic.AddInt64(&processed, 1)
	})

	tiles := BuildTiles(64, 64, 8)
	for _, tile := range tiles {
		if err := pool.Enqueue(tile); err != nil {
			t.Fatalf("Enqueue: unexpected error: %v", err)
		}
	}
	pool.Close()

	if int(processed) != len(tiles) {
		t.Errorf("expected %d tiles processed, got %d", len(tiles), processed)
	}
}

func TestWorkerPoolRejectsEnqueueAfterClose(t *testing.T) {
	pool := NewWorkerPool(2, func(tile Tile) {})
	pool.Close()

	err := pool.Enqueue(Tile{X0: 0, Y0: 0, X1: 1, Y1: 1})
	if err == nil {
		t.Fatal("Enqueue: expected an error after Close")
	}
	if _, ok := err.(*PoolClosedError); !ok {
		t.Errorf("Enqueue: expected a *PoolClosedError, got %T", err)
	}
}

func TestWorkerPoolCloseIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(1, func(tile Tile) {})
	pool.Close()
	pool.Close() // must not panic on double-close
}
