package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForChunks(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 100000

	ForChunks(n, func(start, end int) {
		atomic.AddInt64(&counter, int64(end-start))
	}, cfg)

	assert.Equal(t, int64(n), counter)
}

func TestForChunks_CoversRangeOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}
	n := 1000

	seen := make([]int32, n)
	var mu sync.Mutex
	var chunks [][2]int

	ForChunks(n, func(start, end int) {
		mu.Lock()
		chunks = append(chunks, [2]int{start, end})
		mu.Unlock()
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	}, cfg)

	for i, c := range seen {
		require.Equal(t, int32(1), c, "position %d visited %d times", i, c)
	}
	assert.Greater(t, len(chunks), 1, "large input should be split")
}

func TestForChunks_Sequential(t *testing.T) {
	cfg := Sequential()

	var calls int
	ForChunks(100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	}, cfg)

	assert.Equal(t, 1, calls)
}

func TestForChunks_SmallInput(t *testing.T) {
	// Small inputs fall back to a single call.
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 64}

	var calls int
	ForChunks(cfg.MinChunkSize, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, cfg.MinChunkSize, end)
	}, cfg)

	assert.Equal(t, 1, calls)
}

func TestForChunks_Empty(t *testing.T) {
	called := false
	ForChunks(0, func(_, _ int) { called = true }, DefaultConfig())
	assert.False(t, called)
}

func BenchmarkForChunks(b *testing.B) {
	cfg := DefaultConfig()
	n := 100000
	data := make([]float64, n)

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForChunks(n, func(start, end int) {
				for j := start; j < end; j++ {
					data[j] = float64(j)
				}
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ForChunks(n, func(start, end int) {
				for j := start; j < end; j++ {
					data[j] = float64(j)
				}
			}, Sequential())
		}
	})
}
