// Package parallel provides index-range sharding for the toyGPT
// tokenizer's pair-frequency counting.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// NumChunks reports how many chunks ForChunks will split [0, n) into.
// It returns 1 when parallelism is disabled or n is too small; callers
// can pre-allocate one result slot per chunk.
func NumChunks(n int, cfg Config) int {
	if !cfg.Enabled || n < cfg.MinChunkSize || cfg.NumWorkers < 2 {
		return 1
	}
	size := chunkSize(n, cfg)
	return (n + size - 1) / size
}

func chunkSize(n int, cfg Config) int {
	size := (n + cfg.NumWorkers - 1) / cfg.NumWorkers
	if size < cfg.MinChunkSize {
		size = cfg.MinChunkSize
	}
	return size
}

// ForChunks executes f(chunk, start, end) over disjoint contiguous
// index ranges covering [0, n), one goroutine per chunk. The chunk
// argument is the range's index in [0, NumChunks(n, cfg)). Falls back
// to a single sequential call when NumChunks is 1.
func ForChunks(n int, cfg Config, f func(chunk, start, end int)) {
	if n <= 0 {
		return
	}
	if NumChunks(n, cfg) == 1 {
		f(0, 0, n)
		return
	}

	size := chunkSize(n, cfg)
	var wg sync.WaitGroup
	for c, start := 0, 0; start < n; c, start = c+1, start+size {
		end := min(start+size, n)
		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			f(c, s, e)
		}(c, start, end)
	}
	wg.Wait()
}
