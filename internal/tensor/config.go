package tensor

import (
	"sync/atomic"

	"k8s.io/klog/v2"

	"github.com/born-ml/xpress/internal/parallel"
)

var fillConfig atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	fillConfig.Store(&cfg)
}

// Configure sets how result tensors are filled. Intended to be called once at
// start-up; tensors being built concurrently keep the configuration they started with.
func Configure(cfg parallel.Config) {
	klog.V(1).Infof("tensor fill config: enabled=%t workers=%d min_chunk=%d",
		cfg.Enabled, cfg.NumWorkers, cfg.MinChunkSize)
	fillConfig.Store(&cfg)
}

// CurrentConfig returns the active fill configuration.
func CurrentConfig() parallel.Config {
	return *fillConfig.Load()
}

func forChunks(n int, f func(start, end int)) {
	parallel.ForChunks(n, f, *fillConfig.Load())
}
