// benchmark.go
// Reusable benchmarking for paacman runs
// Measures execution time and memory usage of any wrapped function

package benchmark

import (
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

// Stats is the resource usage of one measured run
type Stats struct {
	Elapsed        time.Duration
	MemoryUsed     float64 // MB still allocated after the run
	TotalAllocated float64 // MB allocated during the run
	PeakHeap       float64 // MB
	GCCycles       uint32
	CPUCores       int
	GoroutinesFrom int
	GoroutinesTo   int
}

const mb = 1024.0 * 1024.0

// Measure runs f and returns its resource usage along with f's error
func Measure(f func() error) (Stats, error) {
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	stats := Stats{CPUCores: runtime.NumCPU(), GoroutinesFrom: runtime.NumGoroutine()}
	start := time.Now()

	err := f()

	stats.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	stats.GoroutinesTo = runtime.NumGoroutine()
	stats.MemoryUsed = (float64(memEnd.Alloc) - float64(memStart.Alloc)) / mb
	stats.TotalAllocated = float64(memEnd.TotalAlloc-memStart.TotalAlloc) / mb
	stats.PeakHeap = float64(memEnd.HeapAlloc) / mb
	stats.GCCycles = memEnd.NumGC - memStart.NumGC
	return stats, err
}

// Run wraps f, logging the environment before and the resource usage after
func Run(logger *log.Logger, label string, f func() error) error {
	logger = logger.WithPrefix("benchmark")
	logger.Info("running", "label", label)
	host, _ := os.Hostname()
	logger.Info("environment",
		"timestamp", time.Now().Format(time.RFC1123),
		"hostname", host,
		"go", runtime.Version(),
		"os/arch", runtime.GOOS+"/"+runtime.GOARCH,
	)

	stats, err := Measure(f)

	logger.Info("resource usage",
		"elapsed", stats.Elapsed,
		"memory_mb", stats.MemoryUsed,
		"allocated_mb", stats.TotalAllocated,
		"peak_heap_mb", stats.PeakHeap,
		"gc_cycles", stats.GCCycles,
		"cpu_cores", stats.CPUCores,
		"goroutines", []int{stats.GoroutinesFrom, stats.GoroutinesTo},
	)
	return err
}
