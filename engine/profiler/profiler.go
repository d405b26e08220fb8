package profiler

import (
	"log"
	"runtime"
	"sync"
	"time"
)

// Profiler tracks render frame rate, engine tick timing and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
// Tick is called from the render goroutine and RecordTick from the engine goroutine.
type Profiler struct {
	mu *sync.Mutex

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	ticks TickStats

	now func() time.Time
}

// TickStats summarizes the engine tick deltas recorded during one reporting interval.
type TickStats struct {
	Count int
	Sum   float32
	Min   float32
	Max   float32
}

// Mean returns the average tick delta in seconds, or 0 when nothing was recorded.
func (s TickStats) Mean() float32 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float32(s.Count)
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		mu:             &sync.Mutex{},
		lastTime:       time.Now(),
		updateInterval: time.Second,
		now:            time.Now,
	}
}

// RecordTick records one engine tick delta.
//
// Parameters:
//   - dt: the tick delta in seconds
func (p *Profiler) RecordTick(dt float32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticks.Count == 0 || dt < p.ticks.Min {
		p.ticks.Min = dt
	}
	if dt > p.ticks.Max {
		p.ticks.Max = dt
	}
	p.ticks.Count++
	p.ticks.Sum += dt
}

// Ticks returns the tick statistics recorded since the last report.
//
// Returns:
//   - TickStats: the current interval's tick statistics
func (p *Profiler) Ticks() TickStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticks
}

// Tick should be called once per render frame to track frame timing.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: FPS, tick rate and delta spread, heap usage, allocation rate, GC count/pause times, total memory.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.frameCount) / elapsed.Seconds()
	tps := float64(p.ticks.Count) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024

	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			pause := p.memStats.PauseNs[i%256] / 1000
			if pause > maxPauseUs {
				maxPauseUs = pause
			}
		}
	}

	log.Printf("[Profiler] FPS: %.2f | TPS: %.2f (dt avg: %.2f ms, min: %.2f ms, max: %.2f ms) | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
		fps, tps, p.ticks.Mean()*1000, p.ticks.Min*1000, p.ticks.Max*1000, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

	p.frameCount = 0
	p.ticks = TickStats{}
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
