// Package montecarlo drives repeated trials of a game session and aggregates
// per-trial result records into summary statistics. The engine has no
// game-specific knowledge: a trial is any zero-argument function returning a
// flat field mapping, and every field that is uniformly numeric or uniformly
// categorical-compatible across the run gets derived statistics.
package montecarlo

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
)

// Result is one flat trial record: field name to value. Values must be
// numbers, bools, strings, or small structured lists; the aggregator skips
// derived statistics for anything it cannot classify.
type Result map[string]any

// TrialFunc runs one complete trial and returns its record. It must be pure
// with respect to external state except its own RNG and card source.
type TrialFunc func() Result

// Config holds configuration for the engine.
type Config struct {
	Logger *log.Logger
	Clock  quartz.Clock
}

// Engine runs trials sequentially or across a worker pool and reduces the
// results into a Report.
type Engine struct {
	logger *log.Logger
	clock  quartz.Clock
}

// New creates an engine. A nil logger discards progress output; a nil clock
// uses the real one.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := cfg.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Engine{logger: logger, clock: clock}
}

// Run calls trial exactly iterations times sequentially and returns the
// aggregated report. Progress is logged every progressInterval completed
// iterations (progressInterval <= 0 disables it); progress output never
// affects aggregation.
func (e *Engine) Run(trial TrialFunc, iterations, progressInterval int) *Report {
	coll := newCollector()
	start := e.clock.Now()

	for i := 0; i < iterations; i++ {
		coll.add(trial())

		done := i + 1
		if progressInterval > 0 && done%progressInterval == 0 && done < iterations {
			elapsed := e.clock.Now().Sub(start)
			perTrial := elapsed / time.Duration(done)
			remaining := perTrial * time.Duration(iterations-done)
			e.logger.Info("simulation progress",
				"completed", done,
				"total", iterations,
				"eta", remaining.Round(10*time.Millisecond))
		}
	}

	elapsed := e.clock.Now().Sub(start)
	return coll.report(iterations, elapsed)
}

// RunParallel distributes iterations across a worker pool. Each worker gets
// its own TrialFunc from newTrial so no card source or RNG is shared between
// concurrently executing trials. Aggregation stays a pure order-independent
// reduction: workers collect privately and the collectors are merged
// serially at the end.
func (e *Engine) RunParallel(newTrial func(worker int) TrialFunc, iterations, workers int) (*Report, error) {
	if iterations <= 0 {
		return newCollector().report(0, 0), nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > iterations {
		workers = iterations
	}

	start := e.clock.Now()
	collectors := make([]*collector, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		share := iterations / workers
		if w < iterations%workers {
			share++
		}
		coll := newCollector()
		collectors[w] = coll
		trial := newTrial(w)
		g.Go(func() error {
			if trial == nil {
				return fmt.Errorf("nil trial function for worker")
			}
			for i := 0; i < share; i++ {
				coll.add(trial())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := collectors[0]
	for _, coll := range collectors[1:] {
		merged.merge(coll)
	}

	elapsed := e.clock.Now().Sub(start)
	return merged.report(iterations, elapsed), nil
}
