package renderer

import (
	"context"
	"time"

	"github.com/df07/go-sppm/pkg/log"
	"github.com/df07/go-sppm/pkg/scene"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rand"
)

// event is a unit of work for the pool: one iteration, or the sentinel
// telling a worker to leave the batch
type event struct {
	halt   bool
	iter   int
	radius float64
}

// Worker owns a random stream and a pixel buffer that lives for the whole
// render. Photon maps are private to each iteration.
type Worker struct {
	ID     int
	buffer *Buffer
	tracer *tracer
	stats  WorkerStats
	logger log.Logger
}

func newWorker(id int, s *scene.Scene, config Config, logger log.Logger) *Worker {
	w := &Worker{
		ID:     id,
		buffer: NewBuffer(config.Width, config.Height),
		logger: logger,
	}
	w.stats.Worker = id
	random := rand.New(config.Seed, uint64(id))
	w.tracer = newTracer(s, config, random, &w.stats)
	return w
}

// process runs a single iteration. A panic inside the tracer is returned as
// an error so the whole render fails.
func (w *Worker) process(ev event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("worker %d panicked in iteration %d: %v", w.ID, ev.iter, r)
		}
	}()

	start := time.Now()
	w.tracer.iterate(w.buffer, ev.radius)
	w.stats.Iterations++
	w.stats.Busy += time.Since(start)

	w.logger.Debugf("worker %d finished iteration %d (radius %.4f) in %v", w.ID, ev.iter, ev.radius, time.Since(start))
	return nil
}

// WorkerPool dispatches iterations to a fixed set of workers
type WorkerPool struct {
	workers []*Worker
}

// NewWorkerPool creates config.Threads workers sharing the scene
func NewWorkerPool(s *scene.Scene, config Config, logger log.Logger) *WorkerPool {
	wp := &WorkerPool{}
	for i := 0; i < config.Threads; i++ {
		wp.workers = append(wp.workers, newWorker(i, s, config, logger))
	}
	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// RunBatch processes one iteration per radius, numbered from first, and
// returns once every worker has seen its halt sentinel. The first error
// stops the batch.
func (wp *WorkerPool) RunBatch(ctx context.Context, first int, radii []float64) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan event, 2*len(wp.workers))

	g.Go(func() error {
		for i, r := range radii {
			select {
			case events <- event{iter: first + i, radius: r}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		for range wp.workers {
			select {
			case events <- event{halt: true}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for _, w := range wp.workers {
		w := w
		g.Go(func() error {
			for {
				select {
				case ev := <-events:
					if ev.halt {
						return nil
					}
					if err := w.process(ev); err != nil {
						return err
					}
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		})
	}

	return g.Wait()
}

// Buffers returns the per-worker pixel buffers
func (wp *WorkerPool) Buffers() []*Buffer {
	buffers := make([]*Buffer, len(wp.workers))
	for i, w := range wp.workers {
		buffers[i] = w.buffer
	}
	return buffers
}

// Stats returns a snapshot of every worker's counters
func (wp *WorkerPool) Stats() []WorkerStats {
	stats := make([]WorkerStats, len(wp.workers))
	for i, w := range wp.workers {
		stats[i] = w.stats
	}
	return stats
}

// seed adds a previously accumulated buffer into worker 0
func (wp *WorkerPool) seed(buf *Buffer) error {
	dst := wp.workers[0].buffer
	if buf.Width != dst.Width || buf.Height != dst.Height {
		return errors.Errorf("checkpoint is %dx%d, render is %dx%d", buf.Width, buf.Height, dst.Width, dst.Height)
	}
	copy(dst.pixels, buf.pixels)
	return nil
}
