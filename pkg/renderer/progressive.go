package renderer

import (
	"context"
	"time"

	"github.com/df07/go-sppm/pkg/log"
	"github.com/df07/go-sppm/pkg/scene"
	"github.com/pkg/errors"
)

// Sink receives the combined buffer every time a checkpoint is reached
type Sink interface {
	SaveCheckpoint(ctx context.Context, iter int, buf *Buffer) error
}

// ProgressiveRenderer runs stochastic progressive photon mapping iterations
// in batches of Config.Checkpoint, saving the combined result after each batch
type ProgressiveRenderer struct {
	scene  *scene.Scene
	config Config
	pool   *WorkerPool
	sink   Sink
	logger log.Logger
	done   int // Iterations already accumulated
}

// NewProgressiveRenderer validates config and prepares the worker pool.
// sink may be nil, in which case nothing is saved.
func NewProgressiveRenderer(s *scene.Scene, config Config, sink Sink, logger log.Logger) (*ProgressiveRenderer, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if s.Camera == nil {
		return nil, errors.New("scene has no camera")
	}
	if s.Camera.Width() != config.Width || s.Camera.Height() != config.Height {
		return nil, errors.Errorf("camera is %dx%d, config is %dx%d",
			s.Camera.Width(), s.Camera.Height(), config.Width, config.Height)
	}

	return &ProgressiveRenderer{
		scene:  s,
		config: config,
		pool:   NewWorkerPool(s, config, logger),
		sink:   sink,
		logger: logger,
	}, nil
}

// Resume continues from a buffer holding iter accumulated iterations. The
// radius picks up at R_iter.
func (pr *ProgressiveRenderer) Resume(iter int, buf *Buffer) error {
	if iter < 0 {
		return errors.Errorf("negative checkpoint iteration %d", iter)
	}
	if err := pr.pool.seed(buf); err != nil {
		return errors.Wrap(err, "resuming")
	}
	pr.done = iter
	pr.logger.Noticef("resuming at iteration %d of %d", iter, pr.config.Iter)
	return nil
}

// Render runs the remaining iterations and returns the combined buffer
func (pr *ProgressiveRenderer) Render(ctx context.Context) (*Buffer, RenderStats, error) {
	start := time.Now()
	schedule := newRadiusSchedule(pr.config.Radius0, pr.config.Alpha, pr.done)

	pr.logger.Noticef("rendering %d iterations of %d photons at %dx%d with %d workers",
		pr.config.Iter-pr.done, pr.config.PhotonPerIter, pr.config.Width, pr.config.Height, pr.pool.GetNumWorkers())

	combined, err := SumBuffers(pr.pool.Buffers()...)
	if err != nil {
		return nil, RenderStats{}, err
	}

	for pr.done < pr.config.Iter {
		n := pr.config.Checkpoint
		if remaining := pr.config.Iter - pr.done; n > remaining {
			n = remaining
		}

		radii := make([]float64, n)
		for i := range radii {
			iter, r := schedule.next()
			radii[i] = r
			pr.logger.Infof("iteration %d: radius %.5f", iter, r)
		}

		batchStart := time.Now()
		if err := pr.pool.RunBatch(ctx, pr.done, radii); err != nil {
			return nil, pr.stats(start), errors.Wrapf(err, "rendering iterations %d-%d", pr.done, pr.done+n-1)
		}
		pr.done += n

		combined, err = SumBuffers(pr.pool.Buffers()...)
		if err != nil {
			return nil, pr.stats(start), err
		}
		if pr.sink != nil {
			if err := pr.sink.SaveCheckpoint(ctx, pr.done, combined); err != nil {
				return nil, pr.stats(start), errors.Wrapf(err, "saving checkpoint %d", pr.done)
			}
		}

		pr.logger.Noticef("checkpoint %d/%d: radius %.5f, batch took %v",
			pr.done, pr.config.Iter, radii[n-1], time.Since(batchStart).Round(time.Millisecond))
	}

	return combined, pr.stats(start), nil
}

// Done returns the number of accumulated iterations
func (pr *ProgressiveRenderer) Done() int {
	return pr.done
}

func (pr *ProgressiveRenderer) stats(start time.Time) RenderStats {
	return RenderStats{Workers: pr.pool.Stats(), Elapsed: time.Since(start)}
}
