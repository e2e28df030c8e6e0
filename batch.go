package textel

import (
	"context"
	"errors"
	"image"

	"golang.org/x/sync/errgroup"
)

// Converter converts a stream of images into grids using a pool of workers.
// Output order matches input order regardless of which worker finishes
// first.
type Converter struct {
	Width   int
	Height  int
	Workers int

	// Prepare scales and crops each source to an exact cell multiple
	// before sampling. When false, sources must already satisfy the
	// sampler's size precondition.
	Prepare bool
}

func (c *Converter) validate() error {
	if c.Width <= 0 {
		return errors.New("textel: ConvertAll: width must be positive")
	}
	if c.Height <= 0 {
		return errors.New("textel: ConvertAll: height must be positive")
	}
	if c.Workers <= 0 {
		return errors.New("textel: ConvertAll: workers must be positive")
	}

	return nil
}

type convertJob struct {
	img image.Image
	out chan<- gridOrError
}

type gridOrError struct {
	grid *Grid
	err  error
}

// ConvertAll reads images from in until it is closed and sends one grid per
// image to out, in input order. It returns the first conversion error or the
// context's error if it is canceled. The out channel is not closed; it
// belongs to the caller.
func (c *Converter) ConvertAll(ctx context.Context, in <-chan image.Image, out chan<- *Grid) error {
	if err := c.validate(); err != nil {
		return err
	}

	jobs := make(chan convertJob, c.Workers*2)
	results := make(chan chan gridOrError, c.Workers*2)

	eg, ctx := errgroup.WithContext(ctx)

	// Pump images to the workers, queueing a result slot per image so the
	// drain below can restore input order.
	eg.Go(func() error {
		defer close(jobs)
		defer close(results)

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case img, more := <-in:
				if !more {
					return nil
				}

				result := make(chan gridOrError, 1)
				select {
				case results <- result:
				case <-ctx.Done():
					return ctx.Err()
				}

				select {
				case jobs <- convertJob{img: img, out: result}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	})

	for i := 0; i < c.Workers; i++ {
		eg.Go(func() error {
			for job := range jobs {
				grid, err := c.convert(job.img)
				job.out <- gridOrError{grid: grid, err: err}
				if err != nil {
					return err
				}
			}
			return nil
		})
	}

	eg.Go(func() error {
		for result := range results {
			var r gridOrError
			select {
			case r = <-result:
			case <-ctx.Done():
				return ctx.Err()
			}

			if r.err != nil {
				return r.err
			}

			select {
			case out <- r.grid:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	return eg.Wait()
}

func (c *Converter) convert(img image.Image) (*Grid, error) {
	if c.Prepare {
		prepared, err := PrepareImage(img, c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		img = prepared
	}

	return Sample(img, c.Width, c.Height)
}
