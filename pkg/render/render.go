package render

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/taigrr/glint/pkg/math3d"
	"github.com/taigrr/glint/pkg/scene"
)

// Pixel returns the color of pixel (i, j). It reads only its arguments, so
// any set of pixels may be computed concurrently.
func Pixel(sc *scene.Scene, cam *Camera, i, j int) math3d.Vec3 {
	return Shade(cam.Origin(), cam.Direction(i, j), sc)
}

// Render casts one ray per pixel on the calling goroutine.
func Render(sc *scene.Scene, opts Options) (*Framebuffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cam := opts.Camera()
	fb := NewFramebuffer(opts.Width, opts.Height)
	for j := range fb.Height {
		renderRow(sc, cam, fb.Row(j), j)
	}
	return fb, nil
}

// RenderParallel renders the same image as Render using up to
// opts.Workers goroutines. Rows are split into contiguous bands and each
// goroutine writes only its own band.
func RenderParallel(ctx context.Context, sc *scene.Scene, opts Options) (*Framebuffer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	cam := opts.Camera()
	fb := NewFramebuffer(opts.Width, opts.Height)

	bands := Bands(fb.Height, opts.workers())
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(len(bands))
	for _, b := range bands {
		g.Go(func() error {
			for j := b.Start; j < b.End; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				renderRow(sc, cam, fb.Row(j), j)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("render rows: %w", err)
	}
	return fb, nil
}

func renderRow(sc *scene.Scene, cam *Camera, row []math3d.Vec3, j int) {
	for i := range row {
		row[i] = Pixel(sc, cam, i, j)
	}
}

// Band is a half-open range of rows [Start, End).
type Band struct {
	Start, End int
}

// Bands splits height rows into at most n contiguous, non-overlapping
// bands whose sizes differ by at most one row.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))

	bands := make([]Band, 0, n)
	size, extra := height/n, height%n
	start := 0
	for k := range n {
		end := start + size
		if k < extra {
			end++
		}
		bands = append(bands, Band{Start: start, End: end})
		start = end
	}
	return bands
}
