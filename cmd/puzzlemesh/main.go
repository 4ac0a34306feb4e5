// Mesh a handful of compiled-in worked-example partition functions to
// STL (3D) and DXF (2D), one file per label per example.
package main

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/T4r4sB/puzzlemesh/contour2"
	"github.com/T4r4sB/puzzlemesh/dxfwrite"
	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/puzzle"
	"github.com/T4r4sB/puzzlemesh/render2"
	"github.com/T4r4sB/puzzlemesh/render3"
	"github.com/T4r4sB/puzzlemesh/simplify"
	"github.com/T4r4sB/puzzlemesh/stlwrite"
	"github.com/T4r4sB/puzzlemesh/vec3"
	"github.com/T4r4sB/puzzlemesh/voxel"
)

// writeAll fans writes out one goroutine per job, gated by a
// sync.WaitGroup, mirroring the teacher's writeVertices goroutine/
// WaitGroup idiom applied to the one place this system allows
// concurrency: per-label output, not per-voxel sampling.
func writeAll(n int, write func(i int) error) error {
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = write(i)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

const bisectIters = 24

func main() {
	runs := []func() error{runCube, runSphere, runTwoBalls, runAnnulus2, runFigureEight2}
	for _, run := range runs {
		if err := run(); err != nil {
			log.Fatalf("puzzlemesh: %s", err)
		}
	}
}

func cubeGrid(half float64, n int) voxel.Grid {
	return voxel.Grid{
		Min: vec3.Vec{X: -half, Y: -half, Z: -half},
		Max: vec3.Vec{X: half, Y: half, Z: half},
		Nx:  n, Ny: n, Nz: n,
	}
}

func mesh3(name string, g voxel.Grid, f label.Func3) error {
	res, err := render3.Run(render3.Config{Grid: g, F: f, BisectIters: bisectIters})
	if err != nil {
		return err
	}

	type job struct {
		path string
		m    *meshmodel.Model
	}
	var jobs []job
	for _, l := range res.Meshes.Labels() {
		if err, failed := res.Failed[l]; failed {
			log.Printf("puzzlemesh: %s label %d: validation failed: %s", name, l, err)
			continue
		}
		m := res.Meshes.Model(l)
		if err := simplify.Run(m, simplify.Params{
			Width: 0.2, GroupDot: 0.999, SmoothDot: 0.98, MinGroupSize: 4, Seed: 1,
		}); err != nil {
			return fmt.Errorf("%s label %d: %w", name, l, err)
		}
		jobs = append(jobs, job{path: fmt.Sprintf("%s-%d.stl", name, l), m: m})
	}

	return writeAll(len(jobs), func(i int) error {
		if err := writeSTL(jobs[i].path, jobs[i].m); err != nil {
			return fmt.Errorf("%s %s: %w", name, jobs[i].path, err)
		}
		return nil
	})
}

func writeSTL(path string, m *meshmodel.Model) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return stlwrite.Write(f, m)
}

func runCube() error {
	return mesh3("cube", cubeGrid(40, 40), puzzle.Cube(30))
}

func runSphere() error {
	return mesh3("sphere", cubeGrid(40, 40), puzzle.Sphere(30))
}

func runTwoBalls() error {
	g := voxel.Grid{
		Min: vec3.Vec{X: -60, Y: -40, Z: -40},
		Max: vec3.Vec{X: 60, Y: 40, Z: 40},
		Nx:  60, Ny: 40, Nz: 40,
	}
	return mesh3("two-balls", g, puzzle.TwoBalls(25, 45))
}

func runAnnulus2() error {
	res, err := render2.Run(render2.Config{GridSize: 200, BoxSize: 120, F: puzzle.Annulus2(15, 40), BisectIters: bisectIters})
	if err != nil {
		return err
	}
	return write2(res, "annulus")
}

func runFigureEight2() error {
	res, err := render2.Run(render2.Config{GridSize: 200, BoxSize: 120, F: puzzle.FigureEight2(25, 40), BisectIters: bisectIters})
	if err != nil {
		return err
	}
	return write2(res, "figure-eight")
}

func write2(res *render2.Result, name string) error {
	type job struct {
		path string
		set  *contour2.Set
	}
	var jobs []job
	for l, lr := range res.Labels {
		if err, failed := res.Failed[l]; failed {
			log.Printf("puzzlemesh: %s label %d: %s", name, l, err)
			continue
		}
		jobs = append(jobs, job{path: fmt.Sprintf("%s-%d.dxf", name, l), set: lr.Contours})
	}

	return writeAll(len(jobs), func(i int) error {
		if err := dxfwrite.Write(jobs[i].path, jobs[i].set); err != nil {
			return fmt.Errorf("%s %s: %w", name, jobs[i].path, err)
		}
		return nil
	})
}
