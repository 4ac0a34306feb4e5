package render2_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/T4r4sB/puzzlemesh/label"
	"github.com/T4r4sB/puzzlemesh/render2"
)

func diskLabel(radius float32) label.Func2 {
	r2 := float64(radius) * float64(radius)
	return func(x, y float32) label.Label {
		d := float64(x)*float64(x) + float64(y)*float64(y)
		if d <= r2 {
			return 1
		}
		return label.Background
	}
}

func TestRunDiskProducesTriangles(t *testing.T) {
	res, err := render2.Run(render2.Config{GridSize: 60, BoxSize: 20, F: diskLabel(5), BisectIters: 20})
	require.NoError(t, err)
	require.Empty(t, res.Failed)
	require.Contains(t, res.Labels, label.Label(1))
	assert.NotEmpty(t, res.Labels[label.Label(1)].Triangles)
}

func TestRunRejectsTinyGrid(t *testing.T) {
	_, err := render2.Run(render2.Config{GridSize: 1, BoxSize: 10, F: diskLabel(1), BisectIters: 4})
	assert.Error(t, err)
}
