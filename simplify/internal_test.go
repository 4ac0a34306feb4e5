package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

func flatTriModel() (*meshmodel.Model, triKey) {
	m := meshmodel.New()
	a := m.AddVertex(vec3.Vec{X: 0, Y: 0, Z: 0})
	b := m.AddVertex(vec3.Vec{X: 10, Y: 0, Z: 0})
	c := m.AddVertex(vec3.Vec{X: 0, Y: 10, Z: 0})
	return m, triKey{a, b, c}
}

func TestVNearTInsidePlane(t *testing.T) {
	m, tri := flatTriModel()
	v := m.AddVertex(vec3.Vec{X: 2, Y: 2, Z: 0})
	assert.True(t, vNearT(m, v, tri, 0.1))
}

func TestVNearTOffPlaneRejected(t *testing.T) {
	m, tri := flatTriModel()
	v := m.AddVertex(vec3.Vec{X: 2, Y: 2, Z: 5})
	assert.False(t, vNearT(m, v, tri, 0.1))
}

func TestVNearTOutsideFootprintRejected(t *testing.T) {
	m, tri := flatTriModel()
	v := m.AddVertex(vec3.Vec{X: 50, Y: 50, Z: 0})
	assert.False(t, vNearT(m, v, tri, 0.1))
}

func TestPerpMagnitudeIsTwiceArea(t *testing.T) {
	m, tri := flatTriModel()
	p := perp(m, tri)
	assert.InDelta(t, 100.0, vec3.Norm(p), 1e-9) // right triangle legs 10,10 -> area 50, |cross|=2*area
}

func TestDedupSorted(t *testing.T) {
	got := dedupSorted([]uint32{3, 1, 3, 2, 1})
	assert.Equal(t, []uint32{1, 2, 3}, got)
}

func TestGroupKeyDistinguishesOrder(t *testing.T) {
	assert.NotEqual(t, groupKey([]uint32{1, 2}), groupKey([]uint32{2, 1}))
	assert.Equal(t, groupKey([]uint32{1, 2}), groupKey([]uint32{1, 2}))
}
