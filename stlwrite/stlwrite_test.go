package stlwrite_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/T4r4sB/puzzlemesh/meshmodel"
	"github.com/T4r4sB/puzzlemesh/stlwrite"
	"github.com/T4r4sB/puzzlemesh/vec3"
)

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func TestWriteBinaryLayout(t *testing.T) {
	m := meshmodel.New()
	a := m.AddVertex(vec3.Vec{X: 0, Y: 0, Z: 0})
	b := m.AddVertex(vec3.Vec{X: 1, Y: 0, Z: 0})
	c := m.AddVertex(vec3.Vec{X: 0, Y: 1, Z: 0})
	m.AddTriangle(a, b, c)

	var buf bytes.Buffer
	require.NoError(t, stlwrite.Write(&buf, m))

	data := buf.Bytes()
	require.Len(t, data, 80+4+50)

	count := binary.LittleEndian.Uint32(data[80:84])
	assert.Equal(t, uint32(1), count)

	rest := data[84:]
	assert.InDelta(t, 0, readFloat32(rest[0:4]), 1e-6)
	assert.InDelta(t, 0, readFloat32(rest[4:8]), 1e-6)
	assert.InDelta(t, 1, readFloat32(rest[8:12]), 1e-6)

	assert.InDelta(t, 0, readFloat32(rest[12:16]), 1e-6) // v0.x
	assert.InDelta(t, 1, readFloat32(rest[24:28]), 1e-6) // v1.x
}

func TestWriteEmptyModel(t *testing.T) {
	m := meshmodel.New()
	var buf bytes.Buffer
	require.NoError(t, stlwrite.Write(&buf, m))
	assert.Len(t, buf.Bytes(), 80+4)
}
