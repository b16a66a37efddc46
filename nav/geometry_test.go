package nav

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVertices(t *testing.T) {
	var buf bytes.Buffer
	for _, f := range []float32{1, 2, 3, -0.5, 10.25, 0} {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, f))
	}

	got, err := DecodeVertices(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []mgl64.Vec3{{1, 2, 3}, {-0.5, 10.25, 0}}, got)
}

func TestDecodeVerticesBadLength(t *testing.T) {
	_, err := DecodeVertices(make([]byte, 13))
	require.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestReadVerticesFeedsBuild(t *testing.T) {
	data := EncodeVertices(triangle())
	require.Len(t, data, 3*VertexStride)

	vertices, err := ReadVertices(bytes.NewReader(data))
	require.NoError(t, err)

	m, err := Build(vertices, identityPlacement())
	require.NoError(t, err)
	// float32 storage loses a little of sqrt(200).
	assert.InDelta(t, 40, m.Length(), 1e-5)
	assert.False(t, math.IsNaN(m.TransformAt(33).Position.Z()))
}
