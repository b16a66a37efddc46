package nav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VertexStride is the size of one packed vertex: three little-endian float32.
const VertexStride = 12

// DecodeVertices unpacks a contiguous little-endian float32 xyz buffer.
func DecodeVertices(data []byte) ([]mgl64.Vec3, error) {
	if len(data)%VertexStride != 0 {
		return nil, fmt.Errorf("nav: vertex buffer of %d bytes is not a multiple of %d: %w", len(data), VertexStride, ErrInvalidGeometry)
	}

	out := make([]mgl64.Vec3, len(data)/VertexStride)
	for i := range out {
		off := i * VertexStride
		for axis := 0; axis < 3; axis++ {
			bits := binary.LittleEndian.Uint32(data[off+axis*4:])
			out[i][axis] = float64(math.Float32frombits(bits))
		}
	}
	return out, nil
}

// ReadVertices reads a whole vertex buffer from r.
func ReadVertices(r io.Reader) ([]mgl64.Vec3, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("nav: read vertex buffer: %w", err)
	}
	return DecodeVertices(data)
}

// EncodeVertices packs vertices in the layout DecodeVertices reads.
func EncodeVertices(vertices []mgl64.Vec3) []byte {
	out := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		off := i * VertexStride
		for axis := 0; axis < 3; axis++ {
			binary.LittleEndian.PutUint32(out[off+axis*4:], math.Float32bits(float32(v[axis])))
		}
	}
	return out
}
