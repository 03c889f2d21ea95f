package geom

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/ansipixels/linal"
	"github.com/qmuntal/gltf"
)

// LoadGLB loads geometry from a glTF 2.0 file (.glb or .gltf).
// Only triangle primitives are read; materials, textures and node
// transforms are ignored, and buffers must be embedded.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := NewMesh(filepath.Base(path))

	for _, gm := range doc.Meshes {
		if err := appendPrimitives(doc, gm, mesh); err != nil {
			return nil, err
		}
	}

	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("gltf %s: no triangle geometry", path)
	}

	mesh.CalculateBounds()

	return mesh, nil
}

// appendPrimitives extracts triangle geometry from one glTF mesh.
func appendPrimitives(doc *gltf.Document, gm *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range gm.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		baseVertex := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{
					baseVertex + indices[i],
					baseVertex + indices[i+1],
					baseVertex + indices[i+2],
				})
			}
		} else {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, [3]int{
					baseVertex + i,
					baseVertex + i + 1,
					baseVertex + i + 2,
				})
			}
		}
	}

	return nil
}

// readVec3Accessor reads Vec3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]linal.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}

	bufData, start, stride, count, err := accessorView(doc, accessor, 12) // 3 floats * 4 bytes
	if err != nil {
		return nil, err
	}

	result := make([]linal.Vec3, count)
	for i := range count {
		offset := start + i*stride
		result[i] = linal.V3(
			float64(readFloat32(bufData[offset:])),
			float64(readFloat32(bufData[offset+4:])),
			float64(readFloat32(bufData[offset+8:])),
		)
	}

	return result, nil
}

// readIndices reads index data from a glTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var elemSize int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		elemSize = 1
	case gltf.ComponentUshort:
		elemSize = 2
	case gltf.ComponentUint:
		elemSize = 4
	default:
		return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}

	bufData, start, stride, count, err := accessorView(doc, accessor, elemSize)
	if err != nil {
		return nil, err
	}

	result := make([]int, count)
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		for i := range count {
			result[i] = int(bufData[start+i*stride])
		}
	case gltf.ComponentUshort:
		for i := range count {
			offset := start + i*stride
			result[i] = int(uint16(bufData[offset]) | uint16(bufData[offset+1])<<8)
		}
	case gltf.ComponentUint:
		for i := range count {
			offset := start + i*stride
			result[i] = int(uint32(bufData[offset]) |
				uint32(bufData[offset+1])<<8 |
				uint32(bufData[offset+2])<<16 |
				uint32(bufData[offset+3])<<24)
		}
	}

	return result, nil
}

// accessorView resolves an accessor to its backing bytes, defaulting
// the stride to elemSize for tightly packed data. Offsets, stride and
// count come straight from the document, so the element range is
// bounds-checked here before any caller indexes into the buffer.
func accessorView(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) (data []byte, start, stride, count int, err error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, 0, fmt.Errorf("accessor has no buffer view")
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	if buffer.URI != "" {
		// External file - would need loading relative to the document
		return nil, 0, 0, 0, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, 0, 0, 0, fmt.Errorf("buffer has no data")
	}

	start = bufferView.ByteOffset + accessor.ByteOffset
	stride = bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	count = accessor.Count

	if start < 0 || count < 0 || stride < elemSize {
		return nil, 0, 0, 0, fmt.Errorf("accessor malformed: offset %d, count %d, stride %d", start, count, stride)
	}
	if count > 0 {
		end := int64(start) + int64(count-1)*int64(stride) + int64(elemSize)
		if end > int64(len(buffer.Data)) {
			return nil, 0, 0, 0, fmt.Errorf("accessor exceeds buffer: need %d bytes, have %d", end, len(buffer.Data))
		}
	}

	return buffer.Data, start, stride, count, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}
