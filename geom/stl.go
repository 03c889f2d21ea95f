package geom

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ansipixels/linal"
)

// LoadSTL loads an STL (stereolithography) file, detecting binary and
// ASCII formats automatically. Stored facet normals are discarded;
// normals are recomputed from geometry on demand.
func LoadSTL(path string) (*Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stl: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseSTL(data, name)
}

// ParseSTL parses STL geometry from a byte slice.
func ParseSTL(data []byte, name string) (*Mesh, error) {
	if isBinarySTL(data) {
		return parseBinarySTL(data, name)
	}
	return parseASCIISTL(data, name)
}

// isBinarySTL detects if the data is binary STL format.
// Binary STL starts with an 80-byte header, then a 4-byte triangle
// count; ASCII STL starts with "solid". A header that happens to begin
// with "solid" is disambiguated by the declared size.
func isBinarySTL(data []byte) bool {
	if len(data) < 84 {
		return false
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if bytes.HasPrefix(trimmed, []byte("solid")) {
		triCount := binary.LittleEndian.Uint32(data[80:84])
		expectedSize := 84 + int64(triCount)*50
		return int64(len(data)) == expectedSize
	}

	return true
}

// parseBinarySTL parses binary STL: 80-byte header, uint32 triangle
// count, then 50 bytes per triangle (normal, 3 vertices, attribute).
func parseBinarySTL(data []byte, name string) (*Mesh, error) {
	if len(data) < 84 {
		return nil, fmt.Errorf("binary stl too short: %d bytes", len(data))
	}

	// Size arithmetic in int64: a crafted 32-bit triangle count must not
	// wrap the expected size below the real one.
	triCount := binary.LittleEndian.Uint32(data[80:84])
	expectedSize := 84 + int64(triCount)*50
	if int64(len(data)) < expectedSize {
		return nil, fmt.Errorf("binary stl truncated: expected %d bytes, got %d", expectedSize, len(data))
	}

	mesh := NewMesh(name)
	vertexIndex := make(map[linal.Vec3]int)

	offset := 84
	for range triCount {
		// Skip the stored normal (12 bytes)
		offset += 12

		var face [3]int
		for v := range 3 {
			pos := linal.V3(
				float64(readFloat32(data[offset:])),
				float64(readFloat32(data[offset+4:])),
				float64(readFloat32(data[offset+8:])),
			)
			offset += 12
			face[v] = mesh.internVertex(vertexIndex, pos)
		}

		// Skip 2-byte attribute byte count
		offset += 2

		mesh.Faces = append(mesh.Faces, face)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// parseASCIISTL parses the "solid … facet … vertex …" text format.
func parseASCIISTL(data []byte, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	vertexIndex := make(map[linal.Vec3]int)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0

	var face []int
	inFacet := false

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = fields[1]
			}

		case "facet":
			inFacet = true
			face = face[:0]

		case "vertex":
			if !inFacet {
				return nil, fmt.Errorf("line %d: vertex outside facet", lineNum)
			}
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs x y z", lineNum)
			}
			var c [3]float64
			for i := range 3 {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNum, err)
				}
				c[i] = v
			}
			face = append(face, mesh.internVertex(vertexIndex, linal.V3(c[0], c[1], c[2])))

		case "endfacet":
			if len(face) != 3 {
				return nil, fmt.Errorf("line %d: facet has %d vertices, want 3", lineNum, len(face))
			}
			mesh.Faces = append(mesh.Faces, [3]int{face[0], face[1], face[2]})
			inFacet = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan stl: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// internVertex deduplicates exactly-equal positions.
func (m *Mesh) internVertex(index map[linal.Vec3]int, pos linal.Vec3) int {
	if idx, ok := index[pos]; ok {
		return idx
	}
	idx := len(m.Vertices)
	m.Vertices = append(m.Vertices, pos)
	index[pos] = idx
	return idx
}
