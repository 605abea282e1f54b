package terrain

import "github.com/go-gl/mathgl/mgl32"

var up = mgl32.Vec3{0, 1, 0}

// ComputeNormals returns smooth per-vertex normals: each vertex averages the
// area-weighted normals of the triangles that use it.
func ComputeNormals(positions []mgl32.Vec3, indices []uint32) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(positions))

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
			continue
		}
		edge1 := positions[b].Sub(positions[a])
		edge2 := positions[c].Sub(positions[a])
		// Unnormalized cross product length is twice the triangle area.
		n := edge1.Cross(edge2)
		normals[a] = normals[a].Add(n)
		normals[b] = normals[b].Add(n)
		normals[c] = normals[c].Add(n)
	}

	for i := range normals {
		normals[i] = normalize(normals[i])
	}
	return normals
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 0.0001 {
		return up
	}
	return v.Mul(1 / l)
}
