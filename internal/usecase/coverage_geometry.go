package usecase

import (
	"github.com/golang/geo/s2"

	"github.com/shuttle-hr/internal/domain"
)

// meshLoop builds an s2 loop from the mesh boundary. A closing vertex equal to
// the first one and consecutive duplicates are dropped. The loop is normalized
// so that the smaller of the two regions is the interior, which makes the
// result independent of the boundary winding. Returns nil for degenerate
// boundaries with fewer than three distinct vertices.
func meshLoop(points []domain.CoverageMeshPoint) *s2.Loop {
	vertices := make([]s2.Point, 0, len(points))
	for _, p := range points {
		v := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Latitude, p.Longitude))
		if n := len(vertices); n > 0 && vertices[n-1].ApproxEqual(v) {
			continue
		}
		vertices = append(vertices, v)
	}
	if n := len(vertices); n > 1 && vertices[0].ApproxEqual(vertices[n-1]) {
		vertices = vertices[:n-1]
	}
	if len(vertices) < 3 {
		return nil
	}

	loop := s2.LoopFromPoints(vertices)
	loop.Normalize()
	return loop
}

// meshIndex holds prebuilt loops for repeated containment checks.
type meshIndex struct {
	meshes []domain.CoverageMesh
	loops  []*s2.Loop
}

func newMeshIndex(meshes []domain.CoverageMesh) *meshIndex {
	idx := &meshIndex{
		meshes: make([]domain.CoverageMesh, 0, len(meshes)),
		loops:  make([]*s2.Loop, 0, len(meshes)),
	}
	for _, m := range meshes {
		loop := meshLoop(m.Points)
		if loop == nil {
			continue
		}
		idx.meshes = append(idx.meshes, m)
		idx.loops = append(idx.loops, loop)
	}
	return idx
}

// Containing returns the meshes whose boundary contains the coordinate.
func (idx *meshIndex) Containing(coord domain.Coordinate) []domain.CoverageMesh {
	p := s2.PointFromLatLng(s2.LatLngFromDegrees(coord.Lat, coord.Lon))

	out := make([]domain.CoverageMesh, 0)
	for i, loop := range idx.loops {
		if loop.ContainsPoint(p) {
			out = append(out, idx.meshes[i])
		}
	}
	return out
}

func containingMeshes(coord domain.Coordinate, meshes []domain.CoverageMesh) []domain.CoverageMesh {
	return newMeshIndex(meshes).Containing(coord)
}
