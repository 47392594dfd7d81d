// Package meshio reads tetrahedral finite-element meshes and drives
// tetvox across every element, scattering moments onto a shared voxel
// grid and returning mesh-wide moment totals.
package meshio

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/sdfx-labs/tetvox/tetvox"
	"github.com/sdfx-labs/tetvox/vec/conv"
	v3 "github.com/sdfx-labs/tetvox/vec/v3"
	"github.com/sdfx-labs/tetvox/vec/v3i"
)

//-----------------------------------------------------------------------------

// TetMesh is a collection of linear tetrahedral elements sharing a node
// pool, as read from a CalculiX/Abaqus .inp deck (spec.md's supplemented
// "multi-tet driver" feature).
type TetMesh struct {
	Nodes    []v3.Vec
	Elements [][4]int
}

// Bounds returns the mesh's axis-aligned bounding box.
func (m *TetMesh) Bounds() v3.Box3 {
	if len(m.Nodes) == 0 {
		return v3.Box3{}
	}
	b := v3.Box3{Min: m.Nodes[0], Max: m.Nodes[0]}
	for _, n := range m.Nodes[1:] {
		b.Min = b.Min.Min(n)
		b.Max = b.Max.Max(n)
	}
	return b
}

// tetVerts returns the four corner positions of element e.
func (m *TetMesh) tetVerts(e int) (v0, v1, v2, v3_ v3.Vec) {
	el := m.Elements[e]
	return m.Nodes[el[0]], m.Nodes[el[1]], m.Nodes[el[2]], m.Nodes[el[3]]
}

//-----------------------------------------------------------------------------

// tetSpatial adapts one element's bounding box to rtreego.Spatial, so
// TetsInBox can answer "which elements might overlap this region"
// queries without a linear scan (spec.md's supplemented mesh-query
// facility).
type tetSpatial struct {
	index int
	rect  *rtreego.Rect
}

func (t *tetSpatial) Bounds() *rtreego.Rect { return t.rect }

// tetIndex is an R-tree over every element's bounding box. It is not
// cached: TetsInBox builds a fresh one on every call.
type tetIndex struct {
	tree *rtreego.Rtree
}

// buildIndex constructs the R-tree over m's elements. The branching
// factors (25/50) follow rtreego's own suggested defaults for
// small-to-medium collections.
func (m *TetMesh) buildIndex() (*tetIndex, error) {
	tree := rtreego.NewTree(3, 25, 50)
	for e := range m.Elements {
		v0, v1, v2, v3_ := m.tetVerts(e)
		lo := v0.Min(v1).Min(v2).Min(v3_)
		hi := v0.Max(v1).Max(v2).Max(v3_)
		size := hi.Sub(lo)
		rect, err := rtreego.NewRect(
			rtreego.Point{lo.X, lo.Y, lo.Z},
			[]float64{epsOr(size.X), epsOr(size.Y), epsOr(size.Z)},
		)
		if err != nil {
			return nil, fmt.Errorf("meshio: building spatial index for element %d: %w", e, err)
		}
		tree.Insert(&tetSpatial{index: e, rect: rect})
	}
	return &tetIndex{tree: tree}, nil
}

// epsOr returns x, or a tiny positive epsilon if x is zero (rtreego
// rejects zero-length sides).
func epsOr(x float64) float64 {
	if x <= 0 {
		return 1e-12
	}
	return x
}

// TetsInBox returns the indices of every element whose bounding box
// overlaps box. Intended for callers that need to query a mesh
// repeatedly (e.g. interactive tools); VoxelizeMesh itself computes each
// element's own bounding box directly and does not use this index.
func (m *TetMesh) TetsInBox(box v3.Box3) ([]int, error) {
	idx, err := m.buildIndex()
	if err != nil {
		return nil, err
	}
	size := box.Size()
	rect, err := rtreego.NewRect(
		rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z},
		[]float64{epsOr(size.X), epsOr(size.Y), epsOr(size.Z)},
	)
	if err != nil {
		return nil, fmt.Errorf("meshio: building query rect: %w", err)
	}
	hits := idx.tree.SearchIntersect(rect)
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.(*tetSpatial).index
	}
	return out, nil
}

//-----------------------------------------------------------------------------

// VoxelizeMesh voxelizes every element of m onto g, a shared grid whose
// voxel (0,0,0) corner is assumed coincident with m's own coordinate
// origin (callers translate mesh nodes beforehand if needed, the same
// convention tetvox.VoxelizeDense uses for a single tet). Each element is
// restricted to its own bounding box's voxel range so a mesh with many
// small elements over a large grid doesn't pay for a full sweep per
// element, and touched voxels are summed rather than overwritten so
// elements sharing a boundary voxel both contribute (spec.md's
// supplemented "multi-tet driver" feature).
//
// Elements are handed to a fixed pool of goroutines, one per CPU, each
// claiming whole elements rather than individual voxels. Every element
// writes straight into the shared grid g, so a worker holds gridMu for
// the whole of an element's pass: element passes never overlap in time,
// and only the per-element accumulators are merged afterwards.
func VoxelizeMesh(m *TetMesh, g *tetvox.Grid) (*tetvox.Accumulator, error) {
	type result struct {
		acc *tetvox.Accumulator
		err error
	}

	n := len(m.Elements)
	jobs := make(chan int, n)
	results := make(chan result, n)

	var wg sync.WaitGroup
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var gridMu sync.Mutex
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range jobs {
				gridMu.Lock()
				acc, err := voxelizeElement(m, e, g)
				gridMu.Unlock()
				results <- result{acc, err}
			}
		}()
	}

	for e := 0; e < n; e++ {
		jobs <- e
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	total := tetvox.NewAccumulator()
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		total.Merge(r.acc)
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return total, nil
}

// voxelizeElement voxelizes a single element onto its own restricted
// voxel range within g.
func voxelizeElement(m *TetMesh, e int, g *tetvox.Grid) (*tetvox.Accumulator, error) {
	v0, v1, v2, v3_ := m.tetVerts(e)
	faces, err := tetvox.FacesFromTet(v0, v1, v2, v3_)
	if err != nil {
		return nil, fmt.Errorf("meshio: element %d: %w", e, err)
	}

	lo := conv.V3ToV3i(v0.Min(v1).Min(v2).Min(v3_).Div(g.Spacing))
	hif := conv.V3ToV3i(v0.Max(v1).Max(v2).Max(v3_).Div(g.Spacing))
	imin := v3i.Vec{
		X: clampInt(lo.X, 0, g.N.X),
		Y: clampInt(lo.Y, 0, g.N.Y),
		Z: clampInt(lo.Z, 0, g.N.Z),
	}
	imax := v3i.Vec{
		X: clampInt(hif.X+1, imin.X+1, g.N.X),
		Y: clampInt(hif.Y+1, imin.Y+1, g.N.Y),
		Z: clampInt(hif.Z+1, imin.Z+1, g.N.Z),
	}

	acc := tetvox.NewAccumulator()
	if err := tetvox.VoxelizeDenseRange(faces, g, imin, imax, acc, true); err != nil {
		return nil, fmt.Errorf("meshio: element %d: %w", e, err)
	}
	return acc, nil
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
