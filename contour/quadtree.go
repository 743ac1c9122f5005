//-----------------------------------------------------------------------------
/*

Quadtree spatial index over 2D points with normals, grounded on
contour/QuadTree.{h,cpp}. Per the Design Notes in SPEC_FULL.md, nodes
live in a flat arena (a []quadNode owned by the tree) and reference
parent/children by int index rather than by pointer, avoiding the
self-referential child-to-parent back-pointer of the original C++
(std::optional<Quad*> m_parent). -1 denotes "no such node".

Rectangles use the half-open convention [xmin,xmax) x [ymin,ymax) so a
boundary point belongs to exactly one child after subdivision.

*/
//-----------------------------------------------------------------------------

package contour

import "github.com/3MFConsortium/gladius-sub002/vec/v2"

// Rect is an axis-aligned rectangle using half-open bounds: [Min, Max).
type Rect struct {
	Min, Max v2.Vec
}

// Contains reports whether point lies inside r using closed bounds (used for the
// caller-facing Quadtree.find_neighbors contract, which filters its search box
// with closed bounds against the points it already collected).
func (r Rect) Contains(p v2.Vec) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y && p.X <= r.Max.X && p.Y <= r.Max.Y
}

// containsHalfOpen reports point membership using half-open bounds, the
// convention the tree itself subdivides with.
func (r Rect) containsHalfOpen(p v2.Vec) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

func (r Rect) center() v2.Vec {
	return r.Min.Add(r.Max).MulScalar(0.5)
}

// intersects reports whether two rectangles overlap, comparing center distance to
// combined half-extents (matches areRectsIntersecting in the original).
func (a Rect) intersects(b Rect) bool {
	widthA, widthB := a.Max.X-a.Min.X, b.Max.X-b.Min.X
	heightA, heightB := a.Max.Y-a.Min.Y, b.Max.Y-b.Min.Y
	centerA, centerB := a.center(), b.center()
	return absf(centerA.X-centerB.X)*2 < (widthA+widthB) &&
		absf(centerA.Y-centerB.Y)*2 < (heightA+heightB)
}

// PointWithNormal is a stored sample: a position plus its surface normal.
type PointWithNormal struct {
	Position v2.Vec
	Normal   v2.Vec
}

// noNode marks the absence of a node index in the arena.
const noNode = -1

type quadNode struct {
	rect     Rect
	point    PointWithNormal
	hasPoint bool
	children [4]int // indices into the arena, noNode if absent
	isLeaf   bool
	parent   int // index into the arena, noNode for the root
}

// Quadtree is a recursively subdivided axis-aligned rectangle, each leaf storing
// at most one point-with-normal. Subdivision is triggered by inserting a second
// point into a leaf.
type Quadtree struct {
	nodes []quadNode
}

// NewQuadtree creates an empty tree rooted at rect.
func NewQuadtree(rect Rect) *Quadtree {
	t := &Quadtree{}
	t.nodes = append(t.nodes, quadNode{rect: rect, isLeaf: true, parent: noNode, children: [4]int{noNode, noNode, noNode, noNode}})
	return t
}

func (t *Quadtree) node(i int) *quadNode { return &t.nodes[i] }

// Insert adds point to the tree, subdividing leaves as needed. Returns
// ErrOutOfDomain if point lies outside the root rectangle.
func (t *Quadtree) Insert(point PointWithNormal) error {
	if !t.insert(0, point) {
		return ErrOutOfDomain
	}
	return nil
}

func (t *Quadtree) insert(idx int, point PointWithNormal) bool {
	n := t.node(idx)
	if !n.rect.containsHalfOpen(point.Position) {
		return false
	}

	if n.isLeaf && !n.hasPoint {
		n.point = point
		n.hasPoint = true
		return true
	}

	if n.isLeaf {
		t.split(idx)
	}
	return t.insertToChild(idx, point)
}

// split turns leaf idx into an internal node with four SW/SE/NW/NE children by
// quadrant around the rectangle's center, relocating any incumbent point.
func (t *Quadtree) split(idx int) {
	n := t.node(idx)
	center := n.rect.center()
	rect := n.rect

	quadrants := [4]Rect{
		{Min: rect.Min, Max: center},                                                       // SW
		{Min: v2.Vec{X: center.X, Y: rect.Min.Y}, Max: v2.Vec{X: rect.Max.X, Y: center.Y}}, // SE
		{Min: v2.Vec{X: rect.Min.X, Y: center.Y}, Max: v2.Vec{X: center.X, Y: rect.Max.Y}}, // NW
		{Min: center, Max: rect.Max},                                                       // NE
	}

	var childIdx [4]int
	for q, r := range quadrants {
		childIdx[q] = len(t.nodes)
		t.nodes = append(t.nodes, quadNode{rect: r, isLeaf: true, parent: idx, children: [4]int{noNode, noNode, noNode, noNode}})
	}

	n = t.node(idx) // re-fetch: append above may have reallocated the backing array
	n.children = childIdx
	n.isLeaf = false

	if n.hasPoint {
		incumbent := n.point
		n.point = PointWithNormal{}
		n.hasPoint = false
		t.insertToChild(idx, incumbent)
	}
}

func (t *Quadtree) insertToChild(idx int, point PointWithNormal) bool {
	children := t.node(idx).children
	for _, c := range children {
		if t.insert(c, point) {
			return true
		}
	}
	return false
}

// Find locates the deepest leaf index whose rectangle contains p, or false if p
// lies outside the root.
func (t *Quadtree) Find(p v2.Vec) (int, bool) {
	if !t.node(0).rect.containsHalfOpen(p) {
		return -1, false
	}
	idx := 0
	for !t.node(idx).isLeaf {
		found := false
		for _, c := range t.node(idx).children {
			if t.node(c).rect.containsHalfOpen(p) {
				idx = c
				found = true
				break
			}
		}
		if !found {
			return -1, false
		}
	}
	return idx, true
}

// FindNeighbors collects every stored point within the axis-aligned square of
// half-extent r centered at p.
func (t *Quadtree) FindNeighbors(p v2.Vec, r float32) []PointWithNormal {
	searchRect := Rect{
		Min: v2.Vec{X: p.X - r, Y: p.Y - r},
		Max: v2.Vec{X: p.X + r, Y: p.Y + r},
	}
	var out []PointWithNormal
	t.findNeighbors(searchRect, 0, &out)
	return out
}

func (t *Quadtree) findNeighbors(searchRect Rect, idx int, out *[]PointWithNormal) {
	n := t.node(idx)
	if !searchRect.intersects(n.rect) {
		return
	}
	if n.isLeaf {
		if n.hasPoint && searchRect.Contains(n.point.Position) {
			*out = append(*out, n.point)
		}
		return
	}
	for _, c := range n.children {
		t.findNeighbors(searchRect, c, out)
	}
}

// FindNearest finds the leaf containing p, then searches neighbors within the
// distance to that leaf's point (or the tree's diagonal, if the leaf is empty)
// to find the true closest stored point.
func (t *Quadtree) FindNearest(p v2.Vec) (PointWithNormal, bool) {
	idx, ok := t.Find(p)
	if !ok {
		return PointWithNormal{}, false
	}
	n := t.node(idx)

	searchRadius := t.diameter()
	if n.hasPoint {
		searchRadius = n.point.Position.Distance(p)
	}

	candidates := t.FindNeighbors(p, searchRadius)
	if len(candidates) == 0 {
		if n.hasPoint {
			return n.point, true
		}
		return PointWithNormal{}, false
	}

	best := candidates[0]
	bestDist := best.Position.SquaredDistance(p)
	for _, c := range candidates[1:] {
		d := c.Position.SquaredDistance(p)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best, true
}

func (t *Quadtree) diameter() float32 {
	root := t.node(0).rect
	return root.Min.Distance(root.Max)
}

// Remove empties the leaf holding point (if any), then walks up pruning any
// parent whose four children are all empty leaves.
func (t *Quadtree) Remove(point PointWithNormal) {
	idx, ok := t.Find(point.Position)
	if !ok {
		return
	}
	n := t.node(idx)
	if !n.hasPoint || n.point.Position != point.Position {
		return
	}
	n.point = PointWithNormal{}
	n.hasPoint = false

	parent := n.parent
	for parent != noNode {
		if !t.allChildrenEmptyLeaves(parent) {
			break
		}
		pn := t.node(parent)
		pn.isLeaf = true
		pn.children = [4]int{noNode, noNode, noNode, noNode}
		parent = pn.parent
	}
}

func (t *Quadtree) allChildrenEmptyLeaves(idx int) bool {
	n := t.node(idx)
	if n.isLeaf {
		return false
	}
	for _, c := range n.children {
		child := t.node(c)
		if !child.isLeaf || child.hasPoint {
			return false
		}
	}
	return true
}

// AnyPoint returns any stored point, used as a seed for polyline tracing.
func (t *Quadtree) AnyPoint() (PointWithNormal, bool) {
	return t.anyPoint(0)
}

func (t *Quadtree) anyPoint(idx int) (PointWithNormal, bool) {
	n := t.node(idx)
	if n.isLeaf {
		if n.hasPoint {
			return n.point, true
		}
		return PointWithNormal{}, false
	}
	for _, c := range n.children {
		if p, ok := t.anyPoint(c); ok {
			return p, true
		}
	}
	return PointWithNormal{}, false
}
