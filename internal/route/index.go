package route

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"waypoint-locator/internal/common"
)

// node is one waypoint position in the spatial index, tagged with its
// position in the Path so query results map back to waypoint order.
type node struct {
	x, y float64
	idx  int
}

func (n node) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(node)
	switch d {
	case 0:
		return n.x - q.x
	default:
		return n.y - q.y
	}
}

func (n node) Dims() int { return 2 }

func (n node) Distance(c kdtree.Comparable) float64 {
	q := c.(node)
	dx, dy := n.x-q.x, n.y-q.y
	return dx*dx + dy*dy
}

// nodes implements kdtree.Interface over the waypoint set.
type nodes []node

func (ns nodes) Index(i int) kdtree.Comparable         { return ns[i] }
func (ns nodes) Len() int                              { return len(ns) }
func (ns nodes) Slice(start, end int) kdtree.Interface { return ns[start:end] }
func (ns nodes) Pivot(d kdtree.Dim) int                { return plane{Dim: d, nodes: ns}.Pivot() }

// plane sorts nodes along a single kd-tree dimension.
type plane struct {
	kdtree.Dim
	nodes
}

func (p plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.nodes[i].x < p.nodes[j].x
	default:
		return p.nodes[i].y < p.nodes[j].y
	}
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.nodes = p.nodes[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i]
}

// newIndex builds a static kd-tree over the waypoint positions. Tree entry j
// corresponds to waypoint j.
func newIndex(waypoints []Waypoint) *kdtree.Tree {
	ns := make(nodes, len(waypoints))
	for i, wp := range waypoints {
		ns[i] = node{x: wp.Position.X, y: wp.Position.Y, idx: i}
	}
	return kdtree.New(ns, false)
}

// nearest returns the index of the waypoint closest to q.
func (p *Path) nearest(q common.Vec2) int {
	got, _ := p.tree.Nearest(node{x: q.X, y: q.Y, idx: -1})
	return got.(node).idx
}
