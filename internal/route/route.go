// Package route holds the reference path a vehicle is located against: an
// ordered loop of waypoints with precomputed arc-length (Frenet s)
// coordinates and a spatial index for nearest-waypoint queries.
package route

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"waypoint-locator/internal/common"
	"waypoint-locator/internal/monitoring"
)

const (
	// MinWaypoints is the smallest input that can describe a loop.
	MinWaypoints = 3

	// DefaultClosureThreshold is the maximum distance, in world units,
	// between the first waypoint and a candidate closing waypoint for the
	// two to count as the same point on the loop.
	DefaultClosureThreshold = 15.0
)

// ErrInvalidPath reports a raw waypoint list too short to form a path.
var ErrInvalidPath = errors.New("route: too few waypoints")

// Waypoint is one point on the reference path. S is the cumulative distance
// from the first waypoint, following path order.
type Waypoint struct {
	ID       int
	Position common.Vec2
	S        float64
}

// Path is a closed loop of waypoints with s-coordinates and a spatial index
// over their positions. It is immutable once built and safe for concurrent
// readers; to change routes, build a new Path and swap the reference.
type Path struct {
	waypoints []Waypoint
	total     float64
	tree      *kdtree.Tree
}

// Builder constructs a Path from a raw waypoint list.
type Builder struct {
	// ClosureThreshold overrides DefaultClosureThreshold when positive.
	ClosureThreshold float64
}

// Build trims an overlapping loop-closure tail if present, accumulates
// arc-length per waypoint, and indexes the result. The input list must hold
// at least MinWaypoints entries.
func (b Builder) Build(points []common.Vec2) (*Path, error) {
	if len(points) < MinWaypoints {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInvalidPath, len(points), MinWaypoints)
	}

	threshold := b.ClosureThreshold
	if threshold <= 0 {
		threshold = DefaultClosureThreshold
	}
	points = trimClosure(points, threshold)

	waypoints := make([]Waypoint, len(points))
	total := 0.0
	for i, p := range points {
		if i > 0 {
			total += p.Dist(points[i-1])
		}
		waypoints[i] = Waypoint{ID: i, Position: p, S: total}
	}

	return &Path{
		waypoints: waypoints,
		total:     total,
		tree:      newIndex(waypoints),
	}, nil
}

// BuildPath builds a Path with default settings.
func BuildPath(points []common.Vec2) (*Path, error) {
	return Builder{}.Build(points)
}

// trimClosure drops the overlapping tail of a recording that ran past its own
// starting point. A candidate closing waypoint must lie on the far side of
// the start relative to the initial travel direction (negative dot product)
// and within threshold of the first waypoint. Only the back half of the list
// is scanned. Finding no closure is not an error; the list is used as-is.
func trimClosure(points []common.Vec2, threshold float64) []common.Vec2 {
	vStart := points[1].Sub(points[0])
	for i := len(points) - 1; i > len(points)/2; i-- {
		vToI := points[i].Sub(points[0])
		if vStart.Dot(vToI) < 0 && points[0].Dist(points[i]) < threshold {
			return points[:i+1]
		}
	}
	monitoring.Logf("route: no closure overlap found among %d waypoints, using list unchanged", len(points))
	return points
}

// Len returns the number of waypoints.
func (p *Path) Len() int {
	return len(p.waypoints)
}

// At returns the waypoint at index i.
func (p *Path) At(i int) Waypoint {
	return p.waypoints[i]
}

// TotalLength returns the arc-length of the last waypoint, i.e. the length of
// the path traversed in order.
func (p *Path) TotalLength() float64 {
	return p.total
}

// Waypoints returns a copy of the waypoint sequence.
func (p *Path) Waypoints() []Waypoint {
	out := make([]Waypoint, len(p.waypoints))
	copy(out, p.waypoints)
	return out
}

// Positions returns a copy of the waypoint positions in path order.
func (p *Path) Positions() []common.Vec2 {
	out := make([]common.Vec2, len(p.waypoints))
	for i, wp := range p.waypoints {
		out[i] = wp.Position
	}
	return out
}

// PointAtS maps an s-coordinate back to a point on the path by linear
// interpolation between the bracketing waypoints. s wraps modulo the total
// length, so negative values and values past the end stay on the loop.
func (p *Path) PointAtS(s float64) common.Vec2 {
	n := len(p.waypoints)
	if n == 0 {
		return common.Vec2{}
	}
	if p.total == 0 {
		return p.waypoints[0].Position
	}

	s = math.Mod(s, p.total)
	if s < 0 {
		s += p.total
	}

	// Last waypoint with S <= s; s < total guarantees i+1 exists.
	i := sort.Search(n, func(i int) bool { return p.waypoints[i].S > s }) - 1
	a, b := p.waypoints[i], p.waypoints[i+1]
	seg := b.S - a.S
	if seg == 0 {
		return a.Position
	}
	t := (s - a.S) / seg
	return a.Position.Add(b.Position.Sub(a.Position).Scale(t))
}
