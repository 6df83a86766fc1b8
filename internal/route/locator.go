package route

import (
	"errors"

	"waypoint-locator/internal/common"
)

// ErrEmptyPath reports a locate query against a path with no waypoints.
var ErrEmptyPath = errors.New("route: locate on empty path")

// Pose is a locator query. Heading is accepted for interface compatibility
// with pose sources but is not read by Locate.
type Pose struct {
	Position common.Vec2
	Heading  float64
}

// Fix is the result of a locate query. All three fields are indices into the
// Path. Behind and Ahead are always path-order neighbours of Nearest, except
// that Behind equals Nearest when the query leans toward the successor.
type Fix struct {
	Nearest int
	Behind  int
	Ahead   int
}

// Locator answers nearest-waypoint queries against an immutable Path. It
// holds no mutable state, so a single Locator may be shared by concurrent
// callers.
type Locator struct {
	path *Path
}

// NewLocator returns a Locator over path.
func NewLocator(path *Path) *Locator {
	return &Locator{path: path}
}

// Path returns the path this locator queries.
func (l *Locator) Path() *Path {
	return l.path
}

// Locate returns the waypoint nearest the pose plus that waypoint's
// neighbours partitioned into behind and ahead.
//
// The split is inferred purely from the query position: the query vector is
// compared by cosine similarity against the vectors to the predecessor and
// successor, and the better-aligned side is taken as behind. Pose heading is
// deliberately not consulted, so the split can come out wrong where the path
// curves sharply or the three points are nearly collinear.
func (l *Locator) Locate(pose Pose) (Fix, error) {
	if l.path == nil || l.path.Len() == 0 {
		return Fix{}, ErrEmptyPath
	}

	n := l.path.Len()
	j := l.path.nearest(pose.Position)
	i := (j - 1 + n) % n
	k := (j + 1) % n

	pj := l.path.waypoints[j].Position
	vJI := l.path.waypoints[i].Position.Sub(pj)
	vJK := l.path.waypoints[k].Position.Sub(pj)
	vJP := pose.Position.Sub(pj)

	ca1 := common.CosAngleBetween(vJP, vJI)
	ca2 := common.CosAngleBetween(vJP, vJK)

	if ca1 > ca2 {
		return Fix{Nearest: j, Behind: i, Ahead: j}, nil
	}
	return Fix{Nearest: j, Behind: j, Ahead: k}, nil
}
