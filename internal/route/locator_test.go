package route

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waypoint-locator/internal/common"
	"waypoint-locator/internal/monitoring"
)

func squareLocator(t *testing.T) *Locator {
	t.Helper()
	monitoring.SetLogger(nil)
	t.Cleanup(func() { monitoring.SetLogger(nil) })

	path, err := BuildPath(squareCorners())
	require.NoError(t, err)
	return NewLocator(path)
}

func TestLocateAtEachWaypoint(t *testing.T) {
	loc := squareLocator(t)
	n := loc.Path().Len()

	for j := 0; j < n; j++ {
		pose := Pose{Position: loc.Path().At(j).Position}
		fix, err := loc.Locate(pose)
		require.NoError(t, err)

		assert.Equal(t, j, fix.Nearest, "pose on waypoint %d", j)
		// On the waypoint itself both cosines hit the zero-vector
		// convention (=1), so the split falls to the successor side.
		assert.Equal(t, j, fix.Behind)
		assert.Equal(t, (j+1)%n, fix.Ahead)
	}
}

func TestLocateNearestOnly(t *testing.T) {
	loc := squareLocator(t)

	fix, err := loc.Locate(Pose{Position: common.Vec2{X: 10, Y: 0}})
	require.NoError(t, err)
	assert.Equal(t, 1, fix.Nearest)
}

func TestLocateBetweenWaypoints(t *testing.T) {
	loc := squareLocator(t)

	// South of waypoint 1, between waypoints 0 and 1 in travel order: the
	// query leans back toward the predecessor.
	fix, err := loc.Locate(Pose{Position: common.Vec2{X: 10, Y: -5}})
	require.NoError(t, err)
	assert.Equal(t, Fix{Nearest: 1, Behind: 0, Ahead: 1}, fix)

	// Just past waypoint 1 along the second edge.
	fix, err = loc.Locate(Pose{Position: common.Vec2{X: 10, Y: 2}})
	require.NoError(t, err)
	assert.Equal(t, Fix{Nearest: 1, Behind: 1, Ahead: 2}, fix)
}

func TestLocateWrapsAroundLoop(t *testing.T) {
	loc := squareLocator(t)
	n := loc.Path().Len()

	// Approaching the start from the last edge: behind must wrap to n-1.
	fix, err := loc.Locate(Pose{Position: common.Vec2{X: -1, Y: 2}})
	require.NoError(t, err)
	assert.Equal(t, Fix{Nearest: 0, Behind: n - 1, Ahead: 0}, fix)

	// Leaving the start along the first edge.
	fix, err = loc.Locate(Pose{Position: common.Vec2{X: 2, Y: -1}})
	require.NoError(t, err)
	assert.Equal(t, Fix{Nearest: 0, Behind: 0, Ahead: 1}, fix)
}

func TestLocateNeighboursAlwaysAdjacent(t *testing.T) {
	loc := squareLocator(t)
	n := loc.Path().Len()

	for x := -6.0; x <= 16; x += 2.5 {
		for y := -6.0; y <= 16; y += 2.5 {
			fix, err := loc.Locate(Pose{Position: common.Vec2{X: x, Y: y}})
			require.NoError(t, err)

			pred := (fix.Nearest - 1 + n) % n
			succ := (fix.Nearest + 1) % n
			ok := fix == Fix{Nearest: fix.Nearest, Behind: pred, Ahead: fix.Nearest} ||
				fix == Fix{Nearest: fix.Nearest, Behind: fix.Nearest, Ahead: succ}
			assert.True(t, ok, "query (%v,%v) returned non-neighbour fix %+v", x, y, fix)
		}
	}
}

func TestLocateIgnoresHeading(t *testing.T) {
	loc := squareLocator(t)

	pos := common.Vec2{X: 10, Y: -5}
	for _, heading := range []float64{0, 1.5708, 3.1415, -2.5} {
		fix, err := loc.Locate(Pose{Position: pos, Heading: heading})
		require.NoError(t, err)
		assert.Equal(t, Fix{Nearest: 1, Behind: 0, Ahead: 1}, fix,
			fmt.Sprintf("heading %v must not change the fix", heading))
	}
}

func TestLocateEmptyPath(t *testing.T) {
	for _, loc := range []*Locator{NewLocator(nil), NewLocator(&Path{})} {
		fix, err := loc.Locate(Pose{Position: common.Vec2{X: 1, Y: 1}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyPath))
		assert.Equal(t, Fix{}, fix)
	}
}

func TestLocateConcurrentReaders(t *testing.T) {
	loc := squareLocator(t)

	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(seed float64) {
			defer func() { done <- struct{}{} }()
			for i := 0; i < 200; i++ {
				pose := Pose{Position: common.Vec2{X: seed + float64(i%7), Y: float64(i % 11)}}
				if _, err := loc.Locate(pose); err != nil {
					t.Errorf("concurrent locate failed: %v", err)
					return
				}
			}
		}(float64(g))
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}
