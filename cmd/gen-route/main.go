package main

import (
	"flag"
	"log"
	"math"

	"waypoint-locator/internal/common"
	"waypoint-locator/internal/route"
)

// Generates a sample closed route: an ellipse whose recording runs a little
// past its own starting point, the way a lap recorder would. The overlap
// tail exercises the loop-closure trimming in route.Build.
func main() {
	out := flag.String("out", "assets/route.csv", "output CSV file")
	samples := flag.Int("samples", 120, "waypoints per lap")
	overlap := flag.Int("overlap", 5, "extra waypoints recorded past the start")
	flag.Parse()

	const (
		radiusX = 300.0
		radiusY = 200.0
	)

	points := make([]common.Vec2, 0, *samples+*overlap)
	for i := 0; i < *samples+*overlap; i++ {
		theta := 2 * math.Pi * float64(i) / float64(*samples)
		points = append(points, common.Vec2{
			X: radiusX * math.Cos(theta),
			Y: radiusY * math.Sin(theta),
		})
	}

	if err := route.SaveCSV(*out, points); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d waypoints to %s (%d overlap the start)", len(points), *out, *overlap)
}
