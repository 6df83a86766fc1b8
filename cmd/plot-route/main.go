package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"waypoint-locator/internal/route"
)

// Renders a route to a standalone HTML scatter plot, coloring each waypoint
// by its s-coordinate so the travel direction and the closure point are
// visible at a glance.
func main() {
	in := flag.String("route", "assets/route.csv", "CSV route file (x,y per line)")
	out := flag.String("out", "route.html", "output HTML file")
	flag.Parse()

	points, err := route.LoadCSV(*in)
	if err != nil {
		log.Fatal(err)
	}
	path, err := route.BuildPath(points)
	if err != nil {
		log.Fatal(err)
	}

	data := make([]opts.ScatterData, 0, path.Len())
	maxAbs := 0.0
	for i := 0; i < path.Len(); i++ {
		wp := path.At(i)
		if math.Abs(wp.Position.X) > maxAbs {
			maxAbs = math.Abs(wp.Position.X)
		}
		if math.Abs(wp.Position.Y) > maxAbs {
			maxAbs = math.Abs(wp.Position.Y)
		}
		data = append(data, opts.ScatterData{Value: []interface{}{wp.Position.X, wp.Position.Y, wp.S}})
	}

	// Square plot with symmetric axes so the loop keeps its shape
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Route", Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Reference route",
			Subtitle: fmt.Sprintf("waypoints=%d length=%.1f", path.Len(), path.TotalLength()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(path.TotalLength()),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#31688e", "#35b779", "#fde725"}},
		}),
	)
	scatter.AddSeries("waypoints", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := scatter.Render(f); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
