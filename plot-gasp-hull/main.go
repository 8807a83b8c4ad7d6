// plot-gasp-hull plots the convex hull of the structures created by a
// GASP run.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"bwestbro.com/simplot"
)

// Flags
var (
	input  = flag.String("i", "", "path to a GASP run_data file")
	output = flag.String("o", "figures/plot-gasp-hull.png", "path to save the resulting figure to")
)

func main() {
	flag.Parse()
	if *input == "" {
		log.Fatalln("-i flag is required, aborting")
	}
	f, err := os.Open(*input)
	if err != nil {
		log.Fatalln(err)
	}
	rd, err := simplot.ParseRunData(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %v\n", *input, err)
	}
	points, hull, err := simplot.Hull(rd)
	if err != nil {
		log.Fatalln(err)
	}
	// the hull plot carries its own styling, so configuration.json is
	// not consulted here
	cfg := simplot.DefaultConfig()
	p := simplot.NewPlot(cfg)
	a := rd.Endpoints[0].ReducedFormula()
	b := rd.Endpoints[1].ReducedFormula()
	p.Title.Text = fmt.Sprintf("%s-%s", a, b)
	p.X.Label.Text = fmt.Sprintf("x in %s(1-x)%s(x)", a, b)
	p.Y.Label.Text = "Formation Energy (eV/atom)"
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, pt := range points {
		xs[i] = pt.X
		ys[i] = pt.EForm
	}
	colors := simplot.DefaultColors(2)
	if err := simplot.AddScatter(p, xs, ys, colors[0]); err != nil {
		log.Fatalln(err)
	}
	hx := make([]float64, len(hull))
	hy := make([]float64, len(hull))
	for i, pt := range hull {
		hx[i] = pt.X
		hy[i] = pt.EForm
	}
	if err := simplot.AddLine(p, cfg, hx, hy, colors[1], "solid", ""); err != nil {
		log.Fatalln(err)
	}
	if err := simplot.AddScatter(p, hx, hy, colors[1]); err != nil {
		log.Fatalln(err)
	}
	if err := simplot.SavePNG(p, cfg, *output, 8, 6); err != nil {
		log.Fatalln(err)
	}
}
