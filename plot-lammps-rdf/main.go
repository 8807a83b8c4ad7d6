// plot-lammps-rdf plots the time-averaged radial distribution function
// exported by a LAMMPS "fix ave/time" RDF dump.
package main

import (
	"flag"
	"log"
	"os"

	"bwestbro.com/simplot"
)

// Flags
var (
	columns simplot.IntListFlag
	labels  simplot.ListFlag
	colors  simplot.ListFlag
	input   = flag.String("i", "", "path to a LAMMPS RDF file")
	output  = flag.String("o", "figures/plot-lammps-rdf.png", "path to save the resulting figure to")
	cmap    = flag.String("cmap", "", "colormap used to assign colors to each data column")
)

func init() {
	flag.Var(&columns, "column", "index of the data column(s) to plot; bin id and distance columns do not count")
	flag.Var(&labels, "l", "label to associate with each data column, repeatable")
	flag.Var(&colors, "c", "color to associate with each data column, repeatable")
}

func main() {
	flag.Parse()
	if *input == "" {
		log.Fatalln("-i flag is required, aborting")
	}
	if len(columns) == 0 {
		log.Fatalln("-column flag is required, aborting")
	}
	opts := simplot.SeriesOpts{Labels: labels, Colors: colors, Cmap: *cmap}
	if err := opts.Check(len(columns)); err != nil {
		log.Fatalln(err)
	}
	cfg, err := simplot.LoadConfig(simplot.ConfigFile)
	if err != nil {
		log.Fatalln(err)
	}
	f, err := os.Open(*input)
	if err != nil {
		log.Fatalln(err)
	}
	distances, data, err := simplot.ParseRDF(f, columns)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %v\n", *input, err)
	}
	seriesColors, err := simplot.SeriesColors(opts, len(columns))
	if err != nil {
		log.Fatalln(err)
	}
	seriesLabels, _ := simplot.FillLabels(labels, len(columns))
	p := simplot.NewPlot(cfg)
	p.X.Label.Text = "Distance (Å)"
	p.Y.Label.Text = "g(r)"
	for i, col := range columns {
		avg := simplot.AverageRDF(data[col])
		err := simplot.AddLine(p, cfg, distances, avg,
			seriesColors[i], "solid", seriesLabels[i])
		if err != nil {
			log.Fatalln(err)
		}
	}
	if err := simplot.SavePNG(p, cfg, *output, 8, 6); err != nil {
		log.Fatalln(err)
	}
}
