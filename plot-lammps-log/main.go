// plot-lammps-log plots thermo properties from LAMMPS log files against
// the timestep. Either one log file with several properties or several
// log files with one property can be plotted on the same axes.
package main

import (
	"flag"
	"log"
	"os"

	"bwestbro.com/simplot"
)

// Flags
var (
	inputs simplot.ListFlag
	props  simplot.ListFlag
	labels simplot.ListFlag
	colors simplot.ListFlag
	output = flag.String("o", "figures/plot-lammps-log.png", "path to save the resulting figure to")
	ylabel = flag.String("ylabel", "", "Y axis label")
	cmap   = flag.String("cmap", "", "colormap used to assign colors to each data series")
)

func init() {
	flag.Var(&inputs, "i", "path to a LAMMPS log file, repeatable")
	flag.Var(&props, "p", "property name to extract from the log file, repeatable")
	flag.Var(&labels, "l", "label to associate with each data series, repeatable")
	flag.Var(&colors, "c", "color to associate with each data series, repeatable")
}

func main() {
	flag.Parse()
	if len(inputs) == 0 {
		log.Fatalln("-i flag is required, aborting")
	}
	if len(props) == 0 {
		log.Fatalln("-p flag is required, aborting")
	}
	if len(props) > 1 && len(inputs) != 1 {
		log.Fatalln("must have exactly 1 input file when plotting multiple properties")
	}
	if len(inputs) > 1 && len(props) != 1 {
		log.Fatalln("must have exactly 1 property when plotting multiple input files")
	}
	nseries := len(inputs) * len(props)
	opts := simplot.SeriesOpts{Labels: labels, Colors: colors, Cmap: *cmap}
	if err := opts.Check(nseries); err != nil {
		log.Fatalln(err)
	}
	cfg, err := simplot.LoadConfig(simplot.ConfigFile)
	if err != nil {
		log.Fatalln(err)
	}
	seriesColors, err := simplot.SeriesColors(opts, nseries)
	if err != nil {
		log.Fatalln(err)
	}
	seriesLabels, _ := simplot.FillLabels(labels, nseries)
	p := simplot.NewPlot(cfg)
	p.X.Label.Text = "Timestep"
	p.Y.Label.Text = *ylabel
	i := 0
	for _, name := range inputs {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalln(err)
		}
		steps, data, err := simplot.ParseLog(f, props)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v\n", name, err)
		}
		xs := make([]float64, len(steps))
		for k, s := range steps {
			xs[k] = float64(s)
		}
		for _, prop := range props {
			err := simplot.AddLine(p, cfg, xs, data[prop],
				seriesColors[i], "solid", seriesLabels[i])
			if err != nil {
				log.Fatalln(err)
			}
			i++
		}
	}
	if err := simplot.SavePNG(p, cfg, *output, 10, 6); err != nil {
		log.Fatalln(err)
	}
}
