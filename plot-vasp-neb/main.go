// plot-vasp-neb plots barrier profiles from VTST-formatted neb.dat
// files, one data series per input file.
package main

import (
	"flag"
	"log"
	"os"

	"bwestbro.com/simplot"
)

// Flags
var (
	inputs     simplot.ListFlag
	labels     simplot.ListFlag
	colors     simplot.ListFlag
	linestyles simplot.ListFlag
	output     = flag.String("o", "figures/plot-vasp-neb.png", "path to save the resulting figure to")
	cmap       = flag.String("cmap", "", "colormap used to assign colors to each data series")
)

func init() {
	flag.Var(&inputs, "i", "path to a VTST formatted NEB data file, repeatable")
	flag.Var(&labels, "l", "label to associate with each data series, repeatable")
	flag.Var(&colors, "c", "color to associate with each data series, repeatable")
	flag.Var(&linestyles, "linestyle", "linestyle (solid, dotted, dashed, dashdot) for each data series, repeatable")
}

func main() {
	flag.Parse()
	if len(inputs) == 0 {
		log.Fatalln("-i flag is required, aborting")
	}
	opts := simplot.SeriesOpts{
		Labels:     labels,
		Colors:     colors,
		Linestyles: linestyles,
		Cmap:       *cmap,
	}
	if err := opts.Check(len(inputs)); err != nil {
		log.Fatalln(err)
	}
	cfg, err := simplot.LoadConfig(simplot.ConfigFile)
	if err != nil {
		log.Fatalln(err)
	}
	seriesColors, err := simplot.SeriesColors(opts, len(inputs))
	if err != nil {
		log.Fatalln(err)
	}
	seriesLabels, _ := simplot.FillLabels(labels, len(inputs))
	seriesStyles := simplot.FillLinestyles(linestyles, len(inputs))
	p := simplot.NewPlot(cfg)
	p.X.Label.Text = "Normalized Path Length"
	p.Y.Label.Text = "Migration Energy (eV)"
	for i, name := range inputs {
		f, err := os.Open(name)
		if err != nil {
			log.Fatalln(err)
		}
		positions, energies, err := simplot.ParseNEB(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %v\n", name, err)
		}
		err = simplot.AddLine(p, cfg, positions, energies,
			seriesColors[i], seriesStyles[i], seriesLabels[i])
		if err != nil {
			log.Fatalln(err)
		}
		// mark the explicit image positions on top of the line
		if err := simplot.AddScatter(p, positions, energies, seriesColors[i]); err != nil {
			log.Fatalln(err)
		}
	}
	if err := simplot.SavePNG(p, cfg, *output, 8, 6); err != nil {
		log.Fatalln(err)
	}
}
