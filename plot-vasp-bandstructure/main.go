// plot-vasp-bandstructure plots a band structure from VASPKIT BAND.dat
// output, with the high-symmetry points from KLABELS marked on the
// k-path axis. Elemental and orbital projections are recognized but not
// implemented yet.
package main

import (
	"flag"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"

	"bwestbro.com/simplot"
)

// Flags
var (
	elemental = flag.Bool("elemental", false, "plot the element projected band structure")
	spin      = flag.Bool("spin", false, "plot the spin projected band structure")
	orbital   = flag.Bool("orbital", false, "plot the orbital projected band structure")
	emin      = flag.Float64("emin", math.NaN(), "minimum energy")
	emax      = flag.Float64("emax", math.NaN(), "maximum energy")
	dir       = flag.String("dir", ".", "directory holding POSCAR, KLABELS, and the band data")
	output    = flag.String("o", "figures/plot-vasp-bandstructure.png", "path to save the resulting figure to")
)

func main() {
	flag.Parse()
	if *elemental {
		log.Fatalf("%v: elemental projection\n", simplot.ErrUnsupported)
	}
	if *orbital {
		log.Fatalf("%v: orbital projection\n", simplot.ErrUnsupported)
	}
	cfg, err := simplot.LoadConfig(simplot.ConfigFile)
	if err != nil {
		log.Fatalln(err)
	}
	paths, err := simplot.LocateBandFiles(*dir, false, false)
	if err != nil {
		log.Fatalln(err)
	}
	f, err := os.Open(paths[0])
	if err != nil {
		log.Fatalln(err)
	}
	bf, err := simplot.ParseBand(f)
	f.Close()
	if err != nil {
		log.Fatalf("%s: %v\n", paths[0], err)
	}
	if len(bf.Labels) < 2 {
		log.Fatalf("%s: no energy columns\n", paths[0])
	}
	k, err := os.Open(filepath.Join(*dir, "KLABELS"))
	if err != nil {
		log.Fatalln(err)
	}
	klabels, err := simplot.ParseKLabels(k)
	k.Close()
	if err != nil {
		log.Fatalf("KLABELS: %v\n", err)
	}

	channels := bf.Labels[1:2]
	styles := []string{"solid"}
	if *spin {
		if len(bf.Labels) < 3 {
			log.Fatalf("%s: spin bands need an up and a down energy column\n", paths[0])
		}
		channels = bf.Labels[1:3]
		styles = []string{"solid", "dashed"}
	}

	p := simplot.NewPlot(cfg)
	p.Y.Label.Text = "E - E_Fermi (eV)"
	colors := simplot.DefaultColors(bf.NBands)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	kaxis := bf.Labels[0]
	for ci, channel := range channels {
		for bi, band := range bf.Bands {
			err := simplot.AddLine(p, cfg, band[kaxis], band[channel],
				colors[bi], styles[ci], "")
			if err != nil {
				log.Fatalln(err)
			}
			for _, e := range band[channel] {
				ymin = math.Min(ymin, e)
				ymax = math.Max(ymax, e)
			}
		}
	}
	if !math.IsNaN(*emin) {
		ymin = *emin
	}
	if !math.IsNaN(*emax) {
		ymax = *emax
	}
	p.Y.Min, p.Y.Max = ymin, ymax

	ticks := make([]plot.Tick, len(klabels))
	for i, kl := range klabels {
		ticks[i] = plot.Tick{Value: kl.K, Label: kl.Label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	if len(klabels) > 0 {
		p.X.Min = klabels[0].K
		p.X.Max = klabels[len(klabels)-1].K
	}
	// Fermi level and the high-symmetry point separators
	thin := cfg
	thin.LineWidth = 1
	if err := simplot.AddLine(p, thin, []float64{p.X.Min, p.X.Max}, []float64{0, 0}, color.Black, "dashed", ""); err != nil {
		log.Fatalln(err)
	}
	for _, kl := range klabels {
		if err := simplot.AddLine(p, thin, []float64{kl.K, kl.K}, []float64{ymin, ymax}, color.Black, "solid", ""); err != nil {
			log.Fatalln(err)
		}
	}

	if err := simplot.SavePNG(p, cfg, *output, 8, 6); err != nil {
		log.Fatalln(err)
	}
}
