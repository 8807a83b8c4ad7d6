package simplot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// dashes maps the linestyle names accepted on the command line to vg
// dash patterns. A nil pattern is a solid line.
var dashes = map[string][]vg.Length{
	"solid":   nil,
	"dotted":  {vg.Points(1), vg.Points(3)},
	"dashed":  {vg.Points(6), vg.Points(4)},
	"dashdot": {vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)},
}

// Dashes resolves a linestyle name to its dash pattern.
func Dashes(style string) ([]vg.Length, error) {
	d, ok := dashes[style]
	if !ok {
		return nil, fmt.Errorf("%w: unknown linestyle %q", ErrBadFormat, style)
	}
	return d, nil
}

// NewPlot builds an empty plot with the fonts and legend settings from
// cfg applied.
func NewPlot(cfg Config) *plot.Plot {
	p := plot.New()
	p.Title.TextStyle.Font.Size = vg.Points(cfg.FontSize)
	p.X.Label.TextStyle.Font.Size = vg.Points(cfg.FontSize)
	p.Y.Label.TextStyle.Font.Size = vg.Points(cfg.FontSize)
	p.X.Tick.Label.Font.Size = vg.Points(cfg.FontSize - 2)
	p.Y.Tick.Label.Font.Size = vg.Points(cfg.FontSize - 2)
	p.Legend.TextStyle.Font.Size = vg.Points(cfg.LegendSize)
	p.Legend.Top = true
	return p
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// AddLine plots one data series as a line. An empty label keeps the
// series out of the legend.
func AddLine(p *plot.Plot, cfg Config, xs, ys []float64, c color.Color, style, label string) error {
	dash, err := Dashes(style)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(xys(xs, ys))
	if err != nil {
		return err
	}
	l.LineStyle.Color = c
	l.LineStyle.Width = vg.Points(cfg.LineWidth)
	l.LineStyle.Dashes = dash
	p.Add(l)
	if label != "" {
		p.Legend.Add(label, l)
	}
	return nil
}

// AddScatter superimposes glyph markers on a data series.
func AddScatter(p *plot.Plot, xs, ys []float64, c color.Color) error {
	s, err := plotter.NewScatter(xys(xs, ys))
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(2.5)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)
	return nil
}

// SavePNG renders p at w x h inches and the configured DPI into path,
// creating the output directory if needed.
func SavePNG(p *plot.Plot, cfg Config, path string, w, h float64) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch),
		vgimg.UseDPI(cfg.DPI),
	)
	p.Draw(draw.New(img))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
