package simplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotutil"
)

// namedColors covers the plain color names accepted on the command line.
var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"brown":   {165, 42, 42, 255},
	"pink":    {255, 192, 203, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
}

// ParseColor accepts a color name from namedColors or a #rrggbb hex
// string.
func ParseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{
				R: uint8(v >> 16),
				G: uint8(v >> 8),
				B: uint8(v),
				A: 255,
			}, nil
		}
	}
	return nil, fmt.Errorf("%w: unknown color %q", ErrBadFormat, s)
}

// colormaps maps the colormap names accepted on the command line to
// their moreland constructors.
var colormaps = map[string]func() palette.ColorMap{
	"kindlmann":           moreland.Kindlmann,
	"extended_kindlmann":  moreland.ExtendedKindlmann,
	"black_body":          moreland.BlackBody,
	"extended_black_body": moreland.ExtendedBlackBody,
	"smooth_blue_red":     func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"smooth_blue_tan":     func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"smooth_green_purple": func() palette.ColorMap { return moreland.SmoothGreenPurple() },
}

// Colormap samples n evenly spaced colors from the named colormap. The
// moreland maps are checked first, then the ColorBrewer palettes.
func Colormap(name string, n int) ([]color.Color, error) {
	if f, ok := colormaps[name]; ok {
		cm := f()
		cm.SetMin(0)
		cm.SetMax(1)
		if n == 1 {
			c, err := cm.At(0)
			if err != nil {
				return nil, err
			}
			return []color.Color{c}, nil
		}
		return cm.Palette(n).Colors(), nil
	}
	if p, err := brewer.GetPalette(brewer.TypeAny, name, n); err == nil {
		return p.Colors(), nil
	}
	return nil, fmt.Errorf("%w: unknown colormap %q", ErrBadFormat, name)
}

// DefaultColors returns n colors from the default plotutil cycle.
func DefaultColors(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = plotutil.Color(i)
	}
	return colors
}

// SeriesColors resolves the color arguments for n data series: explicit
// colors win, then a named colormap, then the default cycle.
func SeriesColors(opts SeriesOpts, n int) ([]color.Color, error) {
	if len(opts.Colors) > 0 {
		colors := make([]color.Color, len(opts.Colors))
		for i, s := range opts.Colors {
			c, err := ParseColor(s)
			if err != nil {
				return nil, err
			}
			colors[i] = c
		}
		return colors, nil
	}
	if opts.Cmap != "" {
		return Colormap(opts.Cmap, n)
	}
	return DefaultColors(n), nil
}
