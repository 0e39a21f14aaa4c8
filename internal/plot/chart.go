// Package plot renders a benchmark report as a time-vs-amount line chart.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gitrdm/gochange/internal/bench"
)

// ErrEmptyReport is returned when there is nothing to plot.
var ErrEmptyReport = errors.New("report has no data points")

// Options controls the chart geometry.
type Options struct {
	Width, Height int
	Title         string
	// LineWidth is the stroke width of each series in pixels.
	LineWidth float32
}

// DefaultOptions is used for zero fields.
var DefaultOptions = Options{
	Width:     800,
	Height:    480,
	Title:     "Greedy vs dynamic programming",
	LineWidth: 2,
}

// Palette assigns series colours in report order.
var Palette = []color.RGBA{
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	axisColor  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	gridColor  = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	textColor  = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

const (
	marginLeft   = 80
	marginRight  = 20
	marginTop    = 40
	marginBottom = 50
	gridLines    = 5
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	if o.Title == "" {
		o.Title = DefaultOptions.Title
	}
	if o.LineWidth <= 0 {
		o.LineWidth = DefaultOptions.LineWidth
	}
	return o
}

// Render draws the report onto a new RGBA image: one polyline per solver,
// amount on the x axis and mean time per call on the y axis.
func Render(r *bench.Report, opts Options) (*image.RGBA, error) {
	if r == nil || len(r.Amounts) == 0 || len(r.Series) == 0 {
		return nil, ErrEmptyReport
	}
	opts = opts.withDefaults()
	if opts.Width <= marginLeft+marginRight || opts.Height <= marginTop+marginBottom {
		return nil, fmt.Errorf("Render: canvas %dx%d is smaller than the margins", opts.Width, opts.Height)
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	c := newCanvas(img, r, opts)
	c.drawGrid()
	for i, s := range r.Series {
		c.drawSeries(s, Palette[i%len(Palette)], opts.LineWidth)
	}
	c.drawAxes()
	c.drawLabels(opts.Title)
	c.drawLegend(r.Series)
	return img, nil
}

// WritePNG renders the report and encodes it as PNG.
func WritePNG(w io.Writer, r *bench.Report, opts Options) error {
	img, err := Render(r, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// canvas maps data coordinates to pixels inside the plot area.
type canvas struct {
	img                  *image.RGBA
	report               *bench.Report
	raster               *vector.Rasterizer
	x0, y0, x1, y1       float64
	minAmount, maxAmount float64
	maxTime              time.Duration
}

func newCanvas(img *image.RGBA, r *bench.Report, opts Options) *canvas {
	c := &canvas{
		img:       img,
		report:    r,
		raster:    vector.NewRasterizer(opts.Width, opts.Height),
		x0:        marginLeft,
		y0:        float64(opts.Height - marginBottom),
		x1:        float64(opts.Width - marginRight),
		y1:        marginTop,
		minAmount: float64(r.Amounts[0]),
		maxAmount: float64(r.Amounts[len(r.Amounts)-1]),
	}
	for _, s := range r.Series {
		if m := s.Max(); m > c.maxTime {
			c.maxTime = m
		}
	}
	if c.maxTime <= 0 {
		c.maxTime = time.Nanosecond
	}
	return c
}

func (c *canvas) px(amount int) float64 {
	if c.maxAmount == c.minAmount {
		return (c.x0 + c.x1) / 2
	}
	return c.x0 + (float64(amount)-c.minAmount)/(c.maxAmount-c.minAmount)*(c.x1-c.x0)
}

func (c *canvas) py(d time.Duration) float64 {
	return c.y0 - float64(d)/float64(c.maxTime)*(c.y0-c.y1)
}

func (c *canvas) drawGrid() {
	for i := 1; i <= gridLines; i++ {
		y := c.y0 - float64(i)/gridLines*(c.y0-c.y1)
		c.segment(c.x0, y, c.x1, y, 1, gridColor)
	}
}

func (c *canvas) drawAxes() {
	c.segment(c.x0, c.y0, c.x1, c.y0, 1.5, axisColor)
	c.segment(c.x0, c.y0, c.x0, c.y1, 1.5, axisColor)
}

func (c *canvas) drawSeries(s bench.Series, col color.RGBA, width float32) {
	amounts := c.report.Amounts
	if len(amounts) == 1 {
		x, y := c.px(amounts[0]), c.py(s.PerCall[0])
		c.segment(x-2, y, x+2, y, width*2, col)
		return
	}
	for i := 1; i < len(amounts); i++ {
		c.segment(c.px(amounts[i-1]), c.py(s.PerCall[i-1]), c.px(amounts[i]), c.py(s.PerCall[i]), width, col)
	}
}

func (c *canvas) drawLabels(title string) {
	c.text(title, int(c.x0), marginTop/2+5)
	c.text("amount", int((c.x0+c.x1)/2)-20, int(c.y0)+40)
	c.text("time/call", 8, marginTop-10)

	c.text(fmt.Sprint(c.report.Amounts[0]), int(c.x0), int(c.y0)+18)
	last := fmt.Sprint(c.report.Amounts[len(c.report.Amounts)-1])
	c.text(last, int(c.x1)-textWidth(last), int(c.y0)+18)

	for i := 0; i <= gridLines; i++ {
		d := time.Duration(float64(c.maxTime) * float64(i) / gridLines)
		label := d.Round(roundingFor(c.maxTime)).String()
		y := c.y0 - float64(i)/gridLines*(c.y0-c.y1)
		c.text(label, int(c.x0)-textWidth(label)-6, int(y)+4)
	}
}

func (c *canvas) drawLegend(series []bench.Series) {
	x := int(c.x1) - 120
	y := marginTop + 12
	for i, s := range series {
		col := Palette[i%len(Palette)]
		c.segment(float64(x), float64(y-4), float64(x+20), float64(y-4), 3, col)
		c.text(s.Solver, x+26, y)
		y += 16
	}
}

// segment fills the quad around the line (ax,ay)-(bx,by) with the given
// stroke width.
func (c *canvas) segment(ax, ay, bx, by float64, width float32, col color.RGBA) {
	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	half := float64(width) / 2
	nx, ny := -dy/length*half, dx/length*half

	b := c.img.Bounds()
	z := c.raster
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(ax+nx), float32(ay+ny))
	z.LineTo(float32(bx+nx), float32(by+ny))
	z.LineTo(float32(bx-nx), float32(by-ny))
	z.LineTo(float32(ax-nx), float32(ay-ny))
	z.ClosePath()
	z.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func (c *canvas) text(s string, x, y int) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

func roundingFor(top time.Duration) time.Duration {
	switch {
	case top >= time.Second:
		return time.Millisecond
	case top >= time.Millisecond:
		return time.Microsecond
	case top >= time.Microsecond:
		return 10 * time.Nanosecond
	default:
		return time.Nanosecond
	}
}
