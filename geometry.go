// SPDX-License-Identifier: Unlicense OR MIT

package rangebar

import (
	"image"
	"math"

	"gioui.org/f32"
	"gioui.org/unit"
)

// Metrics are the pixel measurements a Geometry is derived from.
type Metrics struct {
	// Size is the size of the widget.
	Size image.Point
	// Insets pad the content area.
	InsetTop, InsetRight, InsetBottom, InsetLeft int
	// Handle is the pixel size of the handle image.
	Handle image.Point
	// Thickness is the bar thickness.
	Thickness float32
	// Gap separates the bar and handle block from the labels.
	Gap float32
	// LabelSize is the text size of the labels.
	LabelSize float32
	// Count is the number of ticks, at least 2.
	Count int
}

// Geometry is the layout of a RangeBar for a particular size. A
// Geometry is never modified after construction; a resize replaces
// it with a new one.
type Geometry struct {
	Metrics
	// Block is the height of the bar and handle block, the larger
	// of the handle height and the bar thickness.
	Block float32
	// BarCenter is the vertical center of the bar. BarTop and
	// BarBottom bound the track.
	BarCenter, BarTop, BarBottom float32
	// BarLeft and BarRight bound the horizontal handle travel,
	// inset by half a handle so handles never leave the widget.
	BarLeft, BarRight float32
	// TickSpacing is the distance between adjacent ticks.
	TickSpacing float32
	// Ticks are the x positions of the ticks, in order. The slice
	// is shared between copies and must not be modified.
	Ticks []float32
}

// metricsFor converts the configuration to pixels.
func metricsFor(cfg Config, m unit.Metric, size, handle image.Point) Metrics {
	return Metrics{
		Size:        size,
		InsetTop:    m.Dp(cfg.Inset.Top),
		InsetRight:  m.Dp(cfg.Inset.Right),
		InsetBottom: m.Dp(cfg.Inset.Bottom),
		InsetLeft:   m.Dp(cfg.Inset.Left),
		Handle:      handle,
		Thickness:   float32(m.Dp(cfg.BarThickness)),
		Gap:         float32(m.Dp(cfg.LabelGap)),
		LabelSize:   float32(m.Sp(cfg.LabelSize)),
		Count:       len(cfg.Labels),
	}
}

func (m Metrics) block() float32 {
	return max(float32(m.Handle.Y), m.Thickness)
}

// PreferredHeight is the height that fits the bar, the handles and
// the labels, including insets.
func (m Metrics) PreferredHeight() int {
	h := m.block() + m.Gap + m.LabelSize + float32(m.InsetTop+m.InsetBottom)
	return int(math.Ceil(float64(h)))
}

// NewGeometry lays out the bar, stacking the bar and handle block,
// the gap and the labels, centered vertically in the content area.
func NewGeometry(m Metrics) Geometry {
	g := Geometry{Metrics: m}
	viewW := float32(m.Size.X - m.InsetLeft - m.InsetRight)
	viewH := float32(m.Size.Y - m.InsetTop - m.InsetBottom)
	handleW := float32(m.Handle.X)

	g.Block = m.block()
	total := g.Block + m.Gap + m.LabelSize
	g.BarCenter = (viewH-total+g.Block)/2 + float32(m.InsetTop)
	g.BarTop = g.BarCenter - m.Thickness/2
	g.BarBottom = g.BarCenter + m.Thickness/2
	g.BarLeft = float32(m.InsetLeft) + handleW/2
	g.BarRight = float32(m.Size.X-m.InsetRight) - handleW/2

	if m.Count < 2 {
		return g
	}
	g.TickSpacing = (viewW - handleW) / float32(m.Count-1)
	ticks := make([]float32, m.Count)
	for i := range ticks {
		ticks[i] = g.BarLeft + g.TickSpacing*float32(i)
	}
	g.Ticks = ticks
	return g
}

// TickX returns the position of tick i, or BarLeft if the geometry
// has no ticks yet.
func (g Geometry) TickX(i int) float32 {
	if i < 0 || i >= len(g.Ticks) {
		return g.BarLeft
	}
	return g.Ticks[i]
}

// Snap returns the index of the tick nearest to x. A position exactly
// halfway between two ticks snaps to the lower one.
func (g Geometry) Snap(x float32) int {
	n := len(g.Ticks)
	if n == 0 || !(g.TickSpacing > 0) {
		return 0
	}
	spacing := float64(g.TickSpacing)
	dist := float64(x - g.BarLeft)
	idx := int(math.Floor(dist / spacing))
	if rem := dist - float64(idx)*spacing; rem > spacing/2 {
		idx++
	}
	return clampIndex(idx, n)
}

// LabelBaseline is the baseline of the tick labels.
func (g Geometry) LabelBaseline() float32 {
	return g.BarCenter + g.Block/2 + g.Gap + g.LabelSize
}

// handleRect returns the draw rectangle of a handle centered at x.
func (g Geometry) handleRect(x float32) rect {
	hw, hh := float32(g.Handle.X)/2, float32(g.Handle.Y)/2
	return rect{
		Min: f32.Pt(x-hw, g.BarCenter-hh),
		Max: f32.Pt(x+hw, g.BarCenter+hh),
	}
}

type rect struct {
	Min, Max f32.Point
}

// outset grows r by d on each side.
func (r rect) outset(d f32.Point) rect {
	return rect{Min: r.Min.Sub(d), Max: r.Max.Add(d)}
}

func (r rect) contains(p f32.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r rect) round() image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(roundf(r.Min.X), roundf(r.Min.Y)),
		Max: image.Pt(roundf(r.Max.X), roundf(r.Max.Y)),
	}
}

func roundf(v float32) int {
	return int(math.Round(float64(v)))
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
