// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/rangebar"
)

// RangeBarStyle draws a RangeBar with the colors and sizes of its
// configuration and the text shaper of a theme.
type RangeBarStyle struct {
	Shaper   *text.Shaper
	Font     font.Font
	RangeBar *rangebar.RangeBar
}

// RangeBar returns a style for drawing rb with the text shaper and
// typeface of th.
func RangeBar(th *material.Theme, rb *rangebar.RangeBar) RangeBarStyle {
	return RangeBarStyle{
		Shaper:   th.Shaper,
		Font:     font.Font{Typeface: th.Face},
		RangeBar: rb,
	}
}

// Layout lays out the RangeBar and draws, back to front, the track,
// the selected part of the track, the ticks with their labels and the
// visible handles.
func (s RangeBarStyle) Layout(gtx layout.Context) layout.Dimensions {
	dims := s.RangeBar.Layout(gtx)
	g := s.RangeBar.Geometry()
	cfg := s.RangeBar.Config()
	left, right := s.RangeBar.Handles()

	selected, unselected := cfg.SelectedColor, cfg.UnselectedColor
	tick, label := cfg.TickColor, cfg.LabelColor
	if !gtx.Enabled() {
		selected = mulAlpha(selected, 150)
		unselected = mulAlpha(unselected, 150)
		tick = mulAlpha(tick, 150)
		label = mulAlpha(label, 150)
	}

	fillTrack(gtx.Ops, g, g.BarLeft, g.BarRight, unselected)
	// An inverted selection leaves an empty span.
	fillTrack(gtx.Ops, g, left.CenterX, right.CenterX, selected)

	r := float32(gtx.Dp(cfg.TickRadius))
	baseline := g.LabelBaseline()
	for i, x := range g.Ticks {
		fillCircle(gtx.Ops, f32.Pt(x, g.BarCenter), r, tick)
		s.layoutLabel(gtx, cfg.Labels[i], x, baseline, cfg.LabelSize, label)
	}

	img := s.RangeBar.HandleImage()
	for _, h := range [...]rangebar.Handle{left, right} {
		if h.Visible {
			drawHandle(gtx.Ops, img, h.Bounds(g).Min)
		}
	}
	return dims
}

// layoutLabel draws txt centered on x with its baseline at baseline.
func (s RangeBarStyle) layoutLabel(gtx layout.Context, txt string, x, baseline float32, size unit.Sp, col color.NRGBA) {
	gtx.Constraints.Min = image.Point{}
	m := op.Record(gtx.Ops)
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	textColor := m.Stop()

	m = op.Record(gtx.Ops)
	dims := widget.Label{MaxLines: 1}.Layout(gtx, s.Shaper, s.Font, size, txt, textColor)
	call := m.Stop()

	off := image.Point{
		X: roundf(x - float32(dims.Size.X)/2),
		Y: roundf(baseline) - (dims.Size.Y - dims.Baseline),
	}
	defer op.Offset(off).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

// fillTrack fills the bar between x0 and x1 with round caps at both
// ends.
func fillTrack(ops *op.Ops, g rangebar.Geometry, x0, x1 float32, col color.NRGBA) {
	// Not canonicalized: x0 > x1 yields an empty rectangle.
	r := image.Rectangle{
		Min: image.Pt(roundf(x0), roundf(g.BarTop)),
		Max: image.Pt(roundf(x1), roundf(g.BarBottom)),
	}
	if !r.Empty() {
		paint.FillShape(ops, col, clip.Rect(r).Op())
	}
	capR := g.Thickness / 2
	fillCircle(ops, f32.Pt(x0, g.BarCenter), capR, col)
	fillCircle(ops, f32.Pt(x1, g.BarCenter), capR, col)
}

func fillCircle(ops *op.Ops, c f32.Point, r float32, col color.NRGBA) {
	if r <= 0 {
		return
	}
	b := image.Rectangle{
		Min: image.Pt(roundf(c.X-r), roundf(c.Y-r)),
		Max: image.Pt(roundf(c.X+r), roundf(c.Y+r)),
	}
	paint.FillShape(ops, col, clip.Ellipse(b).Op(ops))
}

func drawHandle(ops *op.Ops, img paint.ImageOp, at image.Point) {
	defer op.Offset(at).Push(ops).Pop()
	defer clip.Rect{Max: img.Size()}.Push(ops).Pop()
	img.Add(ops)
	paint.PaintOp{}.Add(ops)
}

// mulAlpha applies the alpha to the color.
func mulAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = uint8(uint32(c.A) * uint32(alpha) / 0xFF)
	return c
}

func roundf(v float32) int {
	return int(math.Round(float64(v)))
}
