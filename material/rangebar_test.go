// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/font/gofont"
	"gioui.org/gpu/headless"
	"gioui.org/io/input"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/widget/material"

	"gioui.org/rangebar"
)

func newTheme() *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	return th
}

func newBar(t *testing.T, cfg rangebar.Config) *rangebar.RangeBar {
	t.Helper()
	rb, err := rangebar.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return rb
}

func TestRangeBarDimensions(t *testing.T) {
	th := newTheme()
	rb := newBar(t, rangebar.DefaultConfig("0", "25", "50", "75", "100"))
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Constraints{Max: image.Pt(300, 1000)},
	}
	dims := RangeBar(th, rb).Layout(gtx)
	// Default handle, gap and label size.
	if want := image.Pt(300, 32+4+14); dims.Size != want {
		t.Errorf("got size %v, want %v", dims.Size, want)
	}

	gtx.Ops.Reset()
	gtx.Constraints = layout.Exact(image.Pt(200, 80))
	if dims := RangeBar(th, rb).Layout(gtx); dims.Size != image.Pt(200, 80) {
		t.Errorf("got size %v with exact constraints", dims.Size)
	}
}

func TestRangeBarDisabled(t *testing.T) {
	th := newTheme()
	cfg := rangebar.DefaultConfig("a", "b", "c")
	cfg.HideRight = true
	rb := newBar(t, cfg)
	rb.SetRange(2, 0)
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(120, 60)),
	}
	RangeBar(th, rb).Layout(gtx)
	gtx.Ops.Reset()
	RangeBar(th, rb).Layout(gtx.Disabled())
	if l, r := rb.Range(); l != 2 || r != 0 {
		t.Errorf("range %d, %d; want 2, 0", l, r)
	}
}

func TestMulAlpha(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 0xff}
	if got := mulAlpha(c, 150); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 150}) {
		t.Errorf("got %v", got)
	}
	c.A = 0x80
	if got := mulAlpha(c, 0x80); got.A != 0x40 {
		t.Errorf("got alpha %#x, want 0x40", got.A)
	}
}

func TestRangeBarPaint(t *testing.T) {
	const width, height = 400, 100
	w, err := headless.NewWindow(width, height)
	if err != nil {
		t.Skipf("failed to create headless window, skipping: %v", err)
	}
	defer w.Release()

	selected := color.NRGBA{R: 0xff, A: 0xff}
	unselected := color.NRGBA{B: 0xff, A: 0xff}
	cfg := rangebar.DefaultConfig("0", "1", "2", "3", "4")
	cfg.SelectedColor = selected
	cfg.UnselectedColor = unselected
	// A transparent handle leaves the track visible.
	cfg.Handle = image.NewRGBA(image.Rect(0, 0, 40, 40))
	rb := newBar(t, cfg)
	th := newTheme()
	// The router enables the context; disabled bars are drawn faded.
	var r input.Router

	// Ticks are at 20, 110, 200, 290 and 380, the bar at y 41.
	probe := image.Pt(154, 41)
	tests := []struct {
		left, right int
		want        color.NRGBA
	}{
		{0, 4, selected},
		{2, 4, unselected},
		{0, 1, unselected},
		{1, 2, selected},
		// Inverted ranges leave the whole track unselected.
		{3, 1, unselected},
		{4, 0, unselected},
	}
	for _, tc := range tests {
		rb.SetRange(tc.left, tc.right)
		gtx := layout.Context{
			Ops:         new(op.Ops),
			Constraints: layout.Exact(image.Pt(width, height)),
			Source:      r.Source(),
		}
		RangeBar(th, rb).Layout(gtx)
		if err := w.Frame(gtx.Ops); err != nil {
			t.Fatal(err)
		}
		img := image.NewRGBA(image.Rectangle{Max: w.Size()})
		if err := w.Screenshot(img); err != nil {
			t.Fatal(err)
		}
		got := color.NRGBAModel.Convert(img.At(probe.X, probe.Y)).(color.NRGBA)
		if !near(got, tc.want) {
			t.Errorf("range %d, %d: pixel at %v is %v, want %v", tc.left, tc.right, probe, got, tc.want)
		}
	}
}

func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) bool {
		if x > y {
			x, y = y, x
		}
		return y-x <= 2
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
