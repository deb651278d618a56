// SPDX-License-Identifier: Unlicense OR MIT

package rangebar

import (
	"fmt"
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"golang.org/x/exp/shiny/materialdesign/icons"
)

// RangeBar is the state of a horizontal bar with two handles that
// select a range of discrete ticks.
type RangeBar struct {
	cfg        Config
	handle     paint.ImageOp
	handleSize image.Point

	// scaled is set for the default handle, which is rasterized
	// again when the pixel density changes.
	scaled bool

	geom        Geometry
	left, right Handle
	state       DragState
	// pid is the pointer dragging a handle.
	pid pointer.ID

	changed  bool
	onSelect func(left, right int)
}

// DragState is the state of the pointer interaction.
type DragState uint8

const (
	// Idle means no handle is dragged.
	Idle DragState = iota
	DraggingLeft
	DraggingRight
)

// New returns a RangeBar for a configuration. The handle image is
// decoded once here and kept for the lifetime of the RangeBar.
func New(cfg Config) (*RangeBar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	img, err := handleImage(cfg, unit.Metric{})
	if err != nil {
		return nil, err
	}
	rb := &RangeBar{
		cfg:        cfg,
		handle:     paint.NewImageOp(img),
		handleSize: img.Bounds().Size(),
		scaled:     cfg.Handle == nil && cfg.HandleSize == (image.Point{}),
		left:       Handle{Visible: !cfg.HideLeft},
		right:      Handle{Visible: !cfg.HideRight},
	}
	n := len(cfg.Labels)
	rb.left.place(rb.geom, clampIndex(cfg.Left, n))
	rb.right.place(rb.geom, clampIndex(cfg.Right, n))
	return rb, nil
}

// SetOnRangeSelected registers the function called with the selected
// indices after every committed change, replacing any previously
// registered function. A nil fn removes the registration.
func (rb *RangeBar) SetOnRangeSelected(fn func(left, right int)) {
	rb.onSelect = fn
}

// SetRange selects a range. Indices outside the tick range are clamped
// to the nearest tick. The indices are not reordered; a left index
// larger than the right index is kept as given.
func (rb *RangeBar) SetRange(left, right int) {
	n := len(rb.cfg.Labels)
	rb.left.place(rb.geom, clampIndex(left, n))
	rb.right.place(rb.geom, clampIndex(right, n))
	rb.commit()
}

// Range returns the committed indices of the left and right handles.
func (rb *RangeBar) Range() (left, right int) {
	return rb.left.Index, rb.right.Index
}

// Handles returns the state of the left and right handles.
func (rb *RangeBar) Handles() (left, right Handle) {
	return rb.left, rb.right
}

// Geometry returns the geometry of the most recent layout.
func (rb *RangeBar) Geometry() Geometry {
	return rb.geom
}

// State returns the current pointer interaction state.
func (rb *RangeBar) State() DragState {
	return rb.state
}

// Config returns the configuration with defaults applied.
func (rb *RangeBar) Config() Config {
	return rb.cfg
}

// HandleImage returns the decoded handle image.
func (rb *RangeBar) HandleImage() paint.ImageOp {
	return rb.handle
}

// Update processes pointer events and reports whether the selection
// was committed since the last call, either by releasing a handle or
// by SetRange.
func (rb *RangeBar) Update(gtx layout.Context) bool {
	if !gtx.Enabled() && rb.state != Idle {
		rb.release()
	}
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: rb,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if !(e.Buttons == pointer.ButtonPrimary || e.Source == pointer.Touch) {
				break
			}
			if rb.press(e.Position) {
				rb.pid = e.PointerID
				// Keep enclosing scrollables from taking over the
				// gesture.
				gtx.Execute(pointer.GrabCmd{Tag: rb, ID: e.PointerID})
			}
		case pointer.Drag:
			if e.PointerID == rb.pid {
				rb.move(e.Position.X)
			}
		case pointer.Release:
			if e.PointerID == rb.pid {
				rb.release()
			}
		case pointer.Cancel:
			// Cancel events carry no pointer.
			rb.release()
		}
	}
	changed := rb.changed
	rb.changed = false
	return changed
}

// Layout processes events, measures and arranges the bar and declares
// its input area. It does not draw; see package material for that.
//
// The width is the maximum width allowed by the constraints. The height
// is the height needed by the bar, handles and labels, within the
// constraints.
func (rb *RangeBar) Layout(gtx layout.Context) layout.Dimensions {
	rb.Update(gtx)
	if rb.scaled {
		rb.rescaleHandle(gtx.Metric)
	}

	m := metricsFor(rb.cfg, gtx.Metric, image.Point{}, rb.handleSize)
	m.Size = gtx.Constraints.Constrain(image.Pt(gtx.Constraints.Max.X, m.PreferredHeight()))
	rb.resize(m)

	defer clip.Rect{Max: m.Size}.Push(gtx.Ops).Pop()
	if rb.state != Idle {
		pointer.CursorGrabbing.Add(gtx.Ops)
	}
	event.Op(gtx.Ops, rb)
	return layout.Dimensions{Size: m.Size}
}

// rescaleHandle rasterizes the default handle for the pixel density of
// m, if it changed.
func (rb *RangeBar) rescaleHandle(m unit.Metric) {
	px := m.Dp(DefaultHandleSize)
	if px == rb.handleSize.X || px <= 0 {
		return
	}
	img, err := iconImage(icons.ImageLens, image.Pt(px, px), rb.cfg.SelectedColor)
	if err != nil {
		// The same icon decoded in New.
		return
	}
	rb.handle = paint.NewImageOp(img)
	rb.handleSize = img.Bounds().Size()
}

// resize replaces the geometry if its metrics changed and moves the
// handles onto their ticks.
func (rb *RangeBar) resize(m Metrics) {
	if rb.geom.Ticks != nil && rb.geom.Metrics == m {
		return
	}
	rb.geom = NewGeometry(m)
	rb.left.place(rb.geom, rb.left.Index)
	rb.right.place(rb.geom, rb.right.Index)
}

// press starts dragging the handle under p, testing the left handle
// first. It reports whether a handle was hit.
func (rb *RangeBar) press(p f32.Point) bool {
	if rb.state != Idle {
		return false
	}
	switch {
	case rb.left.hit(rb.geom, p):
		rb.state = DraggingLeft
		rb.left.Dragging = true
	case rb.right.hit(rb.geom, p):
		rb.state = DraggingRight
		rb.right.Dragging = true
	default:
		return false
	}
	return true
}

// move drags the active handle towards x. With both handles visible
// the handles stay at least one tick apart.
func (rb *RangeBar) move(x float32) {
	h := rb.dragged()
	if h == nil {
		return
	}
	g := rb.geom
	if rb.left.Visible && rb.right.Visible {
		switch rb.state {
		case DraggingLeft:
			if rb.right.CenterX-x < g.TickSpacing {
				h.CenterX = rb.right.CenterX - g.TickSpacing
				return
			}
		case DraggingRight:
			if x-rb.left.CenterX < g.TickSpacing {
				h.CenterX = rb.left.CenterX + g.TickSpacing
				return
			}
		}
	}
	h.CenterX = min(max(x, g.BarLeft), g.BarRight)
}

// release snaps the dragged handle to the nearest tick and commits
// the selection.
func (rb *RangeBar) release() {
	h := rb.dragged()
	if h == nil {
		return
	}
	h.place(rb.geom, rb.geom.Snap(h.CenterX))
	h.Dragging = false
	rb.state = Idle
	rb.commit()
}

func (rb *RangeBar) dragged() *Handle {
	switch rb.state {
	case DraggingLeft:
		return &rb.left
	case DraggingRight:
		return &rb.right
	}
	return nil
}

func (rb *RangeBar) commit() {
	rb.changed = true
	if rb.onSelect != nil {
		rb.onSelect(rb.left.Index, rb.right.Index)
	}
}

func (s DragState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case DraggingLeft:
		return "DraggingLeft"
	case DraggingRight:
		return "DraggingRight"
	default:
		panic(fmt.Sprintf("invalid DragState %d", s))
	}
}
