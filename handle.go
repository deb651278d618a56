// SPDX-License-Identifier: Unlicense OR MIT

package rangebar

import (
	"image"

	"gioui.org/f32"
)

// Handle is the state of one of the two draggable markers.
type Handle struct {
	// Index is the committed tick. It is stale while the handle is
	// dragged and updated on release.
	Index int
	// CenterX is the horizontal center of the handle. It equals the
	// position of tick Index unless the handle is being dragged.
	CenterX float32
	// Visible reports whether the handle is drawn and draggable.
	Visible bool
	// Dragging reports whether a pointer is dragging the handle.
	Dragging bool
}

// Bounds returns the rectangle the handle image is drawn in.
func (h Handle) Bounds(g Geometry) image.Rectangle {
	return g.handleRect(h.CenterX).round()
}

// hit reports whether p falls within the touch area of h. The touch
// area extends the handle by half its size on every side.
func (h Handle) hit(g Geometry, p f32.Point) bool {
	if !h.Visible {
		return false
	}
	half := f32.Pt(float32(g.Handle.X)/2, float32(g.Handle.Y)/2)
	return g.handleRect(h.CenterX).outset(half).contains(p)
}

// place moves the handle to tick idx.
func (h *Handle) place(g Geometry, idx int) {
	h.Index = idx
	h.CenterX = g.TickX(idx)
}
