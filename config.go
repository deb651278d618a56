// SPDX-License-Identifier: Unlicense OR MIT

package rangebar

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/unit"
)

var (
	// ErrTooFewTicks is returned for configurations with less than
	// two labels.
	ErrTooFewTicks = errors.New("rangebar: at least two ticks are required")
	// ErrHandlesHidden is returned when both handles are hidden.
	ErrHandlesHidden = errors.New("rangebar: at most one handle may be hidden")
)

// Default styling, used for zero valued Config fields.
const (
	DefaultBarThickness = unit.Dp(4)
	DefaultTickRadius   = unit.Dp(4)
	DefaultLabelGap     = unit.Dp(4)
	DefaultLabelSize    = unit.Sp(14)
	// DefaultHandleSize is the size of the handle drawn when
	// Config.Handle is nil and Config.HandleSize is zero.
	DefaultHandleSize = unit.Dp(32)
)

var (
	defaultSelectedColor   = rgb(0x3f51b5)
	defaultUnselectedColor = rgb(0xbbbbbb)
	defaultTickColor       = rgb(0xffffff)
	defaultLabelColor      = rgb(0x333333)
)

// Config describes the appearance and initial state of a RangeBar.
// A Config is consumed once by New; later changes have no effect.
type Config struct {
	// Labels are drawn below the ticks. Their count is the number
	// of ticks.
	Labels []string
	// BarThickness is the height of the track.
	BarThickness unit.Dp
	// SelectedColor paints the track between the handles.
	SelectedColor color.NRGBA
	// UnselectedColor paints the rest of the track.
	UnselectedColor color.NRGBA
	TickRadius      unit.Dp
	TickColor       color.NRGBA
	LabelSize       unit.Sp
	LabelColor      color.NRGBA
	// LabelGap separates the bar from the labels.
	LabelGap unit.Dp
	// Inset pads the content area of the widget.
	Inset layout.Inset
	// Handle is the image drawn for each handle. If nil, a
	// round handle in SelectedColor is used.
	Handle image.Image
	// HandleSize resamples Handle to a pixel size. The zero
	// value keeps the intrinsic size of the image.
	HandleSize image.Point
	// HideLeft and HideRight hide a handle. A hidden handle is
	// neither drawn nor draggable, but its index is still
	// reported.
	HideLeft, HideRight bool
	// Left and Right are the initial tick indices. They are
	// clamped like the arguments to SetRange. If both are zero the
	// range spans every tick.
	Left, Right int
}

// DefaultConfig returns a Config with default styling that selects
// every tick.
func DefaultConfig(labels ...string) Config {
	return Config{
		Labels:          labels,
		BarThickness:    DefaultBarThickness,
		SelectedColor:   defaultSelectedColor,
		UnselectedColor: defaultUnselectedColor,
		TickRadius:      DefaultTickRadius,
		TickColor:       defaultTickColor,
		LabelSize:       DefaultLabelSize,
		LabelColor:      defaultLabelColor,
		LabelGap:        DefaultLabelGap,
		Right:           len(labels) - 1,
	}
}

// Validate reports whether the configuration describes a usable
// RangeBar.
func (c Config) Validate() error {
	if n := len(c.Labels); n < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewTicks, n)
	}
	if c.HideLeft && c.HideRight {
		return ErrHandlesHidden
	}
	if c.HandleSize.X < 0 || c.HandleSize.Y < 0 {
		return fmt.Errorf("rangebar: negative handle size %v", c.HandleSize)
	}
	return nil
}

// withDefaults replaces unset styling with the defaults.
func (c Config) withDefaults() Config {
	if c.BarThickness == 0 {
		c.BarThickness = DefaultBarThickness
	}
	if c.TickRadius == 0 {
		c.TickRadius = DefaultTickRadius
	}
	if c.LabelGap == 0 {
		c.LabelGap = DefaultLabelGap
	}
	if c.LabelSize == 0 {
		c.LabelSize = DefaultLabelSize
	}
	if c.SelectedColor == (color.NRGBA{}) {
		c.SelectedColor = defaultSelectedColor
	}
	if c.UnselectedColor == (color.NRGBA{}) {
		c.UnselectedColor = defaultUnselectedColor
	}
	if c.TickColor == (color.NRGBA{}) {
		c.TickColor = defaultTickColor
	}
	if c.LabelColor == (color.NRGBA{}) {
		c.LabelColor = defaultLabelColor
	}
	if c.Left == 0 && c.Right == 0 {
		c.Right = len(c.Labels) - 1
	}
	// Own the labels, the caller may reuse its slice.
	c.Labels = append([]string(nil), c.Labels...)
	return c
}

func rgb(c uint32) color.NRGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.NRGBA {
	return color.NRGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
