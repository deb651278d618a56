// SPDX-License-Identifier: Unlicense OR MIT

/*
Package rangebar implements a horizontal range selector with two
draggable handles that snap to a fixed number of labelled ticks.

A RangeBar holds the selection, the layout of the bar and the state of
the pointer interaction. It is drawn by a style from package
gioui.org/rangebar/material:

	rb, err := rangebar.New(rangebar.DefaultConfig("1", "2", "3", "4", "5"))
	...
	rb.SetOnRangeSelected(func(left, right int) {
		...
	})
	...
	material.RangeBar(th, rb).Layout(gtx)

While a handle is dragged it follows the pointer between the ticks.
When both handles are visible they are kept at least one tick apart.
On release the handle snaps to the nearest tick and the selected pair
of tick indices is reported.

Configurations can be read from YAML with LoadConfig:

	labels: ["0", "1k", "5k", "10k", "20k"]
	selectedColor: "#3f51b5"
	unselectedColor: lightgray
	handle: knob.png
	handleSize: [48, 48]
	left: 1
	right: 3
*/
package rangebar
