// SPDX-License-Identifier: Unlicense OR MIT

package main

// A demonstration of the range bar: the bar reports the selected
// indices, and two text fields set them.

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"gioui.org/rangebar"
	rbmaterial "gioui.org/rangebar/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

//go:embed rangebar.yaml
var builtinConfig []byte

var configFile = flag.String("config", "", "YAML range bar configuration; empty for the built-in one")

func main() {
	flag.Parse()
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Range bar"), app.Size(unit.Dp(420), unit.Dp(260)))
		if err := loop(w, cfg); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadConfig() (rangebar.Config, error) {
	if *configFile != "" {
		return rangebar.LoadConfigFile(*configFile)
	}
	return rangebar.LoadConfig(bytes.NewReader(builtinConfig), nil)
}

type page struct {
	bar         *rangebar.RangeBar
	left, right widget.Editor
	set         widget.Clickable
	position    string
}

func loop(w *app.Window, cfg rangebar.Config) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	bar, err := rangebar.New(cfg)
	if err != nil {
		return err
	}
	p := newPage(bar)
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			p.Layout(gtx, th)
			e.Frame(gtx.Ops)
		}
	}
}

func newPage(bar *rangebar.RangeBar) *page {
	p := &page{bar: bar}
	for _, e := range []*widget.Editor{&p.left, &p.right} {
		e.SingleLine = true
		e.Submit = true
		e.Filter = "-0123456789"
	}
	bar.SetOnRangeSelected(p.selected)
	p.selected(bar.Range())
	return p
}

func (p *page) selected(left, right int) {
	p.position = fmt.Sprintf("Position: %d, %d", left, right)
	log.Printf("range selected: %d, %d", left, right)
}

// submit applies the indices typed into the text fields. Empty or
// malformed fields are ignored.
func (p *page) submit() {
	left, ok := parseIndex(p.left.Text())
	if !ok {
		return
	}
	right, ok := parseIndex(p.right.Text())
	if !ok {
		return
	}
	p.bar.SetRange(left, right)
}

func parseIndex(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("invalid index %q: %v", s, err)
		return 0, false
	}
	return v, true
}

func (p *page) Layout(gtx C, th *material.Theme) D {
	for p.set.Clicked(gtx) {
		p.submit()
	}
	for _, e := range []*widget.Editor{&p.left, &p.right} {
		for {
			ev, ok := e.Update(gtx)
			if !ok {
				break
			}
			if _, ok := ev.(widget.SubmitEvent); ok {
				p.submit()
			}
		}
	}
	gap := layout.Spacer{Height: unit.Dp(16), Width: unit.Dp(8)}
	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(rbmaterial.RangeBar(th, p.bar).Layout),
			layout.Rigid(gap.Layout),
			layout.Rigid(material.Body1(th, p.position).Layout),
			layout.Rigid(gap.Layout),
			layout.Rigid(func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Flexed(1, material.Editor(th, &p.left, "Left").Layout),
					layout.Rigid(gap.Layout),
					layout.Flexed(1, material.Editor(th, &p.right, "Right").Layout),
					layout.Rigid(gap.Layout),
					layout.Rigid(material.Button(th, &p.set, "Set").Layout),
				)
			}),
		)
	})
}
