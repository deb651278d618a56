// SPDX-License-Identifier: Unlicense OR MIT

package rangebar

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// configFile is the YAML form of a Config. Absent keys keep the
// defaults of DefaultConfig.
type configFile struct {
	Labels          []string    `yaml:"labels"`
	BarThickness    *float32    `yaml:"barThickness"`
	SelectedColor   *colorValue `yaml:"selectedColor"`
	UnselectedColor *colorValue `yaml:"unselectedColor"`
	TickRadius      *float32    `yaml:"tickRadius"`
	TickColor       *colorValue `yaml:"tickColor"`
	LabelSize       *float32    `yaml:"labelSize"`
	LabelColor      *colorValue `yaml:"labelColor"`
	LabelGap        *float32    `yaml:"labelGap"`
	Inset           *insetValue `yaml:"inset"`
	Handle          string      `yaml:"handle"`
	HandleSize      []int       `yaml:"handleSize"`
	HideLeft        bool        `yaml:"hideLeft"`
	HideRight       bool        `yaml:"hideRight"`
	Left            *int        `yaml:"left"`
	Right           *int        `yaml:"right"`
}

type insetValue struct {
	Top    float32 `yaml:"top"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Left   float32 `yaml:"left"`
}

// colorValue is a color written as #rgb, #rrggbb, #aarrggbb or as an
// SVG color name.
type colorValue color.NRGBA

// LoadConfigFile reads a YAML configuration from path. A handle image
// path in the file is relative to the directory of path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("rangebar: failed to read config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f, os.DirFS(filepath.Dir(path)))
}

// LoadConfig parses a YAML configuration and validates it. The handle
// image, if any, is read from fsys.
func LoadConfig(r io.Reader, fsys fs.FS) (Config, error) {
	var file configFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return Config{}, fmt.Errorf("rangebar: failed to parse config: %w", err)
	}
	cfg, err := file.config(fsys)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (f *configFile) config(fsys fs.FS) (Config, error) {
	cfg := DefaultConfig(f.Labels...)
	if f.BarThickness != nil {
		cfg.BarThickness = unit.Dp(*f.BarThickness)
	}
	if f.SelectedColor != nil {
		cfg.SelectedColor = color.NRGBA(*f.SelectedColor)
	}
	if f.UnselectedColor != nil {
		cfg.UnselectedColor = color.NRGBA(*f.UnselectedColor)
	}
	if f.TickRadius != nil {
		cfg.TickRadius = unit.Dp(*f.TickRadius)
	}
	if f.TickColor != nil {
		cfg.TickColor = color.NRGBA(*f.TickColor)
	}
	if f.LabelSize != nil {
		cfg.LabelSize = unit.Sp(*f.LabelSize)
	}
	if f.LabelColor != nil {
		cfg.LabelColor = color.NRGBA(*f.LabelColor)
	}
	if f.LabelGap != nil {
		cfg.LabelGap = unit.Dp(*f.LabelGap)
	}
	if in := f.Inset; in != nil {
		cfg.Inset = layout.Inset{
			Top:    unit.Dp(in.Top),
			Right:  unit.Dp(in.Right),
			Bottom: unit.Dp(in.Bottom),
			Left:   unit.Dp(in.Left),
		}
	}
	switch len(f.HandleSize) {
	case 0:
	case 2:
		cfg.HandleSize = image.Pt(f.HandleSize[0], f.HandleSize[1])
	default:
		return Config{}, fmt.Errorf("rangebar: handleSize must be [width, height], got %v", f.HandleSize)
	}
	if f.Handle != "" {
		img, err := openHandle(fsys, f.Handle)
		if err != nil {
			return Config{}, err
		}
		cfg.Handle = img
	}
	cfg.HideLeft = f.HideLeft
	cfg.HideRight = f.HideRight
	if f.Left != nil {
		cfg.Left = *f.Left
	}
	if f.Right != nil {
		cfg.Right = *f.Right
	}
	return cfg, nil
}

func openHandle(fsys fs.FS, name string) (image.Image, error) {
	if fsys == nil {
		return nil, fmt.Errorf("rangebar: handle %q: no file system", name)
	}
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("rangebar: handle %q: %w", name, err)
	}
	defer f.Close()
	img, err := DecodeHandle(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, name)
	}
	return img, nil
}

func (c *colorValue) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	col, err := parseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = colorValue(col)
	return nil
}

// parseColor parses a hex color in Android notation or an SVG color
// name.
func parseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("rangebar: unknown color %q", s)
		}
		return color.NRGBA(c), nil
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("rangebar: invalid color %q", s)
	}
	switch len(hex) {
	case 6:
		return rgb(uint32(v)), nil
	case 8:
		return argb(uint32(v)), nil
	default:
		return color.NRGBA{}, fmt.Errorf("rangebar: invalid color %q", s)
	}
}
