// SPDX-License-Identifier: Unlicense OR MIT

package rangebar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	// Formats accepted for handle images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	xdraw "golang.org/x/image/draw"

	"gioui.org/unit"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

// DecodeHandle decodes a handle image in PNG, JPEG, GIF, BMP or WebP
// format.
func DecodeHandle(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("rangebar: decode handle: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("rangebar: empty %s handle image", format)
	}
	return img, nil
}

// handleImage returns the image drawn for the handles, resampled to
// cfg.HandleSize if set. The default handle is sized for m.
func handleImage(cfg Config, m unit.Metric) (image.Image, error) {
	size := cfg.HandleSize
	if cfg.Handle == nil {
		if size == (image.Point{}) {
			px := m.Dp(DefaultHandleSize)
			size = image.Pt(px, px)
		}
		return iconImage(icons.ImageLens, size, cfg.SelectedColor)
	}
	src := cfg.Handle
	if size == (image.Point{}) || size == src.Bounds().Size() {
		return src, nil
	}
	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// iconImage rasterizes IconVG data to an image of the given size.
func iconImage(data []byte, size image.Point, col color.NRGBA) (*image.RGBA, error) {
	m, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, fmt.Errorf("rangebar: handle icon: %w", err)
	}
	img := image.NewRGBA(image.Rectangle{Max: size})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = color.RGBAModel.Convert(col).(color.RGBA)
	if err := iconvg.Decode(&ico, data, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	}); err != nil {
		return nil, fmt.Errorf("rangebar: handle icon: %w", err)
	}
	return img, nil
}
