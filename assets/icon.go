// Package assets provides the ScreenBell notification icon.
//
// The icon is rendered at runtime instead of being embedded: the glyph
// is simple enough to draw, and rendering keeps the repository free of
// binary blobs while still producing any size a platform asks for.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"
)

const baseSize = 64

var (
	renderOnce sync.Once
	baseIcon   *image.RGBA
)

// Icon returns the notification icon at the requested square size.
func Icon(size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	renderOnce.Do(func() { baseIcon = renderBase() })
	if size == baseSize {
		return baseIcon, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), baseIcon, baseIcon.Bounds(), xdraw.Over, nil)
	return dst, nil
}

// IconPNG returns the PNG encoding of the icon at the requested size.
func IconPNG(size int) ([]byte, error) {
	img, err := Icon(size)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderBase draws the camera glyph at the base size. Transparent
// background, dark body, light lens.
func renderBase() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, baseSize, baseSize))

	body := color.RGBA{38, 50, 56, 255}
	trim := color.RGBA{69, 90, 100, 255}
	ring := color.RGBA{236, 239, 241, 255}
	lens := color.RGBA{129, 212, 250, 255}

	// camera body with rounded corners
	const corner = 8
	for y := 14; y < 56; y++ {
		for x := 4; x < 60; x++ {
			if insideRounded(x, y, 4, 14, 60, 56, corner) {
				img.SetRGBA(x, y, body)
			}
		}
	}

	// viewfinder hump
	for y := 8; y < 16; y++ {
		for x := 22; x < 42; x++ {
			img.SetRGBA(x, y, trim)
		}
	}

	// lens ring and glass
	const cx, cy = 32.0, 35.0
	for y := 0; y < baseSize; y++ {
		for x := 0; x < baseSize; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			switch d := math.Sqrt(dx*dx + dy*dy); {
			case d <= 10:
				img.SetRGBA(x, y, lens)
			case d <= 14:
				img.SetRGBA(x, y, ring)
			}
		}
	}

	// flash dot
	for y := 19; y < 24; y++ {
		for x := 49; x < 54; x++ {
			img.SetRGBA(x, y, ring)
		}
	}

	return img
}

// insideRounded reports whether (x, y) falls inside the rectangle
// [x0,x1)x[y0,y1) with corners rounded to the given radius.
func insideRounded(x, y, x0, y0, x1, y1, r int) bool {
	if x < x0 || x >= x1 || y < y0 || y >= y1 {
		return false
	}
	// corner centers
	cxs := [2]int{x0 + r, x1 - 1 - r}
	cys := [2]int{y0 + r, y1 - 1 - r}
	var cx, cy int
	switch {
	case x < cxs[0] && y < cys[0]:
		cx, cy = cxs[0], cys[0]
	case x > cxs[1] && y < cys[0]:
		cx, cy = cxs[1], cys[0]
	case x < cxs[0] && y > cys[1]:
		cx, cy = cxs[0], cys[1]
	case x > cxs[1] && y > cys[1]:
		cx, cy = cxs[1], cys[1]
	default:
		return true
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
