// Package transform resizes decoded images to exactly fill a target box
// ("cover" semantics: scale up to the larger ratio, then center-crop the
// overflow — no letterboxing).
package transform

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

var errEmptySource = errors.New("source image has no pixels")

// geometry holds the intermediate scale dimensions and crop origin for a
// cover resize. Offsets are clamped so the crop box always lies inside the
// scaled image, even when rounding leaves it a pixel short.
type geometry struct {
	scaledW, scaledH int
	x, y             int
}

func coverGeometry(srcW, srcH, dstW, dstH int) (geometry, error) {
	if srcW <= 0 || srcH <= 0 {
		return geometry{}, errEmptySource
	}

	scale := math.Max(float64(dstW)/float64(srcW), float64(dstH)/float64(srcH))
	g := geometry{
		scaledW: int(math.Ceil(float64(srcW) * scale)),
		scaledH: int(math.Ceil(float64(srcH) * scale)),
	}

	if g.scaledW < dstW || g.scaledH < dstH {
		return geometry{}, fmt.Errorf("scaled image %dx%d cannot cover %dx%d", g.scaledW, g.scaledH, dstW, dstH)
	}

	g.x = (g.scaledW - dstW) / 2
	g.y = (g.scaledH - dstH) / 2
	if g.x < 0 {
		g.x = 0
	}
	if g.y < 0 {
		g.y = 0
	}
	return g, nil
}

// Cover resamples src with a bicubic filter so it fills width x height, then
// center-crops to exactly that box. Both target dimensions must be positive;
// the caller enforces that gate.
func Cover(src image.Image, width, height int) (image.Image, error) {
	b := src.Bounds()
	g, err := coverGeometry(b.Dx(), b.Dy(), width, height)
	if err != nil {
		return nil, err
	}

	scaled := imaging.Resize(src, g.scaledW, g.scaledH, imaging.CatmullRom)
	cropped := imaging.Crop(scaled, image.Rect(g.x, g.y, g.x+width, g.y+height))

	cb := cropped.Bounds()
	if cb.Dx() != width || cb.Dy() != height {
		return nil, fmt.Errorf("crop produced %dx%d, want %dx%d", cb.Dx(), cb.Dy(), width, height)
	}
	return cropped, nil
}
