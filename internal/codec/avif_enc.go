//go:build !noavif

package codec

import (
	"image"
	"io"

	"github.com/gen2brain/avif"
)

func encodeAVIF(w io.Writer, img image.Image, quality int) error {
	return avif.Encode(w, img, avif.Options{
		Quality: quality,
		Speed:   6, // 0-10, higher is faster
	})
}

// avifEncoderReady returns true when AVIF encoding is available.
func avifEncoderReady() bool { return true }
