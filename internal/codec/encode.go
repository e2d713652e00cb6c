package codec

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

// encodePNG takes the mapped 0-9 compression level. The stdlib encoder only
// exposes four strategies, so the level is bucketed onto them.
func encodePNG(w io.Writer, img image.Image, level int) error {
	enc := png.Encoder{CompressionLevel: pngCompression(level)}
	return enc.Encode(w, img)
}

func pngCompression(level int) png.CompressionLevel {
	switch {
	case level <= 0:
		return png.NoCompression
	case level <= 3:
		return png.BestSpeed
	case level <= 6:
		return png.DefaultCompression
	default:
		return png.BestCompression
	}
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}
