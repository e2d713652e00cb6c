package codec

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/gen2brain/avif"
	"golang.org/x/image/bmp"
	xwebp "golang.org/x/image/webp"
)

func decodeJPEG(r io.Reader) (image.Image, error) { return jpeg.Decode(r) }
func decodePNG(r io.Reader) (image.Image, error)  { return png.Decode(r) }
func decodeGIF(r io.Reader) (image.Image, error)  { return gif.Decode(r) }
func decodeBMP(r io.Reader) (image.Image, error)  { return bmp.Decode(r) }
func decodeWebP(r io.Reader) (image.Image, error) { return xwebp.Decode(r) }
func decodeAVIF(r io.Reader) (image.Image, error) { return avif.Decode(r) }

func decodeConfigJPEG(r io.Reader) (image.Config, error) { return jpeg.DecodeConfig(r) }
func decodeConfigPNG(r io.Reader) (image.Config, error)  { return png.DecodeConfig(r) }
func decodeConfigGIF(r io.Reader) (image.Config, error)  { return gif.DecodeConfig(r) }
func decodeConfigBMP(r io.Reader) (image.Config, error)  { return bmp.DecodeConfig(r) }
func decodeConfigWebP(r io.Reader) (image.Config, error) { return xwebp.DecodeConfig(r) }
func decodeConfigAVIF(r io.Reader) (image.Config, error) { return avif.DecodeConfig(r) }
