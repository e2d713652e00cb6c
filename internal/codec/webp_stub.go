//go:build nowebp

package codec

import (
	"errors"
	"image"
	"io"
)

// encodeWebP is a stub that returns an error when WebP support is disabled.
// Build with -tags nowebp to drop the libwebp cgo dependency.
func encodeWebP(w io.Writer, img image.Image, quality int) error {
	return errors.New("webp encoder disabled (built with -tags nowebp)")
}

// webpEncoderReady returns false when WebP encoding is disabled.
func webpEncoderReady() bool { return false }
