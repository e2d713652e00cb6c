//go:build noavif

package codec

import (
	"errors"
	"image"
	"io"
)

// encodeAVIF is a stub that returns an error when AVIF support is disabled.
// Build with -tags noavif to disable AVIF encoding support.
func encodeAVIF(w io.Writer, img image.Image, quality int) error {
	return errors.New("avif encoder disabled (built with -tags noavif)")
}

// avifEncoderReady returns false when AVIF encoding is disabled.
func avifEncoderReady() bool { return false }
