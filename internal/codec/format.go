// Package codec binds each supported raster format to its decode and encode
// routines and exposes the runtime capability set. Formats are a closed enum;
// an unsupported format is a compile-time mismatch, not a map miss.
package codec

import (
	"fmt"
	"image"
	"io"
	"strings"
)

type Format int

const (
	JPEG Format = iota
	PNG
	GIF
	WEBP
	BMP
	AVIF
	numFormats
)

// entry describes one format. Exactly one of encode/encodeQuality is set:
// lossless formats take no quality argument at all.
type entry struct {
	name    string
	mime    string
	aliases []string

	// ceiling is the top of the format's native quality range.
	// Zero means the format has no quality concept.
	ceiling int

	decode       func(io.Reader) (image.Image, error)
	decodeConfig func(io.Reader) (image.Config, error)

	encode        func(io.Writer, image.Image) error
	encodeQuality func(io.Writer, image.Image, int) error

	// encoderReady reports whether the encode routine is usable in this
	// build. WebP and AVIF encoders can be compiled out with build tags.
	encoderReady func() bool
}

var table = [numFormats]entry{
	JPEG: {
		name:          "jpeg",
		mime:          "image/jpeg",
		aliases:       []string{"jpg"},
		ceiling:       100,
		decode:        decodeJPEG,
		decodeConfig:  decodeConfigJPEG,
		encodeQuality: encodeJPEG,
		encoderReady:  alwaysReady,
	},
	PNG: {
		name:          "png",
		mime:          "image/png",
		ceiling:       9,
		decode:        decodePNG,
		decodeConfig:  decodeConfigPNG,
		encodeQuality: encodePNG,
		encoderReady:  alwaysReady,
	},
	GIF: {
		name:         "gif",
		mime:         "image/gif",
		decode:       decodeGIF,
		decodeConfig: decodeConfigGIF,
		encode:       encodeGIF,
		encoderReady: alwaysReady,
	},
	WEBP: {
		name:          "webp",
		mime:          "image/webp",
		ceiling:       100,
		decode:        decodeWebP,
		decodeConfig:  decodeConfigWebP,
		encodeQuality: encodeWebP,
		encoderReady:  webpEncoderReady,
	},
	BMP: {
		name:         "bmp",
		mime:         "image/bmp",
		aliases:      []string{"x-ms-bmp"},
		decode:       decodeBMP,
		decodeConfig: decodeConfigBMP,
		encode:       encodeBMP,
		encoderReady: alwaysReady,
	},
	AVIF: {
		name:          "avif",
		mime:          "image/avif",
		ceiling:       100,
		decode:        decodeAVIF,
		decodeConfig:  decodeConfigAVIF,
		encodeQuality: encodeAVIF,
		encoderReady:  avifEncoderReady,
	},
}

func alwaysReady() bool { return true }

// String returns the canonical lowercase format name, e.g. "jpeg".
func (f Format) String() string {
	if f < 0 || f >= numFormats {
		return "unknown"
	}
	return table[f].name
}

// MIME returns the format's MIME type, e.g. "image/jpeg".
func (f Format) MIME() string {
	if f < 0 || f >= numFormats {
		return ""
	}
	return table[f].mime
}

// Parse resolves a caller-supplied format name. It tolerates surrounding
// whitespace, any casing, an "image/" prefix and common aliases ("jpg").
func Parse(name string) (Format, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "image/")
	for f := Format(0); f < numFormats; f++ {
		if name == table[f].name {
			return f, true
		}
		for _, a := range table[f].aliases {
			if name == a {
				return f, true
			}
		}
	}
	return 0, false
}

// FromMIME resolves a detected MIME type to a format.
func FromMIME(mime string) (Format, bool) {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	return Parse(strings.TrimPrefix(mime, "image/"))
}

// Decode reads one image in the given format from r.
func Decode(f Format, r io.Reader) (image.Image, error) {
	img, err := table[f].decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	return img, nil
}

// DecodeConfig reads the image header only, without decoding pixel data.
func DecodeConfig(f Format, r io.Reader) (image.Config, error) {
	cfg, err := table[f].decodeConfig(r)
	if err != nil {
		return image.Config{}, fmt.Errorf("read %s header: %w", f, err)
	}
	return cfg, nil
}

// Encode writes img to w in the given format. quality is the value already
// mapped into the format's native range by MapQuality; formats without a
// quality concept dispatch to an encode routine that takes no quality
// argument, so the value is never seen by their encoders.
func Encode(f Format, w io.Writer, img image.Image, quality int) error {
	e := &table[f]
	if !e.encoderReady() {
		return fmt.Errorf("%s encoder not available in this build", f)
	}

	var err error
	if e.encodeQuality != nil {
		err = e.encodeQuality(w, img, quality)
	} else {
		err = e.encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}
