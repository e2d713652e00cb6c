// Package imgconv converts a raster image file between JPEG, PNG, GIF, WebP,
// BMP and AVIF, with optional cover resize/crop and 0-100 quality control.
// Output goes to a file on disk or to a base64 data URI; codecs are delegated
// to the underlying image packages.
package imgconv

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"

	"imgconv/internal/codec"
	"imgconv/internal/transform"
	"imgconv/pkg/logger"
	"imgconv/pkg/metrics"
)

// SupportedFormats returns the MIME types this process can convert between.
// The underlying capability probe runs once per process.
func SupportedFormats() []string {
	return codec.Supported()
}

// ToBase64 converts the image at path and returns it as a
// "data:image/<format>;base64,<payload>" string.
func ToBase64(path string, opts Options) (string, error) {
	img, dst, err := load(path, opts)
	if err != nil {
		return "", fail(err)
	}

	var buf bytes.Buffer
	if err := encode(&buf, img, dst, opts.Quality); err != nil {
		return "", fail(err)
	}

	metrics.Get().IncConversion()
	metrics.Get().AddBytesOut(buf.Len())
	logger.Debug("encoded %s as %s data URI (%d bytes)", path, dst, buf.Len())
	return "data:" + dst.MIME() + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ToFile converts the image at path and writes the result to savePath,
// overwriting any existing file. No output file is created if validation,
// decoding or the transform fails; a file left behind by a failed encode is
// removed.
func ToFile(path, savePath string, opts Options) error {
	img, dst, err := load(path, opts)
	if err != nil {
		return fail(err)
	}

	out, err := os.Create(savePath)
	if err != nil {
		return fail(fmt.Errorf("%w: create %s: %v", ErrEncode, savePath, err))
	}

	if err := encode(out, img, dst, opts.Quality); err != nil {
		out.Close()
		os.Remove(savePath)
		return fail(err)
	}
	if err := out.Close(); err != nil {
		os.Remove(savePath)
		return fail(fmt.Errorf("%w: close %s: %v", ErrEncode, savePath, err))
	}

	if fi, err := os.Stat(savePath); err == nil {
		metrics.Get().AddBytesOut(int(fi.Size()))
	}
	metrics.Get().IncConversion()
	logger.Debug("wrote %s as %s to %s", path, dst, savePath)
	return nil
}

// load validates the request, decodes the source and applies the optional
// cover resize. The decoded image never escapes the conversion call.
func load(path string, opts Options) (image.Image, codec.Format, error) {
	name := opts.Format
	if name == "" {
		name = DefaultFormat
	}

	src, dst, err := validate(path, name)
	if err != nil {
		return nil, 0, err
	}
	logger.Debug("converting %s (%s) -> %s q=%d box=%dx%d",
		path, src, dst, opts.Quality, opts.Width, opts.Height)

	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrBadSource, err)
	}
	defer fh.Close()

	img, err := codec.Decode(src, fh)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrBadSource, err)
	}

	// Resize gate: both target dimensions must be positive.
	if opts.Width > 0 && opts.Height > 0 {
		img, err = transform.Cover(img, opts.Width, opts.Height)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrTransform, err)
		}
	}
	return img, dst, nil
}

func encode(w io.Writer, img image.Image, f codec.Format, quality int) error {
	q, _ := codec.MapQuality(quality, f)
	if err := codec.Encode(f, w, img, q); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

func fail(err error) error {
	metrics.Get().IncFailure(errKind(err))
	return err
}
