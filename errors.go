package imgconv

import "errors"

// Error kinds surfaced by this package. Every failure wraps exactly one of
// these; match with errors.Is.
var (
	// ErrRuntime means no image codec is usable in this build.
	ErrRuntime = errors.New("image runtime unavailable")

	// ErrUnsupportedFormat means the requested or detected format is outside
	// the capability set.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrBadSource means the source path is missing, unreadable or not a
	// recognized image.
	ErrBadSource = errors.New("bad source image")

	// ErrTransform means the resize/crop step failed.
	ErrTransform = errors.New("transform failed")

	// ErrEncode means the encode step or the output sink failed.
	ErrEncode = errors.New("encode failed")
)

// errKind names the error kind for failure counters.
func errKind(err error) string {
	switch {
	case errors.Is(err, ErrRuntime):
		return "runtime"
	case errors.Is(err, ErrUnsupportedFormat):
		return "format"
	case errors.Is(err, ErrBadSource):
		return "source"
	case errors.Is(err, ErrTransform):
		return "transform"
	case errors.Is(err, ErrEncode):
		return "encode"
	default:
		return "other"
	}
}
