package imgconv

import (
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"imgconv/internal/codec"
)

func checkRuntime() error {
	if len(codec.Supported()) == 0 {
		return fmt.Errorf("%w: no codecs in this build", ErrRuntime)
	}
	return nil
}

// sniffSource checks that path exists and holds an image this build can
// handle, returning its format. Content sniffing decides the type; the file
// extension is never consulted.
func sniffSource(path string) (codec.Format, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadSource, err)
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: introspect %s: %v", ErrBadSource, path, err)
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return 0, fmt.Errorf("%w: %s is not a recognized image (%s)", ErrBadSource, path, mt.String())
	}

	src, ok := codec.FromMIME(mt.String())
	if !ok || !codec.IsSupported(src) {
		return 0, fmt.Errorf("%w: source type %s", ErrUnsupportedFormat, mt.String())
	}
	return src, nil
}

// validate runs the pre-decode checks in order: runtime availability, the
// requested output format, source existence, source introspection.
func validate(path, formatName string) (src, dst codec.Format, err error) {
	if err := checkRuntime(); err != nil {
		return 0, 0, err
	}

	dst, ok := codec.Parse(formatName)
	if !ok || !codec.IsSupported(dst) {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, formatName)
	}

	src, err = sniffSource(path)
	if err != nil {
		return 0, 0, err
	}
	return src, dst, nil
}
