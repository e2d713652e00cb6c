package imgconv

import (
	"fmt"
	"os"

	"imgconv/internal/codec"
)

// Info describes a source image without decoding its pixel data.
type Info struct {
	MIME   string
	Format string
	Width  int
	Height int
}

// Identify introspects the image at path: detected MIME type, format name and
// pixel dimensions. It fails with the same error kinds as a conversion.
func Identify(path string) (Info, error) {
	if err := checkRuntime(); err != nil {
		return Info{}, err
	}

	f, err := sniffSource(path)
	if err != nil {
		return Info{}, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrBadSource, err)
	}
	defer fh.Close()

	cfg, err := codec.DecodeConfig(f, fh)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrBadSource, err)
	}

	return Info{
		MIME:   f.MIME(),
		Format: f.String(),
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
