package imgconv

const (
	// DefaultFormat is used when Options.Format is empty.
	DefaultFormat = "webp"

	// DefaultQuality is the quality set by DefaultOptions.
	DefaultQuality = 80
)

// Options controls one conversion. The zero value converts to WebP at
// quality 0; most callers want DefaultOptions as a starting point.
type Options struct {
	// Format is the output format name ("jpeg", "png", "gif", "webp",
	// "bmp", "avif"). Empty means DefaultFormat.
	Format string

	// Quality is the caller-facing 0-100 quality. Out-of-range values are
	// clamped. Ignored for formats without a quality concept (GIF, BMP).
	Quality int

	// Width and Height give the target box for a cover resize. The resize
	// runs only when both are positive; setting just one does nothing.
	Width  int
	Height int
}

// DefaultOptions returns the conversion defaults: WebP at quality 80, no
// resizing.
func DefaultOptions() Options {
	return Options{Format: DefaultFormat, Quality: DefaultQuality}
}
