package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"imgconv"
	"imgconv/pkg/logger"
)

// Manual test tool for the conversion pipeline.
// Usage: go run cmd/convert-test/main.go -file photo.jpg -format webp -out out.webp

func main() {
	filePath := flag.String("file", "", "Path to source image")
	format := flag.String("format", imgconv.DefaultFormat, "Output format")
	quality := flag.Int("quality", imgconv.DefaultQuality, "Quality 0-100")
	width := flag.Int("width", 0, "Target width (cover resize needs both)")
	height := flag.Int("height", 0, "Target height (cover resize needs both)")
	out := flag.String("out", "", "Output path; prints a data URI summary when empty")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Usage: go run cmd/convert-test/main.go -file path/to/image.jpg [-format webp] [-out out.webp]")
		os.Exit(1)
	}
	if *verbose {
		logger.SetLevel(logger.DEBUG)
	}

	fmt.Printf("Supported formats: %s\n", strings.Join(imgconv.SupportedFormats(), ", "))

	info, err := imgconv.Identify(*filePath)
	if err != nil {
		fmt.Printf("❌ Identify failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Source: %s %dx%d (%s)\n", info.Format, info.Width, info.Height, info.MIME)

	opts := imgconv.Options{Format: *format, Quality: *quality, Width: *width, Height: *height}

	if *out != "" {
		if err := imgconv.ToFile(*filePath, *out, opts); err != nil {
			fmt.Printf("❌ Convert failed: %v\n", err)
			os.Exit(1)
		}
		fi, err := os.Stat(*out)
		if err != nil {
			fmt.Printf("❌ Output missing: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Wrote %s (%d bytes)\n", *out, fi.Size())
		return
	}

	uri, err := imgconv.ToBase64(*filePath, opts)
	if err != nil {
		fmt.Printf("❌ Convert failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Data URI: %d chars, starts with %s...\n", len(uri), uri[:min(48, len(uri))])
}
