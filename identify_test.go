package imgconv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestIdentify(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pic.png")
	writeTestPNG(t, src, 20, 10)

	info, err := Identify(src)
	if err != nil {
		t.Fatalf("Identify: %v", err)
	}

	want := Info{MIME: "image/png", Format: "png", Width: 20, Height: 10}
	if info != want {
		t.Errorf("Identify = %+v, want %+v", info, want)
	}
}

func TestIdentifyIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "lying-name.jpeg")
	writeTestPNG(t, src, 5, 5)

	info, err := Identify(src)
	if err != nil {
		t.Fatal(err)
	}
	if info.Format != "png" {
		t.Errorf("Identify trusted the file extension: got %s", info.Format)
	}
}

func TestIdentifyMissingFile(t *testing.T) {
	_, err := Identify(filepath.Join(t.TempDir(), "ghost.png"))
	if !errors.Is(err, ErrBadSource) {
		t.Errorf("err = %v, want ErrBadSource", err)
	}
}

func TestIdentifyNonImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.bin")
	if err := os.WriteFile(src, []byte{0x00, 0x01, 0x02, 0x03}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Identify(src)
	if !errors.Is(err, ErrBadSource) {
		t.Errorf("err = %v, want ErrBadSource", err)
	}
}
