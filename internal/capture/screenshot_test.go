package capture

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSavePixelsFlipsRows(t *testing.T) {
	dir := t.TempDir()
	s := NewScreenshot(dir, "shot")

	// 2x2: bottom row red, top row green in GL order.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255, // GL row 0 (bottom)
		0, 255, 0, 255, 0, 255, 0, 255, // GL row 1 (top)
	}

	path, err := s.SavePixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding PNG: %v", err)
	}

	// Image row 0 is the GL top row, so green first.
	r, g, _, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0xffff {
		t.Errorf("top-left = (%d, %d), want green", r, g)
	}
	r, g, _, _ = img.At(0, 1).RGBA()
	if r != 0xffff || g != 0 {
		t.Errorf("bottom-left = (%d, %d), want red", r, g)
	}
}

func TestSavePixelsSizeMismatch(t *testing.T) {
	s := NewScreenshot(t.TempDir(), "shot")
	if _, err := s.SavePixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}

func TestSavePixelsCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "captures")
	s := NewScreenshot(dir, "shot")

	pixels := make([]byte, 4)
	path, err := s.SavePixels(pixels, 1, 1)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("path %s not under %s", path, dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestFilenameFormat(t *testing.T) {
	s := NewScreenshot("out", "showroom")
	name := s.Filename()
	if !strings.HasPrefix(name, filepath.Join("out", "showroom_")) {
		t.Errorf("unexpected filename %s", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("filename %s missing .png suffix", name)
	}
}
