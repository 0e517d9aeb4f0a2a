package encode

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/taigrr/glint/pkg/render"
)

// Compression is an optional stream compression applied to the encoded
// image.
type Compression int

const (
	CompressNone   Compression = iota
	CompressZstd               // .zst
	CompressSnappy             // .sz, framed snappy stream
)

// Target describes how an image file is written.
type Target struct {
	Format      Format
	Compression Compression
}

// TargetFromPath derives the format and compression from a file name.
// A trailing .zst or .sz selects compression; the remaining extension
// selects the format: .ppm is ASCII PPM, .pnm binary PPM, .png PNG.
func TargetFromPath(path string) (Target, error) {
	var t Target
	name := strings.ToLower(filepath.Base(path))

	switch filepath.Ext(name) {
	case ".zst":
		t.Compression = CompressZstd
		name = strings.TrimSuffix(name, ".zst")
	case ".sz":
		t.Compression = CompressSnappy
		name = strings.TrimSuffix(name, ".sz")
	}

	switch filepath.Ext(name) {
	case ".ppm":
		t.Format = FormatP3
	case ".pnm":
		t.Format = FormatP6
	case ".png":
		t.Format = FormatPNG
	default:
		return Target{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	return t, nil
}

// Write encodes the framebuffer to w, compressing it as the target asks.
func Write(w io.Writer, fb *render.Framebuffer, t Target) error {
	switch t.Compression {
	case CompressZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("create zstd writer: %w", err)
		}
		if err := Encode(zw, fb, t.Format); err != nil {
			zw.Close()
			return err
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close zstd writer: %w", err)
		}
		return nil
	case CompressSnappy:
		sw := snappy.NewBufferedWriter(w)
		if err := Encode(sw, fb, t.Format); err != nil {
			sw.Close()
			return err
		}
		if err := sw.Close(); err != nil {
			return fmt.Errorf("close snappy writer: %w", err)
		}
		return nil
	}
	return Encode(w, fb, t.Format)
}

// Save writes the framebuffer to a new file at path.
func Save(path string, fb *render.Framebuffer, t Target) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	if err := Write(f, fb, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close image file: %w", err)
	}
	return nil
}
