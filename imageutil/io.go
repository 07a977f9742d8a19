package imageutil

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// LoadImage loads an image from the specified path.
// Supports PNG, JPEG, GIF, BMP and TIFF formats.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	return DecodeImage(f)
}

// DecodeImage decodes an image in any registered format from r.
func DecodeImage(r io.Reader) (*RGBAImage, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return RGBAImageFromImage(img), nil
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension, see EncodeImage.
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := EncodeImage(f, img, filepath.Ext(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// EncodeImage writes img to w in the format named by ext (".png", ".jpg",
// ".jpeg", ".gif", ".bmp", ".tif" or ".tiff"). Unknown extensions fall
// back to PNG.
func EncodeImage(w io.Writer, img image.Image, ext string) error {
	var err error
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".gif":
		err = gif.Encode(w, img, nil)
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

// SaveGIF writes a multi-frame GIF to the specified path.
func SaveGIF(anim *gif.GIF, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode gif: %w", err)
	}
	return f.Close()
}
