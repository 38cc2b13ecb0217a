// Package iconmasker post-processes application icons for platform icon styles.
//
// It shrinks the source image by a scale factor, centers it on a transparent
// canvas of the original size, and clips it with a rounded-rectangle
// ("squircle") alpha mask, so the icon gets the padding and corner curvature
// platform icon grids expect.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		iconmasker "github.com/menta2k/icon-masker"
//	)
//
//	func main() {
//		masker := iconmasker.New()
//
//		// Overwrite the icon in place with the masked version
//		if err := masker.ProcessFile("backend/icons/source_icon.png", ""); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of two main components:
//
// 1. Mask (pkg/mask): Generates the rounded-rectangle alpha mask
// 2. Processing (pkg/processing): Loads, resizes, composites, and saves images
//
// The mask is built from two overlapping rectangles plus four quarter discs,
// so it reproduces the squircle without any curve primitive. The output image
// always keeps the input's dimensions; only the visible content shrinks.
// Running the tool on its own output shrinks the content again, so it is
// meant as a one-shot step in an icon build.
package iconmasker

import (
	"fmt"
	"image"

	"github.com/menta2k/icon-masker/pkg/mask"
	"github.com/menta2k/icon-masker/pkg/processing"
)

// Version of the icon masker library
const Version = "1.0.0"

// Options control how the squircle mask is applied and encoded
type Options struct {
	// ScaleFactor is the fraction of the original size the content keeps
	ScaleFactor float64
	// RadiusRatio is the corner radius as a fraction of the smaller side
	RadiusRatio float64
	// Format is the output encoding: png or webp
	Format string
	// Quality is the WebP quality (1-100); ignored for png
	Quality int
	// Lossless enables WebP lossless mode; ignored for png
	Lossless bool
}

// DefaultOptions returns the options used by New
func DefaultOptions() Options {
	return Options{
		ScaleFactor: 0.9,
		RadiusRatio: mask.DefaultRadiusRatio,
		Format:      "png",
		Quality:     100,
		Lossless:    true,
	}
}

// IconMasker provides a high-level interface for icon masking
type IconMasker struct {
	processor *processing.Processor
	opts      Options
}

// New creates a new IconMasker with default options
func New() *IconMasker {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new IconMasker with custom options
func NewWithOptions(opts Options) *IconMasker {
	return &IconMasker{
		processor: processing.NewProcessor(),
		opts:      opts,
	}
}

// Options returns the options the masker was created with
func (im *IconMasker) Options() Options {
	return im.opts
}

// LoadImage loads an image from file
func (im *IconMasker) LoadImage(filepath string) (image.Image, error) {
	return im.processor.LoadImage(filepath)
}

// SaveImage saves an image to file using the masker's output options
func (im *IconMasker) SaveImage(img image.Image, filepath string) error {
	return im.processor.SaveImage(img, filepath, im.opts.Format, im.opts.Quality, im.opts.Lossless)
}

// ApplySquircle shrinks, centers, and clips an already loaded image
func (im *IconMasker) ApplySquircle(img image.Image) (*image.NRGBA, error) {
	return im.processor.ApplySquircle(img, im.opts.ScaleFactor, im.opts.RadiusRatio)
}

// GetImageInfo returns basic information about an image
func (im *IconMasker) GetImageInfo(img image.Image) processing.ImageInfo {
	return im.processor.Info(img)
}

// ProcessFile loads an icon, applies the squircle mask, and saves the result.
// When outPath is empty the input file is overwritten in place.
func (im *IconMasker) ProcessFile(inPath, outPath string) error {
	if outPath == "" {
		outPath = inPath
	}

	img, err := im.processor.LoadImage(inPath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	if err := im.processor.Validate(img); err != nil {
		return fmt.Errorf("image validation failed: %w", err)
	}

	masked, err := im.ApplySquircle(img)
	if err != nil {
		return fmt.Errorf("masking failed: %w", err)
	}

	if err := im.SaveImage(masked, outPath); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	return nil
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
