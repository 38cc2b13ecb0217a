package processing

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/icon-masker/pkg/mask"
)

// ErrMissingInput reports that the input file does not exist.
var ErrMissingInput = errors.New("input image not found")

// MinIconSize is the smallest icon side length the pipeline accepts.
const MinIconSize = 16

// Processor handles icon image processing operations
type Processor struct{}

// NewProcessor creates a new icon processor
func NewProcessor() *Processor {
	return &Processor{}
}

// LoadImage loads an image from a file path with WebP support
func (p *Processor) LoadImage(path string) (image.Image, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
	}

	// Try imaging.Open (registered decoders)
	if img, err := imaging.Open(path); err == nil {
		return img, nil
	}

	// Fallback: explicit WebP decode
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.HasSuffix(strings.ToLower(path), ".webp") {
		if img, err := webp.Decode(f); err == nil {
			return img, nil
		}
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
	}
	if img, _, err := image.Decode(f); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("image: unknown format for %s", path)
}

// ImageInfo contains basic image metadata
type ImageInfo struct {
	Width       int
	Height      int
	AspectRatio float64
}

// Info returns basic information about an image
func (p *Processor) Info(img image.Image) ImageInfo {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	return ImageInfo{
		Width:       width,
		Height:      height,
		AspectRatio: float64(width) / float64(height),
	}
}

// Validate checks if an image is large enough to mask
func (p *Processor) Validate(img image.Image) error {
	bounds := img.Bounds()
	if bounds.Dx() < MinIconSize || bounds.Dy() < MinIconSize {
		return fmt.Errorf("image too small: %dx%d (minimum: %d)",
			bounds.Dx(), bounds.Dy(), MinIconSize)
	}
	return nil
}

// ApplySquircle shrinks the image by scale, centers it on a transparent
// canvas of the original size, and replaces the alpha channel with a
// squircle mask clipped to the resized content.
//
// The output always has the same dimensions as the input. Re-running the
// pipeline on its own output shrinks the visible content again.
func (p *Processor) ApplySquircle(img image.Image, scale, ratio float64) (*image.NRGBA, error) {
	if scale <= 0 || scale > 1 {
		return nil, fmt.Errorf("scale factor %g out of range (0, 1]", scale)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 || newH < 1 {
		return nil, fmt.Errorf("image %dx%d too small for scale %g", w, h, scale)
	}

	resized := imaging.Resize(img, newW, newH, imaging.Lanczos)

	offX := (w - newW) / 2
	offY := (h - newH) / 2

	// Transparent canvas at the original size, content centered
	canvas := imaging.Paste(image.NewNRGBA(image.Rect(0, 0, w, h)), resized, image.Pt(offX, offY))

	// Mask matches the resized content, pasted at the same offsets so the
	// clip follows the content, not the canvas
	small := mask.Squircle(newW, newH, ratio)
	full := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(full, image.Rect(offX, offY, offX+newW, offY+newH), small, image.Point{}, draw.Src)

	applyAlpha(canvas, full)
	return canvas, nil
}

// applyAlpha replaces the alpha channel of dst with the mask intensity,
// pixel for pixel. Color channels are left untouched.
func applyAlpha(dst *image.NRGBA, m *image.Gray) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	for y := 0; y < h; y++ {
		di := y * dst.Stride
		mi := y * m.Stride
		for x := 0; x < w; x++ {
			dst.Pix[di+x*4+3] = m.Pix[mi+x]
		}
	}
}

// SaveImage saves an image to a file in a lossless, alpha-preserving format
func (p *Processor) SaveImage(img image.Image, path, format string, quality int, lossless bool) error {
	switch strings.ToLower(format) {
	case "webp":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		opts := &webp.Options{Lossless: lossless, Quality: float32(quality)}
		return webp.Encode(f, img, opts)
	case "png", "":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		// The requested format decides the encoder, not the path
		// extension: an in-place overwrite of a .jpg input must still
		// produce lossless PNG bytes.
		return imaging.Encode(f, img, imaging.PNG)
	default:
		return fmt.Errorf("format %q cannot preserve the alpha channel losslessly", format)
	}
}
