// Package mask generates rounded-rectangle alpha masks for icon clipping.
package mask

import (
	"image"
)

// DefaultRadiusRatio is the corner radius as a fraction of the smaller mask
// dimension, approximating the macOS icon curvature (~22.5%).
const DefaultRadiusRatio = 0.225

const opaque = 255

// Radius computes the corner radius in pixels for a mask of the given
// dimensions. The result is clamped so the corner arcs never overlap.
func Radius(width, height int, ratio float64) int {
	if ratio < 0 {
		ratio = 0
	}
	min := width
	if height < min {
		min = height
	}
	r := int(ratio * float64(min))
	if r > min/2 {
		r = min / 2
	}
	return r
}

// Squircle returns a single-channel mask of the given dimensions where every
// pixel inside a centered rounded rectangle is 255 and everything else is 0.
//
// The shape is built from two overlapping axis-aligned rectangles covering
// the straight-edge regions plus four quarter discs rounding the corners.
// This construction needs no curve primitive from any drawing library and
// reproduces the rounded rectangle exactly on the straight segments.
func Squircle(width, height int, ratio float64) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return m
	}

	r := Radius(width, height, ratio)

	// Horizontal band inset by r on the left/right, vertical band inset
	// by r on the top/bottom. Together they cover everything but the
	// four r×r corner squares.
	fillRect(m, r, 0, width-r, height)
	fillRect(m, 0, r, width, height-r)

	// One quarter disc per corner, centered r pixels inside it:
	// top-left, top-right, bottom-right, bottom-left.
	fillQuarterDisc(m, 0, 0, float64(r), float64(r), r)
	fillQuarterDisc(m, width-r, 0, float64(width-r), float64(r), r)
	fillQuarterDisc(m, width-r, height-r, float64(width-r), float64(height-r), r)
	fillQuarterDisc(m, 0, height-r, float64(r), float64(height-r), r)

	return m
}

// fillRect sets all pixels in [x0,x1)×[y0,y1) to opaque.
func fillRect(m *image.Gray, x0, y0, x1, y1 int) {
	for y := y0; y < y1; y++ {
		row := y * m.Stride
		for x := x0; x < x1; x++ {
			m.Pix[row+x] = opaque
		}
	}
}

// fillQuarterDisc fills the pixels of the r×r square with top-left corner
// (x0, y0) that fall inside the disc of radius r centered at (cx, cy).
// Membership is sampled at the pixel center.
func fillQuarterDisc(m *image.Gray, x0, y0 int, cx, cy float64, r int) {
	rr := float64(r) * float64(r)
	for y := y0; y < y0+r; y++ {
		row := y * m.Stride
		for x := x0; x < x0+r; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rr {
				m.Pix[row+x] = opaque
			}
		}
	}
}
