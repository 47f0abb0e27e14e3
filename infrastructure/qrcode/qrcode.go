package qrcode

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/skip2/go-qrcode"
)

// RecoveryLevel is the error-correction level every symbol is encoded at.
// Highest tolerates ~30% damage, which is what leaves room for the center badge.
const RecoveryLevel = qrcode.Highest

// Encoder turns text into a rasterized QR symbol
type Encoder struct{}

// NewEncoder creates a new QR encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Matrix encodes text and returns the module grid without a quiet zone.
// The version is chosen automatically to fit the payload.
func (e *Encoder) Matrix(text string) ([][]bool, error) {
	q, err := qrcode.New(text, RecoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("qrcode: encoding data failed: %w", err)
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}

// Encode rasterizes text into a white RGBA image with black modules. Each module
// is boxSize pixels square and the symbol is surrounded by border modules of
// quiet zone, so the side length is (modules + 2*border) * boxSize.
func (e *Encoder) Encode(text string, boxSize, border int) (*image.RGBA, error) {
	if boxSize < 1 {
		return nil, fmt.Errorf("qrcode: invalid box size %d", boxSize)
	}
	if border < 0 {
		return nil, fmt.Errorf("qrcode: invalid border %d", border)
	}

	bitmap, err := e.Matrix(text)
	if err != nil {
		return nil, err
	}

	return Rasterize(bitmap, boxSize, border), nil
}

// Rasterize draws a module grid at boxSize pixels per module with a quiet zone
// of border modules.
func Rasterize(bitmap [][]bool, boxSize, border int) *image.RGBA {
	modules := len(bitmap)
	side := (modules + 2*border) * boxSize

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	black := image.NewUniform(color.Black)
	for y, row := range bitmap {
		for x, dark := range row {
			if !dark {
				continue
			}
			px := (x + border) * boxSize
			py := (y + border) * boxSize
			draw.Draw(img, image.Rect(px, py, px+boxSize, py+boxSize), black, image.Point{}, draw.Src)
		}
	}

	return img
}
