package generator

import (
	"context"
	"image"
	"image/draw"
	"strings"

	"github.com/fogleman/gg"
	"github.com/prasetyowira/qrbadge/constant"
	"github.com/prasetyowira/qrbadge/infrastructure/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Badge geometry. BadgeFraction is tied to the highest recovery level used by
// the encoder: a badge of this size stays well inside its ~30% damage budget.
// Re-check scannability before raising it.
const (
	BadgeFraction    = 0.18
	MinBadgeDiameter = 24
	FontScale        = 0.45
	OutlineWidth     = 2
	OutlineAlpha     = 150
	VerticalNudge    = 1
)

// Compositor draws the initials badge over a finished QR raster
type Compositor struct {
	font       *opentype.Font
	fontSource string
}

// NewCompositor creates a compositor, preferring the bold font at fontPath.
// An empty or unusable path falls back to the embedded Go Bold.
func NewCompositor(fontPath string) *Compositor {
	f, source := loadFont(fontPath)
	return &Compositor{
		font:       f,
		fontSource: source,
	}
}

// FontSource reports which font the compositor ended up with.
func (c *Compositor) FontSource() string {
	return c.fontSource
}

// BadgeDiameter is the badge size for a w x h image.
func BadgeDiameter(w, h int) int {
	short := w
	if h < short {
		short = h
	}
	d := int(float64(short) * BadgeFraction)
	if d < MinBadgeDiameter {
		d = MinBadgeDiameter
	}
	return d
}

// BadgeBounds is the bounding box of the badge circle, centered on the image.
func BadgeBounds(w, h int) image.Rectangle {
	d := BadgeDiameter(w, h)
	left := w/2 - d/2
	top := h/2 - d/2
	return image.Rect(left, top, left+d, top+d)
}

// Overlay draws a white circular badge holding initials at the center of img.
// The input is never modified; with empty initials img itself is returned.
func (c *Compositor) Overlay(ctx context.Context, img image.Image, initials string) image.Image {
	text := strings.ToUpper(strings.TrimSpace(initials))
	if text == "" {
		logger.CtxDebug(ctx, constant.MsgBadgeSkipped, logger.LoggerInfo{
			ContextFunction: constant.CtxOverlay,
		})
		return img
	}

	rgba := toRGBA(img)
	b := rgba.Bounds()
	w, h := b.Dx(), b.Dy()
	box := BadgeBounds(w, h).Add(b.Min)
	d := box.Dx()

	dc := gg.NewContextForRGBA(rgba)
	r := float64(d) / 2
	cx := float64(box.Min.X) + r
	cy := float64(box.Min.Y) + r

	dc.DrawCircle(cx, cy, r)
	dc.SetRGBA255(255, 255, 255, 255)
	dc.Fill()

	dc.DrawCircle(cx, cy, r)
	dc.SetRGBA255(0, 0, 0, OutlineAlpha)
	dc.SetLineWidth(OutlineWidth)
	dc.Stroke()

	fontSize := int(float64(d) * FontScale)
	face := c.face(ctx, fontSize)
	defer face.Close()

	bounds, _ := font.BoundString(face, text)
	tw := (bounds.Max.X - bounds.Min.X).Ceil()
	th := (bounds.Max.Y - bounds.Min.Y).Ceil()
	centerX := b.Min.X + w/2
	centerY := b.Min.Y + h/2
	x := centerX - tw/2 - bounds.Min.X.Floor()
	y := centerY - th/2 - bounds.Min.Y.Floor() - VerticalNudge

	dc.SetFontFace(face)
	dc.SetRGBA255(0, 0, 0, 255)
	dc.DrawString(text, float64(x), float64(y))

	logger.CtxDebug(ctx, constant.MsgBadgeDrawn, logger.LoggerInfo{
		ContextFunction: constant.CtxOverlay,
		Data: map[string]interface{}{
			constant.DataInitials: text,
			constant.DataDiameter: d,
			constant.DataFontSize: fontSize,
			constant.DataWidth:    w,
			constant.DataHeight:   h,
		},
	})

	return rgba
}

// toRGBA copies img into a fresh RGBA working image.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba
}
