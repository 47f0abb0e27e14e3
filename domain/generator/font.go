package generator

import (
	"context"
	"os"

	"github.com/prasetyowira/qrbadge/constant"
	"github.com/prasetyowira/qrbadge/infrastructure/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// Where the badge font came from.
const (
	FontSourceFile     = "file"
	FontSourceEmbedded = "embedded"
	FontSourceBasic    = "basic"
)

// loadFont parses the preferred bold font. A configured path is tried first,
// then the embedded Go Bold. It returns nil only if both fail, in which case
// faces fall back to basicfont.
func loadFont(path string) (*opentype.Font, string) {
	ctx := logger.NewRequestContext()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			logger.CtxWarn(ctx, constant.MsgFontFallback, logger.LoggerInfo{
				ContextFunction: constant.CtxFont,
				Error: &logger.CustomError{
					Code:    constant.ErrCodeFontLoad,
					Message: err.Error(),
					Type:    constant.ErrTypeFont,
				},
				Data: map[string]interface{}{
					constant.DataFontPath: path,
				},
			})
		} else if f, err := opentype.Parse(data); err != nil {
			logger.CtxWarn(ctx, constant.MsgFontFallback, logger.LoggerInfo{
				ContextFunction: constant.CtxFont,
				Error: &logger.CustomError{
					Code:    constant.ErrCodeFontParse,
					Message: err.Error(),
					Type:    constant.ErrTypeFont,
				},
				Data: map[string]interface{}{
					constant.DataFontPath: path,
				},
			})
		} else {
			logger.CtxInfo(ctx, constant.MsgPreferredFontLoaded, logger.LoggerInfo{
				ContextFunction: constant.CtxFont,
				Data: map[string]interface{}{
					constant.DataFontPath: path,
				},
			})
			return f, FontSourceFile
		}
	}

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		logger.CtxWarn(ctx, constant.MsgFontFallback, logger.LoggerInfo{
			ContextFunction: constant.CtxFont,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeFontParse,
				Message: err.Error(),
				Type:    constant.ErrTypeFont,
			},
		})
		return nil, FontSourceBasic
	}
	return f, FontSourceEmbedded
}

// face returns a face of the given pixel size. It never fails: any problem
// building the preferred face yields basicfont.Face7x13.
func (c *Compositor) face(ctx context.Context, size int) font.Face {
	if c.font == nil || size < 1 {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		logger.CtxWarn(ctx, constant.MsgFontFallback, logger.LoggerInfo{
			ContextFunction: constant.CtxFont,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeFontFace,
				Message: err.Error(),
				Type:    constant.ErrTypeFont,
			},
			Data: map[string]interface{}{
				constant.DataFontSize: size,
			},
		})
		return basicfont.Face7x13
	}
	return face
}
