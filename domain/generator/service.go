package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"unicode/utf8"

	"github.com/prasetyowira/qrbadge/constant"
	"github.com/prasetyowira/qrbadge/infrastructure/logger"
)

// Encoder defines the QR rasterization the service depends on
type Encoder interface {
	Encode(text string, boxSize, border int) (*image.RGBA, error)
}

// Service turns a GenerationRequest into a badged QR code
type Service struct {
	encoder    Encoder
	compositor *Compositor
}

// NewService creates a new generator service
func NewService(encoder Encoder, compositor *Compositor) *Service {
	ctx := logger.NewRequestContext()

	logger.CtxDebug(ctx, constant.MsgCreatingService, logger.LoggerInfo{
		ContextFunction: constant.CtxDomain,
		Data: map[string]interface{}{
			constant.DataService: "generator",
		},
	})

	return &Service{
		encoder:    encoder,
		compositor: compositor,
	}
}

// Render validates the request, encodes the text and overlays the badge.
// Validation errors are returned before any image work starts.
func (s *Service) Render(ctx context.Context, req GenerationRequest) (image.Image, error) {
	text, err := ValidateText(req.Text)
	if err != nil {
		code := constant.ErrCodeEmptyText
		if errors.Is(err, ErrTextTooLong) {
			code = constant.ErrCodeTextTooLong
		}
		logger.CtxDebug(ctx, constant.MsgTextRejected, logger.LoggerInfo{
			ContextFunction: constant.CtxRender,
			Error: &logger.CustomError{
				Code:    code,
				Message: err.Error(),
				Type:    constant.ErrTypeValidation,
			},
			Data: map[string]interface{}{
				constant.DataTextLength: utf8.RuneCountInString(req.Text),
			},
		})
		return nil, err
	}

	opts := req.Options()

	img, err := s.encoder.Encode(text, opts.BoxSize, opts.Border)
	if err != nil {
		logger.CtxError(ctx, constant.MsgQREncodeFailed, logger.LoggerInfo{
			ContextFunction: constant.CtxRender,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeEncodeQR,
				Message: err.Error(),
				Type:    constant.ErrTypeEncoding,
			},
			Data: map[string]interface{}{
				constant.DataTextLength: utf8.RuneCountInString(text),
				constant.DataBoxSize:    opts.BoxSize,
				constant.DataBorder:     opts.Border,
			},
		})
		return nil, fmt.Errorf("generator: encode qr: %w", err)
	}

	logger.CtxDebug(ctx, constant.MsgQREncoded, logger.LoggerInfo{
		ContextFunction: constant.CtxRender,
		Data: map[string]interface{}{
			constant.DataBoxSize: opts.BoxSize,
			constant.DataBorder:  opts.Border,
			constant.DataWidth:   img.Bounds().Dx(),
		},
	})

	initials := ResolveInitials(req.Initials, text)
	return s.compositor.Overlay(ctx, img, initials), nil
}

// Generate is Render followed by PNG encoding.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) ([]byte, error) {
	img, err := s.Render(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		logger.CtxError(ctx, constant.MsgGenerateFailed, logger.LoggerInfo{
			ContextFunction: constant.CtxGenerate,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeEncodePNG,
				Message: err.Error(),
				Type:    constant.ErrTypeEncoding,
			},
		})
		return nil, fmt.Errorf("generator: encode png: %w", err)
	}

	return buf.Bytes(), nil
}
