package api

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prasetyowira/qrbadge/constant"
	"github.com/prasetyowira/qrbadge/domain/generator"
	appLogger "github.com/prasetyowira/qrbadge/infrastructure/logger"
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(template.ParseFS(templateFS, "templates/form.html"))

// DefaultMaxBodyBytes bounds the JSON body of a generate request.
const DefaultMaxBodyBytes int64 = 64 << 10

// Generator is the service the handler drives
type Generator interface {
	Generate(ctx context.Context, req generator.GenerationRequest) ([]byte, error)
}

// Handler contains service dependencies for API handlers
type Handler struct {
	service      Generator
	serviceURL   string
	maxBodyBytes int64
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// formData feeds templates/form.html
type formData struct {
	ServiceURL     string
	MaxTextLength  int
	DefaultBoxSize int
	MinBoxSize     int
	MaxBoxSize     int
	DefaultBorder  int
	MinBorder      int
	MaxBorder      int
}

// NewHandler creates a new API handler. serviceURL is the base URL the form
// page posts to; empty means the page's own origin.
func NewHandler(service Generator, serviceURL string, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		service:      service,
		serviceURL:   strings.TrimRight(serviceURL, "/"),
		maxBodyBytes: maxBodyBytes,
	}
}

// GenerateQRCode handles POST /generate and streams back a PNG
func (h *Handler) GenerateQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	appLogger.CtxDebug(ctx, constant.MsgHandlingGenerate, appLogger.LoggerInfo{
		ContextFunction: constant.CtxGenerateQRCode,
	})

	var req generator.GenerationRequest
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		appLogger.CtxWarn(ctx, "Error decoding request body", appLogger.LoggerInfo{
			ContextFunction: constant.CtxGenerateQRCode,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIDecodeRequest,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteJSONError(w, constant.ErrTextTooLong, http.StatusBadRequest)
			return
		}
		WriteJSONError(w, constant.MsgInvalidRequest, http.StatusBadRequest)
		return
	}

	png, err := h.service.Generate(ctx, req)
	if err != nil {
		if generator.IsValidationError(err) {
			appLogger.CtxDebug(ctx, constant.MsgTextRejected, appLogger.LoggerInfo{
				ContextFunction: constant.CtxGenerateQRCode,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAPIValidation,
					Message: err.Error(),
					Type:    constant.ErrTypeValidation,
				},
			})
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		appLogger.CtxError(ctx, constant.MsgGenerateFailed, appLogger.LoggerInfo{
			ContextFunction: constant.CtxGenerateQRCode,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIServiceError,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
			Data: map[string]interface{}{
				constant.DataTextLength: utf8.RuneCountInString(req.Text),
			},
		})

		WriteJSONError(w, constant.MsgGenerateFailed, http.StatusInternalServerError)
		return
	}

	appLogger.CtxInfo(ctx, constant.MsgQRGenerated, appLogger.LoggerInfo{
		ContextFunction: constant.CtxGenerateQRCode,
		Data: map[string]interface{}{
			constant.DataSize: len(png),
		},
	})

	w.Header().Set(constant.HeaderContentType, constant.ContentTypePNG)
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Content-Disposition", `inline; filename="qr.png"`)
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Form serves the HTML form client
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	data := formData{
		ServiceURL:     h.serviceURL,
		MaxTextLength:  generator.MaxTextLength,
		DefaultBoxSize: generator.DefaultBoxSize,
		MinBoxSize:     generator.MinBoxSize,
		MaxBoxSize:     generator.MaxBoxSize,
		DefaultBorder:  generator.DefaultBorder,
		MinBorder:      generator.MinBorder,
		MaxBorder:      generator.MaxBorder,
	}

	w.Header().Set(constant.HeaderContentType, constant.ContentTypeHTML)
	if err := formTemplate.Execute(w, data); err != nil {
		appLogger.CtxError(r.Context(), constant.MsgFormRenderFailed, appLogger.LoggerInfo{
			ContextFunction: constant.CtxForm,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAPIForm,
				Message: err.Error(),
				Type:    constant.ErrTypeAPI,
			},
		})
	}
}

// Healthcheck reports that the service is up
func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	appLogger.CtxDebug(r.Context(), constant.MsgHealthcheckRequest, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRouter,
	})

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(constant.MsgHealthy))
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set(constant.HeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		return
	}
}

// WriteJSONError writes a JSON error response
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	WriteJSON(w, ErrorResponse{
		Error: message,
		Code:  statusCode,
	}, statusCode)
}
