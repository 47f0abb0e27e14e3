package constant

// Generator service error codes
const (
	// Validation errors (1xx)
	ErrCodeEmptyText   = "GEN101"
	ErrCodeTextTooLong = "GEN102"

	// Encoding errors (2xx)
	ErrCodeEncodeQR  = "GEN201"
	ErrCodeEncodePNG = "GEN202"

	// Font errors (3xx), always recovered
	ErrCodeFontLoad  = "GEN301"
	ErrCodeFontParse = "GEN302"
	ErrCodeFontFace  = "GEN303"
)

// API error codes
const (
	ErrCodeAPIDecodeRequest = "API001"
	ErrCodeAPIServiceError  = "API002"
	ErrCodeAPIValidation    = "API003"
	ErrCodeAPIForm          = "API004"
)

// Application error codes
const (
	ErrCodeAppServerStart    = "APP001"
	ErrCodeAppServerShutdown = "APP002"
)

// Error types for categorization
const (
	ErrTypeValidation = "validation"
	ErrTypeEncoding   = "encoding"
	ErrTypeFont       = "font"
	ErrTypeAPI        = "api"
	ErrTypeApp        = "application"
)
