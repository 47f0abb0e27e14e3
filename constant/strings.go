package constant

// Request context keys
const (
	RequestIDKey = "request_id"
)

// HTTP header names and values
const (
	HeaderRequestID   = "X-Request-ID"
	HeaderContentType = "Content-Type"
	ContentTypePNG    = "image/png"
	ContentTypeJSON   = "application/json"
	ContentTypeHTML   = "text/html; charset=utf-8"
)

// Function/Context names
const (
	CtxDomain         = "domain"
	CtxGenerate       = "Generate"
	CtxRender         = "Render"
	CtxOverlay        = "Overlay"
	CtxFont           = "Font"
	CtxAPI            = "api"
	CtxRouter         = "Router"
	CtxMain           = "Main"
	CtxGenerateQRCode = "GenerateQRCode"
	CtxForm           = "Form"
)

// Data field keys
const (
	DataService    = "service"
	DataTextLength = "text_length"
	DataInitials   = "initials"
	DataBoxSize    = "box_size"
	DataBorder     = "border"
	DataWidth      = "width"
	DataHeight     = "height"
	DataDiameter   = "diameter"
	DataFontPath   = "font_path"
	DataFontSize   = "font_size"

	DataMethod      = "method"
	DataPath        = "path"
	DataStatus      = "status"
	DataLatency     = "latency"
	DataSize        = "size"
	DataRemoteAddr  = "remote_addr"
	DataUserAgent   = "user_agent"
	DataPort        = "port"
	DataOrigins     = "origins"
	DataEnvironment = "environment"
)

// Error message constants
const (
	ErrEmptyText   = "`text` is required"
	ErrTextTooLong = "Text too long"
	ErrNotInteger  = "value must be an integer"
)

// Client-facing API messages
const (
	MsgInvalidRequest   = "Invalid request format"
	MsgGenerateFailed   = "Failed to generate QR code"
	MsgFormRenderFailed = "Failed to render form"
)

// API routes
const (
	RouteGenerate    = "/generate"
	RouteForm        = "/"
	RouteHealthcheck = "/health"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Environment constants
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Message constants for application
const (
	MsgApplicationStarting = "Application starting"
	MsgConfigLoadFailed    = "Failed to load configuration"
	MsgDotenvMissing       = "No .env file found, using environment variables"
	MsgServerStarting      = "Server starting"
	MsgServerFailedToStart = "Server failed to start"
	MsgServerListenFailed  = "Failed to bind listen address"
	MsgServerShuttingDown  = "Server shutting down"
	MsgServerShutdownError = "Error during server shutdown"
	MsgServerStopped       = "Server stopped"
	MsgRequestReceived     = "Request received"
	MsgRequestCompleted    = "Request completed"
	MsgHandlingGenerate    = "Handling QR generation request"
	MsgQRGenerated         = "QR code generated"
	MsgSettingUpRoutes     = "Setting up API routes"
	MsgHealthcheckRequest  = "Handling healthcheck request"
	MsgHealthy             = "Healthy"
	MsgFontFallback        = "Preferred font unavailable, using fallback face"
	MsgPreferredFontLoaded = "Preferred font loaded"
	MsgBadgeSkipped        = "No initials, badge skipped"
	MsgBadgeDrawn          = "Badge drawn"
	MsgTextRejected        = "Text rejected"
	MsgQREncoded           = "QR encoded"
	MsgQREncodeFailed      = "Failed to encode QR"
	MsgCreatingService     = "Creating generator service"
)

// Command-line client messages
const (
	MsgEnterText     = "Please enter some text to encode."
	MsgRequestFailed = "Request failed"
	MsgServerError   = "Server error"
	MsgSaved         = "Saved %s (%d bytes)"
)
