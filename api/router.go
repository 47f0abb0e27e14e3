package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	appMiddleware "github.com/prasetyowira/qrbadge/api/middleware"
	"github.com/prasetyowira/qrbadge/constant"
	appLogger "github.com/prasetyowira/qrbadge/infrastructure/logger"
)

// RouteHandler is the set of endpoints the router exposes
type RouteHandler interface {
	GenerateQRCode(w http.ResponseWriter, r *http.Request)
	Form(w http.ResponseWriter, r *http.Request)
	Healthcheck(w http.ResponseWriter, r *http.Request)
}

// Router represents the application router
type Router struct {
	handler RouteHandler
	router  *chi.Mux
}

// NewRouter creates a new router. allowedOrigins configures CORS; an empty
// list allows any origin.
func NewRouter(handler RouteHandler, allowedOrigins []string) *Router {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appMiddleware.RequestLogger())
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{constant.HeaderRequestID},
		MaxAge:         300,
	}))

	return &Router{
		handler: handler,
		router:  r,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() {
	appLogger.Info(constant.MsgSettingUpRoutes, appLogger.LoggerInfo{
		ContextFunction: constant.CtxRouter,
	})

	r.router.Post(constant.RouteGenerate, r.handler.GenerateQRCode)
	r.router.Get(constant.RouteForm, r.handler.Form)
	r.router.Get(constant.RouteHealthcheck, r.handler.Healthcheck)
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
