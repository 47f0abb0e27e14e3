package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prasetyowira/qrbadge/api"
	"github.com/prasetyowira/qrbadge/config"
	"github.com/prasetyowira/qrbadge/constant"
	"github.com/prasetyowira/qrbadge/domain/generator"
	appLogger "github.com/prasetyowira/qrbadge/infrastructure/logger"
	"github.com/prasetyowira/qrbadge/infrastructure/qrcode"
)

func main() {
	dotenvErr := godotenv.Load()

	cfg, err := config.LoadConfig(os.Getenv("CONFIG_FILE"))
	if err != nil {
		os.Stderr.WriteString(constant.MsgConfigLoadFailed + ": " + err.Error() + "\n")
		os.Exit(1)
	}

	appLogger.Initialize(cfg.LogLevel)
	defer appLogger.Close()

	if dotenvErr != nil {
		appLogger.Warn(constant.MsgDotenvMissing, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
		})
	}

	environment := constant.EnvDevelopment
	if appLogger.IsProduction(cfg.LogLevel) {
		environment = constant.EnvProduction
	}

	appLogger.Info(constant.MsgApplicationStarting, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataPort:        cfg.Port,
			constant.DataFontPath:    cfg.FontPath,
			constant.DataOrigins:     cfg.AllowedOrigins,
			constant.DataEnvironment: environment,
		},
	})

	service := generator.NewService(qrcode.NewEncoder(), generator.NewCompositor(cfg.FontPath))

	handler := api.NewHandler(service, cfg.ServiceURL, cfg.MaxBodyBytes)
	router := api.NewRouter(handler, cfg.AllowedOrigins)
	router.SetupRoutes()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		appLogger.Fatal(constant.MsgServerListenFailed, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerStart,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})
	}

	go func() {
		ctx := appLogger.NewRequestContext()
		appLogger.CtxInfo(ctx, constant.MsgServerStarting, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})

		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			appLogger.CtxFatal(ctx, constant.MsgServerFailedToStart, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppServerStart,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataPort: cfg.Port,
				},
			})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info(constant.MsgServerShuttingDown, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error(constant.MsgServerShutdownError, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerShutdown,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	appLogger.Info(constant.MsgServerStopped, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})
}
