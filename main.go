package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/vunguyen10111995/horse-racing-game/config"
	"github.com/vunguyen10111995/horse-racing-game/game"
	"github.com/vunguyen10111995/horse-racing-game/handlers"
	applog "github.com/vunguyen10111995/horse-racing-game/logger"
	"github.com/vunguyen10111995/horse-racing-game/racing"
)

func main() {
	cfg := config.Load()
	logger, err := applog.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := game.NewEngine(cfg.EngineOptions(), racing.NewRNG(cfg.RNGSeed), logger)
	defer engine.Close()
	if err := engine.Initialize(); err != nil {
		logger.Fatal("initialize game failed", zap.Error(err))
	}

	h := handlers.New(ctx, engine, cfg.JWTKey(), cfg.PlayerPasswordHash, logger)
	if !cfg.AuthEnabled() {
		logger.Warn("JWT_SECRET not set, command routes are open")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.Int("status", v.Status),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			switch {
			case v.Status >= 500:
				logger.Error("http request", fields...)
			case v.Status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Info("http request", fields...)
			}
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{"*", "Authorization"},
		AllowCredentials: true,
	}))

	h.Register(e)

	if cfg.Debug {
		go func() {
			logger.Info("starting server", zap.String("mode", "debug"), zap.String("addr", cfg.Port))
			if err := e.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal("server exited", zap.Error(err))
			}
		}()
		<-ctx.Done()
		shutdown(logger, e.Shutdown)
		return
	}

	autoTLS := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(".cache"),
		HostPolicy: autocert.HostWhitelist(cfg.TLSDomains...),
	}

	s := &http.Server{
		Addr:         ":443",
		Handler:      e,
		TLSConfig:    autoTLS.TLSConfig(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("mode", "tls"), zap.Strings("domains", cfg.TLSDomains))
		if err := s.ListenAndServeTLS("", ""); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("tls server exited", zap.Error(err))
			os.Exit(1)
		}
	}()
	<-ctx.Done()
	shutdown(logger, s.Shutdown)
}

func shutdown(logger *zap.Logger, fn func(context.Context) error) {
	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := fn(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
