package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hugohenrick/loja-api/internal/config"
	"github.com/hugohenrick/loja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}

	appLogger, err := logger.NewLogger(logger.Options{
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("erro ao iniciar aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("servidor HTTP iniciado", "port", cfg.Server.Port, "storage", cfg.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("erro no servidor HTTP", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("erro ao encerrar servidor", "error", err)
	}
}
