package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dotquad/ipcalc-service/internal/config"
	"github.com/dotquad/ipcalc-service/internal/core/service"
	"github.com/dotquad/ipcalc-service/internal/dispatch"
	"github.com/dotquad/ipcalc-service/internal/logger"
	mcpserver "github.com/dotquad/ipcalc-service/internal/mcp/server"
)

func Run() {
	dotenvErr := godotenv.Load()
	cfg := config.Load(os.Args[1:])
	appLogger := logger.NewLogger(cfg.LogLevel)
	if dotenvErr != nil {
		appLogger.Warn("no .env file loaded, using process environment")
	}

	analyzer := service.New()
	registry := dispatch.NewRegistry()
	if err := dispatch.RegisterNetworkTools(registry, analyzer); err != nil {
		appLogger.Error("app failed to start: %s", err.Error())
		return
	}

	appServer := mcpserver.Start(cfg.Addr(), registry, appLogger, cfg.ShutdownTimeout)

	// Waiting signal
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)

	select {
	case oss := <-signalCh:
		appLogger.Info("app stops after receiving a signal %s", oss.String())
	case err := <-appServer.ErrCh():
		appLogger.Error("app stops after an err %s", err.Error())
	}

	// Shutdown
	err := appServer.Shutdown()
	if err != nil {
		appLogger.Error("app stopped with err %s", err.Error())
	}
}
