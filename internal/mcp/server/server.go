package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dotquad/ipcalc-service/internal/dispatch"
	"github.com/dotquad/ipcalc-service/internal/logger"
)

type AppServer struct {
	server          *http.Server
	logger          logger.Logger
	errCh           chan error
	shutdownTimeout time.Duration
	addr            string
}

// Start builds the endpoint mux, binds the listen address and serves in the
// background. Bind and serve failures surface on ErrCh.
func Start(addr string, reg *dispatch.Registry, appLogger logger.Logger, shutdownTimeout time.Duration) *AppServer {
	handler := newHandler(reg)

	mux := http.NewServeMux()
	mux.Handle("POST /mcp", bodyLimit(requestLogger(appLogger, handler)))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	appServer := &AppServer{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger:          appLogger,
		errCh:           make(chan error, 1),
		shutdownTimeout: shutdownTimeout,
	}
	appServer.start()
	return appServer
}

func (appServer *AppServer) start() {
	listener, err := net.Listen("tcp", appServer.server.Addr)
	if err != nil {
		appServer.errCh <- err
		return
	}

	appServer.addr = listener.Addr().String()
	appServer.logger.Info(fmt.Sprintf("starting server on %s", appServer.addr))

	go func() {
		if err := appServer.server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			appServer.errCh <- err
		}
		close(appServer.errCh)
	}()
}

func (appServer *AppServer) ErrCh() <-chan error {
	return appServer.errCh
}

// Addr is the bound listen address, useful when the configured port is 0.
func (appServer *AppServer) Addr() string {
	return appServer.addr
}

// Shutdown drains in-flight requests within the configured timeout, then
// forces the remaining connections closed.
func (appServer *AppServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), appServer.shutdownTimeout)
	defer cancel()

	if err := appServer.server.Shutdown(ctx); err != nil {
		appServer.server.Close()
		return err
	}
	return nil
}
