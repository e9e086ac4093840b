package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// Run starts the HTTP server and all background services, then blocks until a
// shutdown signal arrives.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	if err := srv.mapHandlers(); err != nil {
		srv.l.Errorf(ctx, "Failed to map handlers: %v", err)
		return err
	}

	go srv.wsUC.Run()
	srv.dispatcher.Start()
	srv.l.Info(ctx, "Gateway and dispatcher started")

	if srv.redisSub != nil {
		if err := srv.redisSub.Start(); err != nil {
			srv.l.Errorf(ctx, "Failed to start Redis subscriber: %v", err)
			return err
		}
	}
	if srv.natsSub != nil {
		if err := srv.natsSub.Start(); err != nil {
			srv.l.Errorf(ctx, "Failed to start NATS subscriber: %v", err)
			return err
		}
	}

	srv.http = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", srv.server.Host, srv.server.Port),
		Handler: srv.gin,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	srv.l.Infof(ctx, "HTTP server started on %s", srv.http.Addr)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	var runErr error
	select {
	case sig := <-ch:
		srv.l.Infof(ctx, "Received signal %s", sig)
	case runErr = <-errCh:
		srv.l.Errorf(ctx, "HTTP server error: %v", runErr)
	}

	srv.shutdown()
	return runErr
}

// shutdown stops intake first, then drains the producer, then closes sockets.
func (srv *HTTPServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), srv.server.ShutdownTimeout)
	defer cancel()
	srv.l.Info(ctx, "Stopping lead notification service...")

	if err := srv.http.Shutdown(ctx); err != nil {
		srv.l.Errorf(ctx, "HTTP server shutdown error: %v", err)
	}
	if srv.redisSub != nil {
		if err := srv.redisSub.Shutdown(ctx); err != nil {
			srv.l.Errorf(ctx, "Redis subscriber shutdown error: %v", err)
		}
	}
	if srv.natsSub != nil {
		if err := srv.natsSub.Shutdown(ctx); err != nil {
			srv.l.Errorf(ctx, "NATS subscriber shutdown error: %v", err)
		}
	}
	if err := srv.dispatcher.Shutdown(ctx); err != nil {
		srv.l.Errorf(ctx, "Dispatcher shutdown error: %v", err)
	}
	if err := srv.wsUC.Shutdown(ctx); err != nil {
		srv.l.Errorf(ctx, "Gateway shutdown error: %v", err)
	}
}
