package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tamasbrandstadter/banking-api/cmd/api/bank"
	"github.com/tamasbrandstadter/banking-api/cmd/api/handler"
	"github.com/tamasbrandstadter/banking-api/internal/env"
)

func main() {
	log.SetFormatter(&log.TextFormatter{TimestampFormat: time.RFC3339, FullTimestamp: true})

	envCfg, err := env.GetEnvCfg()
	if err != nil {
		log.Fatalf("error parsing env vars: %v", err)
	}

	b := bank.New(envCfg.BankName)

	app := handler.NewApplication(b, envCfg.Currency)
	app.MaxScale = envCfg.MaxScale

	server := http.Server{
		Addr:           fmt.Sprintf(":%d", envCfg.Port),
		Handler:        app,
		ReadTimeout:    envCfg.ReadTimeout,
		WriteTimeout:   envCfg.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Infof("serving %s in %s, listening on %s", b.Name(), envCfg.Currency, server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Errorf("server failed to start: %v", err)
		}
		return
	case sig := <-shutdown:
		log.Infof("received %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), envCfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Warnf("shutdown: Graceful shutdown did not complete in %v : %v", envCfg.ShutdownTimeout, err)

		if err := server.Close(); err != nil {
			log.Warnf("shutdown: Error killing server : %v", err)
		}
	}
}
