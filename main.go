package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusledger/fees.api/config"
	"github.com/campusledger/fees.api/dao"
	"github.com/campusledger/fees.api/handlers"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
)

const shutdownTimeout = 15 * time.Second

func main() {
	log.Namespace = "fees.api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := mux.NewRouter()
	chain := alice.New()

	handlers.Register(router, *cfg, dao.NewDAO(cfg))
	monitorDone := handlers.StartStuckPaymentMonitor(ctx, *cfg)

	server := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: chain.Then(router),
	}

	go func() {
		log.Info("Starting fees.api service", log.Data{"bind_addr": cfg.BindAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(err)
	}
	<-monitorDone

	log.Trace("Exiting fees.api service")
}
