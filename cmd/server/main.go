package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	apphttp "github.com/hostelhub/notify-gateway/internal/app/http"
	"github.com/hostelhub/notify-gateway/internal/app/usecase"
	"github.com/hostelhub/notify-gateway/internal/config"
	"github.com/hostelhub/notify-gateway/internal/infra/tasks"
	"github.com/hostelhub/notify-gateway/internal/infra/wa"
)

func main() {
	cfg := config.Load()

	waLogger := walog.Stdout("WA", "ERROR", true)
	waManager := wa.NewManager(cfg.SQLitePath, waLogger, cfg.SendTimeout)

	taskStore, err := tasks.Open(cfg.TasksDBPath)
	if err != nil {
		log.Fatalf("open task store: %v", err)
	}
	defer taskStore.Close()

	// bring the default session up so a previously paired device
	// reconnects without waiting for the UI
	go func() {
		if err := waManager.Start(context.Background(), cfg.DefaultSession); err != nil {
			log.Printf("start default session %s: %v", cfg.DefaultSession, err)
		}
	}()

	startUC := usecase.NewStartSessionUsecase(waManager)
	statusUC := usecase.NewSessionStatusUsecase(waManager)
	regenUC := usecase.NewRegenerateUsecase(waManager)
	sendUC := usecase.NewSendTextUsecase(waManager, cfg.CountryCode)
	dispatchUC := usecase.NewDispatchUsecase(waManager, taskStore, cfg.CountryCode)
	eventsUC := usecase.NewSessionEventsUsecase(waManager)

	handler := apphttp.NewHandler(startUC, statusUC, regenUC, sendUC, dispatchUC, eventsUC, cfg.DefaultSession)
	router := apphttp.NewRouter(handler, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("HTTP listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	waManager.Shutdown()
}
