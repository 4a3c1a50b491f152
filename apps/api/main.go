package main

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"time"

	echoapi "github.com/trezcool/agenda/apps/api/echo"
	"github.com/trezcool/agenda/core"
	"github.com/trezcool/agenda/core/planner"
	"github.com/trezcool/agenda/core/pomodoro"
	"github.com/trezcool/agenda/core/schedule"
	emailsvc "github.com/trezcool/agenda/services/email"
	logsvc "github.com/trezcool/agenda/services/logger"
	"github.com/trezcool/agenda/storage"
	"github.com/trezcool/agenda/storage/persist"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	zapLogger := logsvc.NewZapLogger(logsvc.WithLevel(conf.Log.Level), logsvc.WithFile(conf.Log.File))
	defer func() { _ = zapLogger.Close() }()
	logger := logsvc.NewRollbarLogger(zapLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// set up storage
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	kvStore, err := storage.Open(ctx, conf)
	cancel()
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening %s storage: %v", conf.Storage.Driver, err), err)
	}
	defer func() {
		if err = kvStore.Close(); err != nil {
			logger.Error("closing storage", err)
		}
	}()
	gateway := persist.New(kvStore, logger, persist.WithPrefix(conf.Storage.Prefix), persist.WithTimeout(conf.Storage.Timeout))
	store := planner.NewStore(gateway.LoadAll(planner.EmptySnapshot()), gateway)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug || conf.SendgridApiKey == "" {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build), "storage", conf.Storage.Driver)
	defer logger.Info("Application stopped")

	validate, translator := core.NewValidator()
	schedule.InitValidators(validate, translator)

	reminder := planner.NewReminder(store, mailSvc, logger)
	if err = reminder.Start(conf.Reminder.Schedule); err != nil {
		logger.Fatal(fmt.Sprintf("starting reminders: %v", err), err)
	}
	defer reminder.Stop()

	timer := pomodoro.NewTimer(pomodoro.Settings{
		WorkTime:          conf.Pomodoro.WorkTime,
		ShortBreakTime:    conf.Pomodoro.ShortBreakTime,
		LongBreakTime:     conf.Pomodoro.LongBreakTime,
		LongBreakInterval: conf.Pomodoro.LongBreakInterval,
	})
	timerCtx, stopTimer := context.WithCancel(context.Background())
	defer stopTimer()
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		timer.Run(timerCtx, ticker.C, func(ev pomodoro.Event) {
			logger.Info(ev.Message(), "completed", ev.Completed)
		})
	}()

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	if conf.Server.DebugHost != "" {
		// Expose important info under /debug/vars.
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)
		expvar.NewString("storage").Set(conf.Storage.Driver)

		go func() {
			if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
				logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
		}()
	}

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(echoapi.ServerDeps{
		Conf:       conf,
		Logger:     logger,
		Store:      store,
		Timer:      timer,
		Validate:   validate,
		Translator: translator,
	})

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Error(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shut down and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Error(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
