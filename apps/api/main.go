package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	echoapi "github.com/edumanage/backend/apps/api/echo"
	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
	"github.com/edumanage/backend/core/session"
	"github.com/edumanage/backend/jobs"
	"github.com/edumanage/backend/metrics"
	emailsvc "github.com/edumanage/backend/services/email"
	logsvc "github.com/edumanage/backend/services/logger"
	"github.com/edumanage/backend/storage/kv"
	inmemkv "github.com/edumanage/backend/storage/kv/inmem"
	"github.com/edumanage/backend/storage/kv/postgres"
	"github.com/edumanage/backend/storage/kv/redisdb"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "KV : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	dbLogger.Enable(!conf.Debug)

	// set up storage
	db, err := setUpKV(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up storage: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			dbLogger.Fatal("Failed to close", err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	sessionSvc := session.NewService(db, dbLogger)
	schoolSvc := school.NewService(db, dbLogger, mailSvc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.
	// /metrics - Prometheus scrape endpoint.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	http.DefaultServeMux.Handle("/metrics", metrics.Handler())

	go func() {
		if err = http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start Background Jobs

	jobCtx, cancelJobs := context.WithCancel(context.Background())
	defer cancelJobs()

	runner := jobs.New(jobCtx)
	runner.Every(conf.Jobs.OverdueSweepInterval, "overdue_fees", jobs.OverdueFeeSweep(schoolSvc, logger))

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			SessionSvc: sessionSvc,
			SchoolSvc:  schoolSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))
		cancelJobs()

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpKV(conf *core.Config) (kv.DB, error) {
	switch conf.Storage.Backend {
	case "redis":
		return redisdb.Open(conf)
	case "postgres":
		return postgres.Open(conf)
	default:
		return inmemkv.NewDB(), nil
	}
}
