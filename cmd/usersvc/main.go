package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"usersvc/internal/config"
	"usersvc/internal/http/handlers"
	applog "usersvc/internal/log"
	"usersvc/internal/repos"
)

func main() {
	if err := run(config.Load()); err != nil {
		applog.Error(nil, "server.listen.fail", err, nil)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	// A store that cannot be opened leaves the service up; every user route
	// then answers 500 with the open error.
	gw, err := repos.Open(cfg.DBDSN)
	if err != nil {
		applog.Error(nil, "db.open.fail", err, map[string]any{"dsn": cfg.DBDSN})
		gw = repos.Unavailable(err)
	} else {
		applog.Info(nil, "db.open", map[string]any{"dsn": cfg.DBDSN})
	}
	defer func() {
		if err := gw.Close(); err != nil {
			applog.Error(nil, "db.close.fail", err, nil)
		}
	}()

	app := handlers.NewApp(cfg, handlers.NewDeps(gw))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		applog.Info(nil, "server.shutdown", nil)
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			applog.Error(nil, "server.shutdown.fail", err, nil)
		}
	}()

	applog.Info(nil, "server.start", map[string]any{"addr": cfg.Addr()})
	return app.Listen(cfg.Addr())
}
