// Command lwm is a minimal floating window manager for X11.
//
// It manages windows with Alt-based key bindings and Alt+mouse drags:
// move with the left button, resize with the right, snap to screen
// edges, toggle fullscreen, minimize and restore, and cycle focus.
// Builtin dialogs confirm exit, launch programs and show the bindings.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/BurntSushi/xgb"
	"github.com/joho/godotenv"
	"github.com/phsym/console-slog"
	"github.com/thejerf/suture/v4"

	"github.com/postman721/LWM/internal/config"
	"github.com/postman721/LWM/internal/logging"
	"github.com/postman721/LWM/internal/spawn"
	"github.com/postman721/LWM/internal/wm"
	"github.com/postman721/LWM/internal/x11"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lwm:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// A .env next to the binary may override DISPLAY and friends.
	_ = godotenv.Load()

	flags := flag.NewFlagSet("lwm", flag.ExitOnError)
	debug := flags.Bool("debug", false, "enable debug logging")
	configPath := flags.String("config", config.DefaultConfigPath(), "path to the configuration file")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "Usage: lwm [flags]")
		fmt.Fprintln(flags.Output(), "A minimal floating window manager for X11.")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFromPath(*configPath)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	sink := logging.NewFileSink(cfg.LogFile)
	logger := slog.New(logging.NewFanout(
		console.NewHandler(os.Stderr, &console.HandlerOptions{Level: level}),
		slog.NewTextHandler(sink, &slog.HandlerOptions{Level: level}),
	))
	slog.SetDefault(logger)

	spawn.IgnoreChildren()

	conn, err := x11.NewConnection(cfg, logger.With("component", "x11"))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	events := make(chan xgb.Event)
	go conn.ReceiveEvents(ctx, events)

	manager := wm.New(conn, events, wm.Options{
		SnapThreshold: cfg.SnapThreshold,
		MinWindowSize: cfg.MinWindowSize,
		Exec:          spawn.Command,
		Logger:        logger.With("component", "wm"),
	})

	super := suture.New("lwm", suture.Spec{
		EventHook: sutureEventHook(logger),
	})
	super.Add(sink)
	super.Add(manager)

	err = super.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) &&
		!errors.Is(err, suture.ErrTerminateSupervisorTree) {
		return err
	}
	logger.Info("lwm stopped")
	return nil
}

func sutureEventHook(logger *slog.Logger) suture.EventHook {
	return func(ev suture.Event) {
		switch e := ev.(type) {
		case suture.EventStopTimeout:
			logger.Warn("service stop timed out", "service", e.ServiceName)
		case suture.EventServicePanic:
			logger.Error("service panicked", "service", e.ServiceName, "panic", e.PanicMsg)
			logger.Debug("panic stacktrace", "stacktrace", e.Stacktrace)
		case suture.EventServiceTerminate:
			logger.Error("service terminated", "service", e.ServiceName, "error", e.Err)
		case suture.EventBackoff:
			logger.Debug("supervisor backing off", "supervisor", e.SupervisorName)
		case suture.EventResume:
			logger.Debug("supervisor resumed", "supervisor", e.SupervisorName)
		default:
			logger.Debug("supervisor event", "event", ev.String())
		}
	}
}
