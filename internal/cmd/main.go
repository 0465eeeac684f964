package cmd

import (
	"context"
	"log/slog"
	"os"
	"runtime"

	"github.com/lmittmann/tint"
	"github.com/spf13/pflag"

	"conf2env/internal"
	"conf2env/internal/conf"
)

func Main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bootstrap logging first to log in setup.
	err := internal.SetupLogging()
	if err == nil {
		err = loadSettings()
	}
	if err == nil {
		if k.Bool("help") {
			pflag.Usage()
			return
		} else if k.Bool("version") {
			showVersion()
			return
		}
		err = conf2env(ctx)
	}
	if err != nil {
		exit, ok := err.(errorCode)
		if ok {
			exit.Exit()
		}
		slog.Error("Fatal error.", tint.Err(err))
		if internal.CurrentLevel > slog.LevelDebug {
			slog.Error("Run conf2env with --verbose to get more informations.")
		}
		os.Exit(1)
	}
}

func conf2env(ctx context.Context) error {
	controller, err := unmarshalController()
	if err != nil {
		return err
	}
	internal.SetLoggingHandler(controller.LogLevel, controller.Color)
	slog.Debug("Starting conf2env.",
		"version", version(),
		"runtime", runtime.Version(),
		"commit", commit,
		"pid", os.Getpid(),
	)

	if controller.Profile != "" {
		err = controller.applyProfile()
		if err != nil {
			return err
		}
	}

	items, err := load(ctx, controller)
	if err != nil {
		return err
	}
	items = items.Filter(controller.Only).Prefixed(controller.Prefix)

	if controller.Apply {
		err = conf.Apply(items)
		if err != nil {
			return err
		}
		slog.Debug("Exported configuration to own environment.", "count", len(items))
	}

	command := pflag.Args()
	if len(command) > 0 {
		return run(command, items)
	}
	return printItems(os.Stdout, items, controller.Export)
}
