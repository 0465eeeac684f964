package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/mitchellh/mapstructure"

	"conf2env/internal/profiles"
)

// Controller holds flags/env values controlling one conf2env run.
type Controller struct {
	Config    []string
	Profile   string
	Profiles  string
	Only      []string
	Prefix    string
	Export    bool
	Apply     bool
	Wait      time.Duration
	Color     bool
	Quiet     int
	Verbose   int
	Verbosity string
	LogLevel  slog.Level `mapstructure:"-"`
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

func unmarshalController() (controller Controller, err error) {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &controller,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return
	}
	err = d.Decode(k.All())
	if err != nil {
		return
	}
	controller.LogLevel = controller.level()
	return
}

func (controller Controller) level() slog.Level {
	var level slog.LevelVar
	if controller.Verbosity != "" {
		err := level.UnmarshalText([]byte(controller.Verbosity))
		if err == nil {
			return level.Level()
		}
		slog.Warn("Bad verbosity.", "value", controller.Verbosity)
	}
	// Default log level is INFO, which index is 1.
	levelIndex := 1 - controller.Verbose + controller.Quiet
	levelIndex = int(math.Max(0, float64(levelIndex)))
	levelIndex = int(math.Min(float64(levelIndex), float64(len(levels)-1)))
	return levels[levelIndex]
}

// applyProfile prepends the profile's files to the explicit ones and fills
// filter options left unset on the command line.
func (controller *Controller) applyProfile() error {
	path := profiles.FindFile(controller.Profiles)
	if path == "" {
		return fmt.Errorf("no profiles file found")
	}
	slog.Debug("Using profiles file.", "path", path)
	c, err := profiles.Load(path)
	if err != nil {
		return err
	}
	p, err := c.Get(controller.Profile)
	if err != nil {
		return err
	}
	controller.Config = append(slices.Clone(p.Files), controller.Config...)
	if len(controller.Only) == 0 {
		controller.Only = p.Only
	}
	if controller.Prefix == "" {
		controller.Prefix = p.Prefix
	}
	return nil
}
