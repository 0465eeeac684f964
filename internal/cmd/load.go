package cmd

import (
	"context"
	"log/slog"

	"conf2env/internal/conf"
	"conf2env/internal/errorlist"
)

// load reads every configuration file in order. Later files override
// earlier ones. A missing file is fatal, but all files are tried first so a
// single run reports every bad path.
func load(ctx context.Context, controller Controller) (conf.Items, error) {
	paths := controller.Config
	if len(paths) == 0 {
		path := conf.FindFile("")
		if path == "" {
			return nil, &conf.FileNotFoundError{Path: "conf2env.conf"}
		}
		paths = []string{path}
	}

	if controller.Wait > 0 {
		// One deadline shared by every file, not one per file.
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, controller.Wait)
		defer cancel()
	}

	errs := errorlist.New("unreadable configuration files")
	items := conf.Items{}
	for _, path := range paths {
		if controller.Wait > 0 && path != "-" {
			err := conf.WaitFile(ctx, path)
			if err != nil {
				slog.Debug("Configuration file never appeared.", "path", path)
			}
		}
		read, err := conf.ReadFile(path)
		if err != nil {
			slog.Error("Cannot read configuration file.", "path", path)
			if !errs.Append(err) {
				break
			}
			continue
		}
		slog.Debug("Loaded configuration file.", "path", path, "count", len(read))
		items = items.Merge(read)
	}
	if errs.Len() > 0 {
		return nil, errs
	}
	return items, nil
}
