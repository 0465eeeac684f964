package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/lithammer/dedent"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"conf2env/internal/conf"
)

var k = koanf.New(".")

func init() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [OPTIONS] [--] [COMMAND [ARG...]]\n\n", os.Args[0])
		pflag.PrintDefaults()
		os.Stderr.Write([]byte(dedent.Dedent(`

		Without a command, conf2env prints the merged configuration as
		KEY=value lines. With a command, conf2env runs it with the merged
		configuration exported into its environment.
		`)))
	}
}

// loadSettings layers conf2env's own settings: defaults, then rc files,
// then CONF2ENV_* environment variables, then flags.
func loadSettings() error {
	_ = k.Load(confmap.Provider(map[string]interface{}{
		"wait":  "0s",
		"color": defaultColor(),
	}, "."), nil)

	home, _ := os.UserHomeDir()
	rcFiles := []string{
		"/etc/conf2envrc",
		filepath.Join(home, ".conf2envrc"),
		".conf2envrc", // search in CWD
	}
	for _, path := range rcFiles {
		err := k.Load(conf.FileProvider(path), conf.Parser{})
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	_ = k.Load(env.Provider("CONF2ENV_", ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, "CONF2ENV_"))
	}), nil)

	pflag.StringSliceP("config", "c", nil, "Path to key=value configuration file. Repeatable. Use - for stdin.")
	pflag.StringP("profile", "p", "", "Name of a profile from the profiles file.")
	pflag.String("profiles", "", "Path to YAML profiles file.")
	pflag.StringSlice("only", nil, "Export only these keys. Repeatable.")
	pflag.String("prefix", "", "Prefix applied to exported keys.")
	pflag.BoolP("export", "e", false, "Print export KEY=value lines.")
	pflag.Bool("apply", false, "Also set variables in conf2env's own environment.")
	pflag.Duration("wait", 0, "Wait up to this duration for missing configuration files.")
	pflag.Bool("color", k.Bool("color"), "Force color output.")
	pflag.CountP("quiet", "q", "Decrease log verbosity.")
	pflag.CountP("verbose", "v", "Increase log verbosity.")
	pflag.BoolP("help", "?", false, "Show this help message and exit.")
	pflag.BoolP("version", "V", false, "Show version and exit.")
	pflag.Parse()

	return k.Load(posflag.Provider(pflag.CommandLine, ".", k), nil)
}

func defaultColor() bool {
	plain := os.Getenv("NO_COLOR")
	if plain != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}
