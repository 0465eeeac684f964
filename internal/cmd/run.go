package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"conf2env/internal/conf"
)

// run executes command with items exported into its environment. The child
// exit code becomes conf2env's own.
func run(command []string, items conf.Items) error {
	path, err := exec.LookPath(command[0])
	if err != nil {
		return err
	}
	child := exec.Command(path, command[1:]...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	child.Env = conf.Environ(os.Environ(), items)
	slog.Debug("Running command.", "path", path, "args", command[1:])
	err = child.Run()
	var exit *exec.ExitError
	if errors.As(err, &exit) {
		return exitCode(exit.ExitCode())
	}
	return err
}

// printItems writes items as shell-consumable lines, sorted by key.
func printItems(w io.Writer, items conf.Items, export bool) error {
	if !export {
		_, err := io.WriteString(w, conf.Format(items))
		return err
	}
	for _, key := range items.Keys() {
		_, err := fmt.Fprintf(w, "export %s=%s\n", key, items[key])
		if err != nil {
			return err
		}
	}
	return nil
}
