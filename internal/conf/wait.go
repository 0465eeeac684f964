package conf

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/avast/retry-go/v4"
)

// WaitFile blocks until path exists or ctx expires. Bound ctx with a
// timeout to limit the wait. ReadFile itself never retries; waiting for a
// file to appear is an explicit caller choice.
func WaitFile(ctx context.Context, path string) error {
	return retry.Do(
		func() error {
			_, err := os.Stat(path)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.MaxDelay(time.Second),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("Waiting for configuration file.", "path", path, "attempt", n, "err", err.Error())
		}),
		retry.LastErrorOnly(true),
	)
}
