// Package logging builds the zerolog logger used by the gridmsg CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level. With an empty file it writes
// human-readable output to w; otherwise JSON lines go to file.
//
// The level parameter can be one of: trace, debug, info, warn, error, disabled.
func New(level, file string, w io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}
		f, err := os.Create(file)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		out = f
	}

	l := zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(lvl)

	return l, closer, nil
}
