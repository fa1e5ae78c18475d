package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lixenwraith/enc-timer/constant"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup installs the default slog logger
// Without debug every record is discarded; with debug records go to a rotating file at path,
// or to the user cache dir when path is empty
func Setup(debug bool, path string) (*slog.Logger, io.Closer, error) {
	if !debug {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, nopCloser{}, nil
	}

	if path == "" {
		path = DefaultPath()
	}

	rf, err := NewRotatingFile(path)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(rf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	return logger, rf, nil
}

// DefaultPath is the debug log location under the user cache directory, or the temp dir
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, constant.ConfigDir, constant.LogFile)
}
