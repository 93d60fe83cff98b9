package main

import (
	"io"
	"os"
	"path/filepath"

	"pkt.systems/pslog"

	"github.com/lixenwraith/blockpaint/config"
)

// openLogger opens the append-only log file the editor writes to while it owns the terminal
// cfg.Level applies unless LOG_LEVEL is already set in the environment
func openLogger(cfg config.LogConfig) (pslog.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		path = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	if _, set := os.LookupEnv("LOG_LEVEL"); !set && cfg.Level != "" {
		_ = os.Setenv("LOG_LEVEL", cfg.Level)
	}
	logger := pslog.LoggerFromEnv(pslog.WithEnvWriter(file))
	return logger, file, nil
}
