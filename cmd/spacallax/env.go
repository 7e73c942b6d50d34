package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/spacallax/internal/config"
	"github.com/vovakirdan/spacallax/internal/platform/tui"
	"github.com/vovakirdan/spacallax/internal/storage"
)

const logFileName = "spacallax.log"

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.spacallax/spacallax.log while a full-screen UI owns
// the terminal. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	dir := config.UserDir()
	if dir == "" {
		return log.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f, "spacallax"), func() { f.Close() }
}

// session is the state shared by the play and window commands.
type session struct {
	game      config.GameConfig
	settings  config.Settings
	file      *config.SettingsFile
	store     *storage.Store // nil if the database is unavailable
	highScore int
}

// openSession loads tuning, settings and the score store. Only a bad
// --config file is fatal; everything else degrades with a warning.
func openSession(logger *log.Logger) (*session, error) {
	gameCfg, err := config.LoadGame(flagConfig)
	if err != nil {
		return nil, err
	}

	s := &session{game: gameCfg, file: settingsFile()}
	s.settings, err = s.file.Load()
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return s, nil
	}
	s.store = store
	if best, err := store.BestScore(); err == nil {
		s.highScore = best
	}
	return s, nil
}

// saver returns the store as a score saver. A missing database yields a
// nil interface so frontends skip saving.
func (s *session) saver() tui.ScoreSaver {
	if s.store == nil {
		return nil
	}
	return s.store
}

func (s *session) close() {
	if s.store != nil {
		s.store.Close()
	}
}

func settingsFile() *config.SettingsFile {
	path := flagSettings
	if path == "" {
		path = config.DefaultSettingsPath()
	}
	return config.NewSettingsFile(path)
}
