package logging

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// maxSessions is how many session log files are kept in the log directory.
const maxSessions = 10

// Setup creates a logger writing to a new session file under logDir. The TUI
// owns the terminal, so nothing is written to stdout or stderr.
func Setup(logDir, level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	if err := rotateSessions(logDir, maxSessions-1); err != nil {
		return nil, fmt.Errorf("failed to rotate log sessions: %w", err)
	}

	logPath := filepath.Join(logDir, time.Now().Format("2006-01-02_15-04-05")+".log")

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{logPath}
	config.ErrorOutputPaths = []string{logPath}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// rotateSessions keeps only the keep most recent session logs. Files that
// vanish before they can be inspected are skipped.
func rotateSessions(logDir string, keep int) error {
	paths, err := filepath.Glob(filepath.Join(logDir, "*.log"))
	if err != nil {
		return err
	}
	if len(paths) <= keep {
		return nil
	}

	type session struct {
		path    string
		modTime time.Time
	}
	sessions := make([]session, 0, len(paths))
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		sessions = append(sessions, session{path: p, modTime: info.ModTime()})
	}
	if len(sessions) <= keep {
		return nil
	}

	// Oldest first
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].modTime.Before(sessions[j].modTime)
	})

	for _, s := range sessions[:len(sessions)-keep] {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
