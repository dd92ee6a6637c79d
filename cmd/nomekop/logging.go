package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-nomekop/internal/games/nomekop"
	"github.com/vovakirdan/tui-nomekop/internal/recorder"
)

// newLogger writes to --log-file when set and to fallback otherwise. The
// returned function closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// startRecording installs the frame recorder when --record is set. The
// returned function stops recording and flushes the file.
func startRecording(logger *log.Logger) (func(), error) {
	if flagRecord == "" {
		return func() {}, nil
	}

	w, err := recorder.Create(flagRecord)
	if err != nil {
		return nil, err
	}
	nomekop.SetRecorder(w)
	logger.Info("recording frames", "path", flagRecord)

	return func() {
		nomekop.SetRecorder(nil)
		if err := w.Close(); err != nil {
			logger.Warn("could not finish recording", "path", flagRecord, "error", err)
			return
		}
		logger.Info("recording saved", "path", flagRecord, "frames", w.Frames())
	}, nil
}
