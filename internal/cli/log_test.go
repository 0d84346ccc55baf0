package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "InfoAtInfoLevel",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("loaded dataset") },
			wantLog: true,
		},
		{
			name:    "DebugAtInfoLevel",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("recorded frame") },
			wantLog: false,
		},
		{
			name:    "DebugAtDebugLevel",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("recorded frame") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgressReportsElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	p := newProgress(logger)
	time.Sleep(10 * time.Millisecond)
	p.done("Morphed dino into circle")

	out := buf.String()
	if !strings.Contains(out, "Morphed dino into circle") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "ms)") && !strings.Contains(out, "s)") {
		t.Errorf("output missing elapsed duration: %q", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Error("loggerFromContext should return the attached logger")
	}

	loggerFromContext(ctx).Info("reachable")
	if buf.Len() == 0 {
		t.Error("attached logger should write to its buffer")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to a default logger")
	}
}
