package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	level.Set(slog.LevelWarn)
}

// SetLevel changes the level of every logger returned by New.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level returns the current level.
func Level() slog.Level {
	return level.Level()
}

// New returns a logger that writes text records to w and, when the systemd
// journal is reachable, to the journal as well. Under a systemd service the
// terminal handler is skipped because stderr already lands in the journal.
func New(w io.Writer) *slog.Logger {
	var handlers []slog.Handler

	isSystemdService := runningAsService()

	// local
	terminalHandler := slog.NewTextHandler(
		w,
		&slog.HandlerOptions{
			Level: level,
		},
	)
	if !isSystemdService {
		handlers = append(handlers, terminalHandler)
	}

	// systemd journal
	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		if isSystemdService {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
			handlers = append(handlers, terminalHandler)
		}
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}

func runningAsService() bool {
	cgroupPath, err := getCgroupPath()
	if err != nil {
		return false
	}
	return strings.HasSuffix(
		path.Dir(cgroupPath),
		".service",
	)
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) >= 3 {
		return parts[2], nil
	}
	return "", nil
}
