package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
)

// ErrorLog appends timestamped 404/500 lines to a log file. In debug mode
// nothing is written; errors surface to the developer instead.
type ErrorLog struct {
	path  string
	debug bool
	mu    sync.Mutex
}

// NewErrorLog creates an ErrorLog writing to path. An empty path disables
// file logging.
func NewErrorLog(path string, debug bool) *ErrorLog {
	return &ErrorLog{path: path, debug: debug}
}

// Record appends one line with the status, current time, and request URL.
func (l *ErrorLog) Record(status int, url string) {
	if l.debug || l.path == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		slog.Error("open error log", "path", l.path, "error", err)
		return
	}
	defer f.Close()

	timestamp := time.Now().Format("02-01-2006 15:04:05")
	if _, err := fmt.Fprintf(f, "\n%d error at %s : %s", status, timestamp, url); err != nil {
		slog.Error("write error log", "path", l.path, "error", err)
	}
}

// NotFoundHandler renders the 404 page and records the miss.
func NotFoundHandler(errlog *ErrorLog) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		renderNotFound(w, r, errlog)
	})
}

func renderNotFound(w http.ResponseWriter, r *http.Request, errlog *ErrorLog) {
	errlog.Record(http.StatusNotFound, r.URL.String())
	render(w, http.StatusNotFound, "404.html", nil)
}

// renderServerError logs an uncategorized failure and renders a generic
// 500 page without leaking internal detail.
func renderServerError(w http.ResponseWriter, r *http.Request, errlog *ErrorLog, err error) {
	slog.Error("internal error", "url", r.URL.String(), "error", err)
	errlog.Record(http.StatusInternalServerError, r.URL.String())
	render(w, http.StatusInternalServerError, "500.html", nil)
}
