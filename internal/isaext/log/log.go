package log

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	charmlog "github.com/charmbracelet/log"

	"isaext/internal/logging"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
	closer      io.Closer
)

// Setup installs the default slog logger once. debug forces the debug
// level regardless of ISAEXT_LOG_LEVEL.
func Setup(debug bool) {
	initOnce.Do(func() {
		lc := logging.NewLogger()
		if debug {
			lc.SetLevel(charmlog.DebugLevel)
			lc.SetReportCaller(true)
		}
		closer = lc
		slog.SetDefault(slog.New(lc.Logger))
		initialized.Store(true)
	})
}

func Initialized() bool {
	return initialized.Load()
}

// Close flushes a file-backed logger.
func Close() error {
	if closer == nil {
		return nil
	}
	return closer.Close()
}

func RecoverPanic(name string, cleanup func()) {
	if r := recover(); r != nil {
		if Initialized() {
			slog.Error(fmt.Sprintf("Panic in %s", name),
				"panic", r,
				"stack", string(debug.Stack()))
		}
		if cleanup != nil {
			cleanup()
		}
	}
}
