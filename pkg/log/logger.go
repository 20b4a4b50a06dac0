// Package log wraps go-logging with one shared sink and a single verbosity
// switch for every named logger in the renderer.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// Verbosity levels, most verbose first.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = [...]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var levelNames = [...]string{
	Debug:   "debug",
	Info:    "info",
	Notice:  "notice",
	Warning: "warning",
	Error:   "error",
}

var lineFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	sinkBackend logging.LeveledBackend
	level       = Notice
)

// Logger is satisfied by *logging.Logger.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module name
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// String returns the lowercase level name
func (l Level) String() string {
	if l < Debug || l > Error {
		return "error"
	}
	return levelNames[l]
}

// FromFlags maps the -v / -vv command line switches to a level.
// -vv wins over -v; neither leaves the default Notice.
func FromFlags(verbose, veryVerbose bool) Level {
	switch {
	case veryVerbose:
		return Debug
	case verbose:
		return Info
	}
	return Notice
}

// CurrentLevel reports the level last passed to SetLevel
func CurrentLevel() Level {
	return level
}

// SetSink sends the output of every logger to w. The level is preserved.
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	sinkBackend = logging.AddModuleLevel(formatted)
	logging.SetBackend(sinkBackend)
	SetLevel(level)
}

// SetLevel changes the verbosity of every logger. Levels past Error are
// treated as Error.
func SetLevel(l Level) {
	if l < Debug || l > Error {
		l = Error
	}
	level = l
	sinkBackend.SetLevel(backendLevels[l], "")
}

func init() {
	SetSink(os.Stdout)
}
