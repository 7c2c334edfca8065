package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is a logging verbosity, from Debug (everything) to Error (failures only)
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// backendLevels maps Level onto go-logging levels
var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// backend is shared by every module logger
var backend logging.LeveledBackend

// Logger is the subset of *logging.Logger the packages log through
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

// New returns a logger that tags its lines with the module name
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all loggers to w, keeping the current verbosity
func SetSink(w io.Writer) {
	level := logging.NOTICE
	if backend != nil {
		level = backend.GetLevel("")
	}

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
}

// SetLevel sets the verbosity of all loggers. Unknown levels fall back to Notice.
func SetLevel(level Level) {
	backendLevel, ok := backendLevels[level]
	if !ok {
		backendLevel = logging.NOTICE
	}
	backend.SetLevel(backendLevel, "")
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
