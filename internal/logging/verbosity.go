package logging

import (
	log "github.com/sirupsen/logrus"
)

// SetVerbosity sets the log level from the number of `-v` flags. Without any, only errors are shown, so
// the output of the commands stays clean.
func SetVerbosity(v []bool) {
	verbosity := log.ErrorLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
