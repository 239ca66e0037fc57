package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/bokysan/keycodec/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	hookOnce sync.Once
	logFile  *os.File
)

// SetupLogging configures the standard logrus logger from the general options. Logs always go to stderr
// or the log file, as stdout is reserved for the command output.
func SetupLogging() error {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		hookOnce.Do(func() {
			log.AddHook(&ContextHook{})
		})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)

	if err := Close(); err != nil {
		return err
	}
	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Wrapf(err, "Could not open log file %s", *args.General.LogFile)
		}
		logFile = f
		log.SetOutput(f)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
	if args.General.ConfigurationFilePath != "" {
		log.Debugf("Configuration read from %v", args.General.ConfigurationFilePath)
	}
	return nil
}

// Close switches the log output back to stderr and closes the log file, if one was opened
func Close() error {
	log.SetOutput(os.Stderr)
	if logFile == nil {
		return nil
	}

	f := logFile
	logFile = nil
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "Could not close log file %s", f.Name())
	}
	return nil
}
