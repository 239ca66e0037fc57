package util

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object, even if it's wrapped. If it's a different kind of
// error, a generic error code - 99 - is returned
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			os.Exit(0)
			return
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", flagsError.Message)
		log.Exit(int(flagsError.Type))
	} else {
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}
}
