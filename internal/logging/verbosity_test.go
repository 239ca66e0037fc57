package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	SetVerbosity(nil)
	require.Equal(t, log.ErrorLevel, log.GetLevel())
	require.Equal(t, "ERROR", VerbosityName())

	SetVerbosity([]bool{true})
	require.Equal(t, "WARN", VerbosityName())

	SetVerbosity([]bool{true, true, true})
	require.Equal(t, "DEBUG", VerbosityName())

	SetVerbosity(make([]bool, 10))
	require.Equal(t, log.TraceLevel, log.GetLevel())
	require.Equal(t, "TRACE", VerbosityName())
}
