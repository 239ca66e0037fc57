package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_InputsFromArgs(t *testing.T) {
	s := &Streams{Input: strings.NewReader("ignored\n")}
	res, err := s.Inputs([]string{"a", "b"}, false)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, res)
}

func Test_InputsFromLines(t *testing.T) {
	s := &Streams{Input: strings.NewReader("first\r\n\nsecond\nthird")}
	res, err := s.Inputs(nil, false)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second", "third"}, res)
}

func Test_InputsWhole(t *testing.T) {
	s := &Streams{Input: strings.NewReader("one\ntwo\n")}
	res, err := s.Inputs(nil, true)
	require.NoError(t, err)
	require.Equal(t, []string{"one\ntwo\n"}, res)

	s = &Streams{Input: strings.NewReader("")}
	res, err = s.Inputs(nil, true)
	require.NoError(t, err)
	require.Empty(t, res)
}
