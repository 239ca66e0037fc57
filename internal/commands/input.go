package commands

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Streams holds the input and output of a command. Both default to the process stdin / stdout.
type Streams struct {
	Input  io.Reader `no-flag:"true" yaml:"-"`
	Output io.Writer `no-flag:"true" yaml:"-"`
}

func (s *Streams) In() io.Reader {
	if s.Input == nil {
		return os.Stdin
	}
	return s.Input
}

func (s *Streams) Out() io.Writer {
	if s.Output == nil {
		return os.Stdout
	}
	return s.Output
}

// Inputs returns the positional arguments if there are any. Otherwise it reads the input: either every
// non-empty line separately, or (when whole is set) all of it as a single value.
func (s *Streams) Inputs(args []string, whole bool) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	if whole {
		data, err := ioutil.ReadAll(s.In())
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read input")
		}
		if len(data) == 0 {
			return nil, nil
		}
		return []string{string(data)}, nil
	}

	var res []string
	scanner := bufio.NewScanner(s.In())
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "Could not read input")
	}
	log.Tracef("Read %d values from input", len(res))
	return res, nil
}
