package inspect

import (
	"github.com/bokysan/keycodec/internal/commands"
	"github.com/bokysan/keycodec/internal/logging"
	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Command prints how a key travels through the codec
type Command struct {
	commands.Streams `no-flag:"true" yaml:"-"`

	Style string `yaml:"style" short:"s" long:"style" env:"KEYCODEC_INSPECT_STYLE" description:"Output format: dump (default) or yaml" choice:"dump" choice:"yaml"`

	Args struct {
		Keys []string `positional-arg-name:"key" description:"Keys to inspect. If none are given, keys are read from stdin, one per line."`
	} `positional-args:"yes" yaml:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	keys, err := c.Inputs(c.Args.Keys, false)
	if err != nil {
		return err
	}

	var reports []*Report
	for _, key := range keys {
		r, err := NewReport(key)
		if err != nil {
			return errors.Wrapf(err, "Could not inspect '%s'", key)
		}
		reports = append(reports, r)
	}

	out := c.Out()
	if c.Style == "yaml" {
		data, err := yaml.Marshal(reports)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = out.Write(data)
		return errors.WithStack(err)
	}

	for _, r := range reports {
		dumper.Fdump(out, r)
	}
	return nil
}
