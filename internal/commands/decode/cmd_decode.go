package decode

import (
	"fmt"

	"github.com/bokysan/keycodec/internal/codec"
	"github.com/bokysan/keycodec/internal/commands"
	"github.com/bokysan/keycodec/internal/logging"
	"github.com/bokysan/keycodec/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command turns tokens back into 32 character strings. Note that decoding does not reverse encoding: a
// full 36 byte token yields the last 15 key characters followed by zeros.
type Command struct {
	commands.Streams `no-flag:"true" yaml:"-"`

	Format enc.EncoderFlag `yaml:"format" short:"F" long:"format" env:"KEYCODEC_FORMAT" description:"Token text format: base32 (default), base64u, base91, base128 or raw"`
	Ext    string          `yaml:"ext"    short:"e" long:"ext"    env:"KEYCODEC_EXT" description:"Strip this extension from the tokens before decoding"`

	Args struct {
		Tokens []string `positional-arg-name:"token" description:"Tokens to decode. If none are given, tokens are read from stdin, one per line."`
	} `positional-args:"yes" yaml:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

// DecodeToken parses the text form of a token and decodes it
func (c *Command) DecodeToken(text string) (string, error) {
	if c.Ext != "" {
		text = trimExt(text, c.Ext)
	}

	e := c.Format.Get()
	data, err := e.Decode(text)
	if err != nil {
		return "", errors.Wrapf(err, "Could not parse %v token '%s'", e.Name(), text)
	}
	res, err := codec.Decode(data)
	if err != nil {
		return "", errors.Wrapf(err, "Could not decode token '%s'", text)
	}
	return res, nil
}

func trimExt(text, ext string) string {
	if ext[0] != '.' {
		ext = "." + ext
	}
	if len(text) > len(ext) && text[len(text)-len(ext):] == ext {
		return text[:len(text)-len(ext)]
	}
	return text
}

// Execute decodes every token. A token which cannot be decoded does not stop the others; all the
// failures are returned together.
func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	_, raw := c.Format.Get().(*enc.RawEncoder)
	tokens, err := c.Inputs(c.Args.Tokens, raw)
	if err != nil {
		return err
	}

	var errs error
	out := c.Out()
	for _, token := range tokens {
		res, err := c.DecodeToken(token)
		if err != nil {
			log.WithError(err).Errorf("Skipping token: %v", err)
			errs = multierror.Append(errs, err)
			continue
		}
		if _, err := fmt.Fprintln(out, res); err != nil {
			return errors.WithStack(err)
		}
	}

	return errs
}
