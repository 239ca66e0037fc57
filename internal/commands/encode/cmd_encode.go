package encode

import (
	"fmt"

	"github.com/bokysan/keycodec/internal/codec"
	"github.com/bokysan/keycodec/internal/commands"
	"github.com/bokysan/keycodec/internal/logging"
	"github.com/bokysan/keycodec/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command turns keys into fixed width tokens and prints them, one per line
type Command struct {
	commands.Streams `no-flag:"true" yaml:"-"`

	Format enc.EncoderFlag `yaml:"format" short:"F" long:"format" env:"KEYCODEC_FORMAT" description:"Token text format: base32 (default), base64u, base91, base128 or raw"`
	Trim   bool            `yaml:"trim"   short:"t" long:"trim"   env:"KEYCODEC_TRIM" description:"Drop the trailing all-zero chunk and print a 24 byte token"`
	Ext    string          `yaml:"ext"    short:"e" long:"ext"    env:"KEYCODEC_EXT" description:"Print the token as a file name with the given extension"`

	Args struct {
		Keys []string `positional-arg-name:"key" description:"Keys to encode. If none are given, keys are read from stdin, one per line."`
	} `positional-args:"yes" yaml:"-"`
}

func NewCommand() *Command {
	return &Command{}
}

// Token encodes a single key, applying the trim option
func (c *Command) Token(key string) []byte {
	token := codec.Encode(key)
	if c.Trim {
		token = token[:codec.EncodedLength-codec.ChunkSize]
	}
	return token
}

// Render returns the text form of the token for the key
func (c *Command) Render(key string) (string, error) {
	e := c.Format.Get()
	token := c.Token(key)
	if c.Ext != "" {
		return codec.TokenFilename(token, e, c.Ext)
	}
	return e.Encode(token), nil
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	keys, err := c.Inputs(c.Args.Keys, false)
	if err != nil {
		return err
	}

	e := c.Format.Get()
	out := c.Out()
	for _, key := range keys {
		text, err := c.Render(key)
		if err != nil {
			return err
		}
		log.WithField("key", key).Debugf("Canonical key %q", codec.CanonicalKey(key))

		if _, ok := e.(*enc.RawEncoder); ok && c.Ext == "" {
			_, err = fmt.Fprint(out, text)
		} else {
			_, err = fmt.Fprintln(out, text)
		}
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
