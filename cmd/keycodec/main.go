package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/keycodec/internal/args"
	"github.com/bokysan/keycodec/internal/commands/decode"
	"github.com/bokysan/keycodec/internal/commands/encode"
	"github.com/bokysan/keycodec/internal/commands/inspect"
	"github.com/bokysan/keycodec/internal/commands/version"
	kcFlags "github.com/bokysan/keycodec/internal/flags"
	"github.com/bokysan/keycodec/internal/logging"
	"github.com/bokysan/keycodec/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// KeyCodec is the main executable
type KeyCodec struct {
	parser *flags.Parser

	version *version.Command
	encode  *encode.Command
	decode  *decode.Command
	inspect *inspect.Command
}

// NewKeyCodec will create a new instance of KeyCodec and initialize the parser
func NewKeyCodec() *KeyCodec {
	executablePath := path.Base(os.Args[0])

	kc := &KeyCodec{
		parser:  flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
		version: version.NewCommand(),
		encode:  encode.NewCommand(),
		decode:  decode.NewCommand(),
		inspect: inspect.NewCommand(),
	}

	kc.setupGeneral()
	kc.addCommand("version", "Print the version", "Print the application version and exit", kc.version)
	kc.addCommand("encode", "Encode keys",
		"Turn keys into fixed width tokens. Keys are padded with '0' and cut to 32 characters before encoding.",
		kc.encode)
	kc.addCommand("decode", "Decode tokens", "Turn tokens back into 32 character strings", kc.decode)
	kc.addCommand("inspect", "Inspect keys", "Show every step of encoding a key", kc.inspect)

	args.General.ConfigurationFile = kc.readConfiguration
	return kc
}

// readConfiguration is invoked by the parser when it finds the `--config` option
func (kc *KeyCodec) readConfiguration(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: fmt.Sprintf("Configuration file %s does not exist.", file),
		}
	}

	args.General.ConfigurationFilePath = file
	return kcFlags.NewYamlParser(kc.parser).ParseFile(file)
}

// setupGeneral will configure general options
func (kc *KeyCodec) setupGeneral() {
	if _, err := kc.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (kc *KeyCodec) addCommand(name, short, long string, cmd interface{}) {
	_, err := kc.parser.AddCommand(name, short, long, cmd)
	util.MustErrorNilOrExit(err)
}

// main parses the command line and runs the selected command
func main() {
	_, err := NewKeyCodec().parser.Parse()
	if closeErr := logging.Close(); err == nil {
		err = closeErr
	}
	util.MustErrorNilOrExit(err)
}
