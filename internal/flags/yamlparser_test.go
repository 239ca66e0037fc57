package flags

import (
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

type generalCommand struct {
	Trim bool   `yaml:"trim" long:"trim" description:"Drop the trailing chunk"`
	File string `yaml:"file" long:"file"`
}

func (g *generalCommand) Execute(args []string) error {
	return nil
}

type options struct {
	Verbose []bool `yaml:"verbose" short:"v"`
}

func newParser(t *testing.T) (*flags.Parser, *generalCommand, *options) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	data := &generalCommand{}
	_, err := parser.AddCommand("general", "General", "General options", data)
	require.NoErrorf(t, err, "Could not add general command")

	opts := &options{}
	_, err = parser.AddGroup("Options", "Options", opts)
	require.NoErrorf(t, err, "Could not add options group")
	return parser, data, opts
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	parser, data, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, true, data.Trim, "Invalid reading of boolean value")
	require.Equal(t, "something.txt", data.File, "Invalid reading of string value")
}

func Test_MultiSegmentParse(t *testing.T) {
	file := "testdata/multi.yml"

	parser, data, opts := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, "other.txt", data.File)
	require.Len(t, opts.Verbose, 2)
}

func Test_InMemoryParse(t *testing.T) {
	parser, data, _ := newParser(t)
	err := NewYamlParser(parser).Parse([]byte("general:\n  file: memory.txt\n"))
	require.NoError(t, err)
	require.Equal(t, "memory.txt", data.File)
}

func Test_InvalidGeneralParse(t *testing.T) {
	file := "testdata/invalid_general.yml"

	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Unknown options should be ignored: %v", file)
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}
