package flags

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from a yaml formatted file. Other files may be referenced relative to the
// directory of the file.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	return y.parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse parses options from an in-memory yaml document
func (y *YamlParser) Parse(data []byte) error {
	return y.parse(bytes.NewReader(data))
}

// parse reads the YAML segments (separated by `---`) one after another and applies each of them.
func (y *YamlParser) parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment matches every top level key of the segment to a command (e.g. "encode:") or an option
// group (e.g. "general:") and unmarshals the value into the struct backing it.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		group := y.findGroup(name)
		if group == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command or group '%s'", name),
			})
		}

		// flags does not give access to the struct behind a group, so it's read from the private field
		dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
		dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
		target := dataField.Elem().Interface()

		log.Tracef("Applying configuration section '%s' to %T", name, target)
		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, target); err != nil {
			return errors.Wrapf(err, "Could not apply configuration section '%s'", name)
		}
	}
	return nil
}

func (y *YamlParser) findGroup(name string) *flags.Group {
	if command := y.parser.Find(name); command != nil {
		return command.Group
	}
	for _, g := range y.parser.Groups() {
		if strings.EqualFold(g.ShortDescription, name) {
			return g
		}
	}
	return nil
}
