package enc

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownEncoder is returned when an encoder cannot be found by name or code
var ErrUnknownEncoder = errors.New("unknown encoder")

// Encoder renders a binary key token as text and back.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// FilenameSafe returns true if the output can be used as a file name on a case-sensitive file system
	// without any escaping
	FilenameSafe() bool

	// Ratio is the (approximate) number of output characters per input byte
	Ratio() float64

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}

// Encoders lists all known encoders, the default one first
var Encoders = []Encoder{
	&Base32Encoder{},
	&Base64uEncoder{},
	&Base91Encoder{},
	&Base128Encoder{},
	&RawEncoder{},
}

// FindEncoder looks up the encoder either by its name (case insensitive) or by its one-letter code.
func FindEncoder(nameOrCode string) (Encoder, error) {
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), nameOrCode) {
			return e, nil
		}
	}
	if len(nameOrCode) == 1 {
		for _, e := range Encoders {
			if e.Code() == nameOrCode[0] {
				return e, nil
			}
		}
	}

	var available []string
	for _, e := range Encoders {
		available = append(available, strings.ToLower(e.Name()))
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "'%s' is not one of %v", nameOrCode, available)
}

// EncoderFlag allows an encoder to be given on the command line or in the configuration file. It holds
// the lowercase name of a known encoder; the empty value stands for the default one.
type EncoderFlag string

// UnmarshalFlag implements flags.Unmarshaler
func (f *EncoderFlag) UnmarshalFlag(value string) error {
	e, err := FindEncoder(strings.TrimSpace(value))
	if err != nil {
		return err
	}
	*f = EncoderFlag(strings.ToLower(e.Name()))
	return nil
}

// MarshalFlag implements flags.Marshaler
func (f EncoderFlag) MarshalFlag() (string, error) {
	return string(f), nil
}

// UnmarshalYAML allows the encoder to be set from a yaml configuration file
func (f *EncoderFlag) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value string
	if err := unmarshal(&value); err != nil {
		return errors.WithStack(err)
	}
	return f.UnmarshalFlag(value)
}

// Get returns the selected encoder or the default one if none was selected
func (f EncoderFlag) Get() Encoder {
	if f == "" {
		return Encoders[0]
	}
	e, err := FindEncoder(string(f))
	if err != nil {
		return Encoders[0]
	}
	return e
}
