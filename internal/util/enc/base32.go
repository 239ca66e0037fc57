package enc

import (
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	cb32      = "abcdefghijklmnopqrstuvwxyz012345"
	cb32Ucase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ012345"
)

var keyBase32Encoding = base32.NewEncoding(cb32).WithPadding(base32.NoPadding)

// IntToBase32Char will covert the given number into a letter from the Base32 alphabet.
// If the number is larger than 31, it will "wrap over" and work on reminder of the
// parameter divided by 32.
func IntToBase32Char(in int) byte {
	return cb32[in&31]
}

// Base32CharToInt returns the position of the character in the Base32 alphabet, regardless of
// case, or -1 if the character is not part of it.
func Base32CharToInt(in byte) int {
	pos := strings.IndexByte(cb32, in)
	if pos == -1 {
		pos = strings.IndexByte(cb32Ucase, in)
	}
	return pos
}

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive, which makes
// it the default for file names.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return keyBase32Encoding.EncodeToString(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	lower := make([]byte, len(data))
	for k := 0; k < len(data); k++ {
		if pos := Base32CharToInt(data[k]); pos >= 0 {
			lower[k] = IntToBase32Char(pos)
		} else {
			lower[k] = data[k]
		}
	}

	res, err := keyBase32Encoding.DecodeString(string(lower))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base32Encoder) FilenameSafe() bool {
	return true
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		"aA" + cb32,
	}
}
