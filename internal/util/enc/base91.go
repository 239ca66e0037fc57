package enc

import (
	"fmt"

	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

const (
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,-/:;<=>?@[]^_`{|}~\""
)

var keyBase91Encoding = base91.NewEncoding(cb91)

// -------------------------------------------------------

// Base91Encoder when encoding, each group of 13 bits is converted into 2 radix-91 digits. It gives the
// shortest printable token, but the alphabet contains '/' and quotes, so it's not usable for file names.
type Base91Encoder struct {
}

func (b *Base91Encoder) Name() string {
	return "Base91"
}

func (b *Base91Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base91Encoder) Code() byte {
	return 'X'
}

func (b *Base91Encoder) Encode(data []byte) string {
	return keyBase91Encoding.EncodeToString(data)
}

func (b *Base91Encoder) Decode(data string) ([]byte, error) {
	res, err := keyBase91Encoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base91Encoder) FilenameSafe() bool {
	return false
}

func (b *Base91Encoder) Ratio() float64 {
	return 16.0 / 13.0
}

func (b *Base91Encoder) TestPatterns() []string {
	return []string{
		cb91,
	}
}
