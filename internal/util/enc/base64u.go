package enc

import (
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
)

const (
	cb64u = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-0123456789_"
)

var keyBase64uEncoding = base64.NewEncoding(cb64u).WithPadding(base64.NoPadding)

// -------------------------------------------------------

// Base64uEncoder encodes 3 bytes to 4 characters and uses an alphabet without '/' and '+'.
// The output is case-sensitive.
type Base64uEncoder struct {
}

func (b *Base64uEncoder) Name() string {
	return "Base64u"
}

func (b *Base64uEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64uEncoder) Code() byte {
	return 'U'
}

func (b *Base64uEncoder) Encode(data []byte) string {
	return keyBase64uEncoding.EncodeToString(data)
}

func (b *Base64uEncoder) Decode(data string) ([]byte, error) {
	res, err := keyBase64uEncoding.DecodeString(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base64uEncoder) FilenameSafe() bool {
	return true
}

func (b *Base64uEncoder) Ratio() float64 {
	return 4.0 / 3.0
}

func (b *Base64uEncoder) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ_0129-",
	}
}
