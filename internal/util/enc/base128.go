package enc

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (
	// Printable ASCII first, then iso_8859-1 accent chars; 254-255 are left out.
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

var cb128Invert map[byte]byte
var cbInitialized sync.Once

func setupCb128Invert() {
	cbInitialized.Do(func() {
		cb128Invert = make(map[byte]byte)
		for i, v := range []byte(cb128) {
			cb128Invert[v] = byte(i)
		}
	})
}

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters. Packing is done here, decoding by luci's base128.
// Output is not valid UTF-8, so it's meant for binary-safe storage (e.g. database keys), not for file names.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	return string(escape128(pack128(src)))
}

// pack128 splits the input into 7-bit groups, most significant bit first. The last group is padded
// with zero bits, so the output is always (len*8+6)/7 values long, each of them below 128.
func pack128(src []byte) []byte {
	dst := make([]byte, 0, (len(src)*8+6)/7)

	acc := uint(0)
	bits := uint(0)
	for _, val := range src {
		acc = acc<<8 | uint(val)
		bits += 8
		for bits >= 7 {
			bits -= 7
			dst = append(dst, byte(acc>>bits)&0x7f)
		}
		// Keep only the bits which were not written out yet
		acc &= (1 << bits) - 1
	}

	if bits > 0 {
		dst = append(dst, byte(acc<<(7-bits))&0x7f)
	}
	return dst
}

func escape128(src []byte) []byte {
	res := make([]byte, len(src))
	for i, v := range src {
		res[i] = cb128[v]
	}
	return res
}

func unescape128(src []byte) ([]byte, error) {
	setupCb128Invert()
	res := make([]byte, len(src))
	for i, v := range src {
		val, ok := cb128Invert[v]
		if !ok {
			return nil, errors.Errorf("invalid base128 character 0x%02x at position %d", v, i)
		}
		res[i] = val
	}
	return res, nil
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	src, err := unescape128([]byte(data))
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) FilenameSafe() bool {
	return false
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}

func (b *Base128Encoder) TestPatterns() []string {
	return []string{
		"aA-Aaahhh-Drink-mal-ein-J\344germeister-",
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ",
		"aA0123456789\274\275\276\277\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317",
	}
}
