package enc

import "fmt"

// -------------------------------------------------------

// RawEncoder does not do any translation whatsoever. The output is binary and only useful when piped.
type RawEncoder struct {
}

func (b *RawEncoder) Name() string {
	return "Raw"
}

func (b *RawEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *RawEncoder) Code() byte {
	return 'R'
}

func (b *RawEncoder) Encode(data []byte) string {
	return string(data)
}

func (b *RawEncoder) Decode(data string) ([]byte, error) {
	return []byte(data), nil
}

func (b *RawEncoder) FilenameSafe() bool {
	return false
}

func (b *RawEncoder) Ratio() float64 {
	return 1.0
}

func (b *RawEncoder) TestPatterns() []string {
	return []string{}
}
