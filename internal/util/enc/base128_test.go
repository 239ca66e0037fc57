package enc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Base128Transliterate(t *testing.T) {
	str := make([]byte, 128)
	for k := range str {
		str[k] = byte(k)
	}
	trans := escape128(str)
	require.Equal(t, len(str), len(trans))

	back, err := unescape128(trans)
	require.NoError(t, err)
	require.Equal(t, str, back)
}

func Test_Base128InvalidCharacter(t *testing.T) {
	_, err := unescape128([]byte("abc."))
	require.Error(t, err)

	encoder := Base128Encoder{}
	_, err = encoder.Decode("abc\377")
	require.Error(t, err)
}

func Test_Base128Encoder(t *testing.T) {
	encoder := Base128Encoder{}
	for _, encoderTest := range encoderTests[:3] {
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, ".")
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}

func Test_Base128Pack(t *testing.T) {
	require.Equal(t, []byte{}, pack128(nil))
	require.Equal(t, []byte{0x7f, 0x40}, pack128([]byte{0xff}))
	require.Equal(t, []byte{0x00, 0x3f, 0x40}, pack128([]byte{0x00, 0xff}))
	require.Equal(t, []byte{0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f, 0x7f}, pack128([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}))

	for _, size := range []int{1, 6, 7, 8, 24, 36} {
		packed := pack128(make([]byte, size))
		require.Len(t, packed, (size*8+6)/7)
		for _, v := range packed {
			require.Less(t, v, byte(0x80))
		}
	}
}

func Test_Base128EncoderLength(t *testing.T) {
	encoder := Base128Encoder{}
	require.Len(t, encoder.Encode(encoderTest[:36]), 42)
	require.Len(t, encoder.Encode(encoderTest[:24]), 28)
}
