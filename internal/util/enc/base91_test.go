package enc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Base91Encoder(t *testing.T) {
	encoder := Base91Encoder{}
	for _, encoderTest := range encoderTests[:3] {
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, ".")
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}
