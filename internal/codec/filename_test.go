package codec

import (
	"testing"

	"github.com/bokysan/keycodec/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_Filename(t *testing.T) {
	name, err := Filename("hello", &enc.Base32Encoder{}, "png")
	require.NoError(t, err)
	require.Equal(t, "whgrqrr4tucfim4maqaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa.png", name)

	name2, err := Filename("HELLO", nil, ".png")
	require.NoError(t, err)
	require.Equal(t, name, name2)

	name, err = Filename("hello", &enc.Base32Encoder{}, "")
	require.NoError(t, err)
	require.Len(t, name, 58)
}

func Test_FilenameFixedLength(t *testing.T) {
	e := &enc.Base64uEncoder{}
	for _, k := range keyTests {
		name, err := Filename(k, e, "jpg")
		require.NoError(t, err)
		require.Len(t, name, 48+4, "key %q", k)
	}
}

func Test_FilenameUnsafeEncoder(t *testing.T) {
	for _, e := range []enc.Encoder{&enc.RawEncoder{}, &enc.Base91Encoder{}, &enc.Base128Encoder{}} {
		_, err := Filename("hello", e, "png")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrNotFilenameSafe))
	}
}

func Test_TokenFilenameTrimmed(t *testing.T) {
	token := Encode("hello")[:24]
	name, err := TokenFilename(token, &enc.Base32Encoder{}, "webp")
	require.NoError(t, err)
	require.Equal(t, "whgrqrr4tucfim4maqaaaaaaaaaaaaaaaaaaaaa.webp", name)
}
