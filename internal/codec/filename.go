package codec

import (
	"strings"

	"github.com/bokysan/keycodec/internal/util/enc"
	"github.com/pkg/errors"
)

// ErrNotFilenameSafe is returned when the selected encoder can produce characters which are not valid in a file name
var ErrNotFilenameSafe = errors.New("encoder output is not usable as a file name")

// Filename builds a fixed-length file name for the given key, e.g. for a cached image. The extension
// is appended with a dot, unless it's empty.
func Filename(key string, e enc.Encoder, ext string) (string, error) {
	return TokenFilename(Encode(key), e, ext)
}

// TokenFilename renders an already encoded token as a file name. A nil encoder selects the default one.
func TokenFilename(token []byte, e enc.Encoder, ext string) (string, error) {
	if e == nil {
		e = enc.Encoders[0]
	}
	if !e.FilenameSafe() {
		return "", errors.Wrapf(ErrNotFilenameSafe, "%s", e.Name())
	}

	name := e.Encode(token)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return name, nil
	}
	return name + "." + ext, nil
}
