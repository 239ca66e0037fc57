package inspect

import (
	"encoding/hex"
	"math"

	"github.com/bokysan/keycodec/internal/codec"
	"github.com/bokysan/keycodec/internal/util/enc"
)

// FormatLength is the length of the token text in one of the formats
type FormatLength struct {
	Format string `yaml:"format"`
	Length int    `yaml:"length"`
	// Estimate is derived from the encoder ratio and may be off by one for formats with variable length output
	Estimate int `yaml:"estimate"`
}

// Report shows every intermediate step of encoding a key
type Report struct {
	Input     string   `yaml:"input"`
	Canonical string   `yaml:"canonical"`
	Digits    []int    `yaml:"digits"`
	Groups    []string `yaml:"groups"`
	Chunks    []string `yaml:"chunks"`
	Token     string   `yaml:"token"`
	Decoded   string   `yaml:"decoded"`
	// DecodedTrimmed is what decoding gives when the trailing zero chunk is cut off first
	DecodedTrimmed string `yaml:"decoded-trimmed"`

	Formats []FormatLength `yaml:"formats"`
}

// NewReport runs the key through the codec
func NewReport(key string) (*Report, error) {
	canonical := codec.CanonicalKey(key)
	r := &Report{
		Input:     key,
		Canonical: canonical,
	}

	for _, c := range canonical {
		r.Digits = append(r.Digits, codec.ConvertChar(c))
	}
	for _, g := range codec.Groups(key) {
		r.Groups = append(r.Groups, g.String())
	}

	token := codec.Encode(key)
	for k := 0; k < len(token); k += codec.ChunkSize {
		r.Chunks = append(r.Chunks, hex.EncodeToString(token[k:k+codec.ChunkSize]))
	}
	r.Token = hex.EncodeToString(token)

	for _, e := range enc.Encoders {
		r.Formats = append(r.Formats, FormatLength{
			Format:   e.Name(),
			Length:   len(e.Encode(token)),
			Estimate: int(math.Ceil(e.Ratio()*float64(len(token)) - 1e-9)),
		})
	}

	var err error
	if r.Decoded, err = codec.Decode(token); err != nil {
		return nil, err
	}
	if r.DecodedTrimmed, err = codec.Decode(token[:len(token)-codec.ChunkSize]); err != nil {
		return nil, err
	}
	return r, nil
}
