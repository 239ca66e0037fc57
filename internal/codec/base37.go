package codec

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

const (
	// KeyLength is the number of characters in a canonical key
	KeyLength = 32
	// GroupDigits is the number of base-37 digits packed into one chunk by Encode
	GroupDigits = 16
	// DecodeDigits is the number of base-37 digits Decode extracts from every chunk.
	// Note that this is one more than Encode packs.
	DecodeDigits = 17
	// ChunkSize is the number of bytes every digit group is serialized into
	ChunkSize = 12
	// Radix of the digit alphabet: 36 symbols plus the sentinel
	Radix = 37
	// Sentinel is the digit used for '=' and for every character outside the alphabet
	Sentinel = 36
	// EncodedLength is the size of every token returned by Encode
	EncodedLength = (KeyLength/GroupDigits + 1) * ChunkSize

	padding = "00000000000000000000000000000000"
)

var (
	// ErrInvalidDigit is returned when a digit outside of [0, 36] is asked to be turned into a character
	ErrInvalidDigit = errors.New("digit out of range")
	// ErrShortInput is returned by Decode when the data does not hold enough chunks for a whole key
	ErrShortInput = errors.New("not enough data to decode a key")

	radix    = big.NewInt(Radix)
	byteMask = big.NewInt(0xff)
)

// ConvertChar maps a (lowercase) character to its base-37 digit. The mapping is total and lossy:
// '=' and anything not in [0-9a-z] both map to Sentinel.
func ConvertChar(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c == '=':
		return Sentinel
	}
	return Sentinel
}

// DeconvertChar is the inverse of ConvertChar. Sentinel always comes back as '='.
func DeconvertChar(d int) (rune, error) {
	switch {
	case d >= 0 && d < 10:
		return rune('0' + d), nil
	case d >= 10 && d < Sentinel:
		return rune('a' + d - 10), nil
	case d == Sentinel:
		return '=', nil
	}
	return 0, errors.Wrapf(ErrInvalidDigit, "unexpected number %d", d)
}

// CanonicalKey pads the input with '0' and cuts it to exactly KeyLength characters, then lowercases it.
// Lowercasing is done rune by rune, so the result always holds exactly KeyLength runes.
func CanonicalKey(s string) string {
	runes := []rune(s + padding)[:KeyLength]
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}

// Groups returns the digit-group numbers of the canonical form of s, in the order they are serialized.
// The accumulator is pushed once more after the walk, so the last group is always zero.
func Groups(s string) []*big.Int {
	groups := make([]*big.Int, 0, KeyLength/GroupDigits+1)

	i := 0
	number := new(big.Int)
	for _, c := range CanonicalKey(s) {
		i++
		number.Mul(number, radix)
		number.Add(number, big.NewInt(int64(ConvertChar(c))))

		if i == GroupDigits {
			groups = append(groups, number)
			number = new(big.Int)
			i = 0
		}
	}

	// TODO: only push a non-empty residual once callers stop relying on the 36 byte token size
	groups = append(groups, number)
	return groups
}

// Encode converts any string into a fixed size (EncodedLength) token. Every digit group is written
// as a little-endian ChunkSize-byte chunk.
func Encode(s string) []byte {
	groups := Groups(s)
	result := make([]byte, len(groups)*ChunkSize)
	for k, g := range groups {
		putChunk(result[k*ChunkSize:(k+1)*ChunkSize], g)
	}
	return result
}

// putChunk takes the low byte of n and shifts it right by 8, once for every byte in dst
func putChunk(dst []byte, n *big.Int) {
	x := new(big.Int).Set(n)
	low := new(big.Int)
	for i := range dst {
		dst[i] = byte(low.And(x, byteMask).Uint64())
		x.Rsh(x, 8)
	}
}

// Decode reads data from the last byte to the first, builds a number from every ChunkSize bytes and
// extracts DecodeDigits digits from each of those numbers, least significant first. The first KeyLength
// characters extracted are returned in reverse order. Bytes which do not fill a complete chunk are ignored.
func Decode(data []byte) (string, error) {
	nums := make([]*big.Int, 0, len(data)/ChunkSize)

	i := 0
	num := new(big.Int)
	for k := len(data) - 1; k >= 0; k-- {
		i++
		num.Lsh(num, 8)
		num.Add(num, big.NewInt(int64(data[k])))

		if i == ChunkSize {
			nums = append(nums, num)
			num = new(big.Int)
			i = 0
		}
	}

	if len(nums)*DecodeDigits < KeyLength {
		return "", errors.Wrapf(ErrShortInput, "got %d bytes, need at least %d", len(data), chunksNeeded()*ChunkSize)
	}

	result := make([]rune, 0, KeyLength)
	mod := new(big.Int)
	for _, n := range nums {
		for j := 0; j < DecodeDigits && len(result) < KeyLength; j++ {
			n.DivMod(n, radix, mod)
			c, err := DeconvertChar(int(mod.Int64()))
			if err != nil {
				return "", err
			}
			result = append(result, c)
		}
	}

	return reverse(result), nil
}

func chunksNeeded() int {
	return (KeyLength + DecodeDigits - 1) / DecodeDigits
}

func reverse(runes []rune) string {
	var sb strings.Builder
	sb.Grow(len(runes))
	for k := len(runes) - 1; k >= 0; k-- {
		sb.WriteRune(runes[k])
	}
	return sb.String()
}
