package djb

import (
	"fmt"
	"math"
	"strings"
)

// Algorithm names a hash variant.
type Algorithm string

const (
	AlgX33a       Algorithm = "x33a"
	AlgX33aPhp    Algorithm = "x33a-php"
	AlgX33aU32    Algorithm = "x33a-u32"
	AlgX33aU32Php Algorithm = "x33a-u32-php"
	AlgX33x       Algorithm = "x33x"
	AlgX33xU32    Algorithm = "x33x-u32"
)

var algorithms = []Algorithm{
	AlgX33a,
	AlgX33aPhp,
	AlgX33aU32,
	AlgX33aU32Php,
	AlgX33x,
	AlgX33xU32,
}

var descriptions = map[Algorithm]string{
	AlgX33a:       "h*33 + c, 64-bit state (Bernstein's original)",
	AlgX33aPhp:    "h*33 + c, 64-bit state, high bit of output set",
	AlgX33aU32:    "h*33 + c, 32-bit state",
	AlgX33aU32Php: "h*33 + c, 32-bit state, high bit of output set (PHP hashtable)",
	AlgX33x:       "h*33 ^ c, 64-bit state (Bernstein's improved)",
	AlgX33xU32:    "h*33 ^ c, 32-bit state",
}

// Algorithms returns every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// ParseAlgorithm accepts the canonical names as well as the CamelCase type
// names ("X33aU32Php"), underscores in place of dashes, and the legacy name
// "djbx33a".
func ParseAlgorithm(s string) (Algorithm, error) {
	key := compact(s)
	if key == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnknownAlgorithm)
	}
	if key == "djbx33a" {
		return AlgX33a, nil
	}
	for _, a := range algorithms {
		if compact(string(a)) == key {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func compact(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	return strings.ReplaceAll(s, "_", "")
}

func (a Algorithm) String() string {
	return string(a)
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	_, ok := descriptions[a]
	return ok
}

// Bits is the width of the output, 32 or 64. Invalid algorithms report 0.
func (a Algorithm) Bits() int {
	switch a {
	case AlgX33a, AlgX33aPhp, AlgX33x:
		return 64
	case AlgX33aU32, AlgX33aU32Php, AlgX33xU32:
		return 32
	default:
		return 0
	}
}

func (a Algorithm) Describe() string {
	return descriptions[a]
}

// New returns a hasher for a seeded with DefaultSalt.
func New(a Algorithm) (Hasher, error) {
	return NewWithSalt(a, DefaultSalt)
}

// NewWithSalt returns a hasher for a seeded with salt. For 32-bit algorithms
// salt must fit in 32 bits.
func NewWithSalt(a Algorithm, salt uint64) (Hasher, error) {
	if a.Bits() == 32 && salt > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d exceeds 32 bits for %s", ErrSaltRange, salt, a)
	}

	switch a {
	case AlgX33a:
		return NewX33aWithSalt(salt), nil
	case AlgX33aPhp:
		return NewX33aPhpWithSalt(salt), nil
	case AlgX33aU32:
		return NewX33aU32WithSalt(uint32(salt)), nil
	case AlgX33aU32Php:
		return NewX33aU32PhpWithSalt(uint32(salt)), nil
	case AlgX33x:
		return NewX33xWithSalt(salt), nil
	case AlgX33xU32:
		return NewX33xU32WithSalt(uint32(salt)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}

// Sum hashes data in one call with the default salt.
func Sum(a Algorithm, data []byte) (uint64, error) {
	h, err := New(a)
	if err != nil {
		return 0, err
	}
	_, _ = h.Write(data)
	return h.Sum64(), nil
}
