package djb

import (
	"encoding/binary"
	"errors"
	"hash"
)

// DefaultSalt is the initial state used by Bernstein's original functions.
const DefaultSalt = 5381

var (
	ErrUnknownAlgorithm = errors.New("djb: unknown algorithm")
	ErrSaltRange        = errors.New("djb: salt does not fit the hash width")
	ErrInvalidState     = errors.New("djb: invalid hash state")
)

// Hasher is the common surface of every hash in this package.
type Hasher interface {
	hash.Hash

	// Sum64 returns the current hash value. 32-bit variants zero-extend.
	Sum64() uint64

	// Salt returns the initial state Reset restores.
	Salt() uint64

	Algorithm() Algorithm
}

const (
	magicX33a       = "djb\x01"
	magicX33aPhp    = "djb\x02"
	magicX33aU32    = "djb\x03"
	magicX33aU32Php = "djb\x04"
	magicX33x       = "djb\x05"
	magicX33xU32    = "djb\x06"
)

const (
	marshaledSize64 = len(magicX33a) + 8 + 8
	marshaledSize32 = len(magicX33a) + 4 + 4
)

const (
	highBit64 = uint64(1) << 63
	highBit32 = uint32(1) << 31
)

func add64(h uint64, p []byte) uint64 {
	for _, c := range p {
		h = (h << 5) + h + uint64(c)
	}
	return h
}

func xor64(h uint64, p []byte) uint64 {
	for _, c := range p {
		h = ((h << 5) + h) ^ uint64(c)
	}
	return h
}

func add32(h uint32, p []byte) uint32 {
	for _, c := range p {
		h = (h << 5) + h + uint32(c)
	}
	return h
}

func xor32(h uint32, p []byte) uint32 {
	for _, c := range p {
		h = ((h << 5) + h) ^ uint32(c)
	}
	return h
}

func marshal64(magic string, salt, state uint64) []byte {
	b := make([]byte, 0, marshaledSize64)
	b = append(b, magic...)
	b = binary.BigEndian.AppendUint64(b, salt)
	b = binary.BigEndian.AppendUint64(b, state)
	return b
}

func unmarshal64(magic string, b []byte) (salt, state uint64, err error) {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return 0, 0, ErrInvalidState
	}
	if len(b) != marshaledSize64 {
		return 0, 0, ErrInvalidState
	}
	b = b[len(magic):]
	return binary.BigEndian.Uint64(b[:8]), binary.BigEndian.Uint64(b[8:]), nil
}

func marshal32(magic string, salt, state uint32) []byte {
	b := make([]byte, 0, marshaledSize32)
	b = append(b, magic...)
	b = binary.BigEndian.AppendUint32(b, salt)
	b = binary.BigEndian.AppendUint32(b, state)
	return b
}

func unmarshal32(magic string, b []byte) (salt, state uint32, err error) {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return 0, 0, ErrInvalidState
	}
	if len(b) != marshaledSize32 {
		return 0, 0, ErrInvalidState
	}
	b = b[len(magic):]
	return binary.BigEndian.Uint32(b[:4]), binary.BigEndian.Uint32(b[4:]), nil
}
